package cmd

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/c9s/rbtree/pkg/rbtree"
)

func newTree(options ...rbtree.Option) *rbtree.Tree[int64] {
	options = append([]rbtree.Option{
		rbtree.WithMaxNodes(viper.GetInt("max-nodes")),
		rbtree.WithInitialCapacity(viper.GetInt("initial-capacity")),
	}, options...)
	return rbtree.New[int64](options...)
}

// parseKeys parses int64 keys, each argument may hold several keys
// separated by commas.
func parseKeys(args []string) ([]int64, error) {
	var keys []int64
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}

			k, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid key %q", field)
			}

			keys = append(keys, k)
		}
	}

	return keys, nil
}

// readKeysFile reads one key per line, blank lines and lines starting with
// # are skipped.
func readKeysFile(filename string) ([]int64, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var keys []int64
	var lineNo int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		k, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d: invalid key %q", filename, lineNo, line)
		}

		keys = append(keys, k)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", filename)
	}

	return keys, nil
}
