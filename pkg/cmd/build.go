package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/c9s/rbtree/pkg/rbtree"
	"github.com/c9s/rbtree/pkg/style"
)

func init() {
	BuildCmd.Flags().String("file", "", "file with one key per line")
	BuildCmd.Flags().StringSlice("erase", nil, "keys to erase after building the tree")
	BuildCmd.Flags().Bool("graph", false, "print the tree graph")
	BuildCmd.Flags().Bool("stats", false, "print the tree statistics")
	BuildCmd.Flags().StringP("output", "o", "table", "stats output format: table or yaml")
	RootCmd.AddCommand(BuildCmd)
}

var redNode = color.New(color.FgHiRed).SprintFunc()

func colorNodeFormatter(label string, c rbtree.Color) string {
	if c == rbtree.Red {
		return redNode(label)
	}
	return label
}

type treeStats struct {
	Keys      int   `yaml:"keys"`
	Height    int   `yaml:"height"`
	Rotations int64 `yaml:"rotations"`
	Inserts   int64 `yaml:"inserts"`
	Erases    int64 `yaml:"erases"`
	InUse     int64 `yaml:"nodesInUse"`
}

func newTreeStats(tree *rbtree.Tree[int64]) treeStats {
	stats := tree.Stats()
	return treeStats{
		Keys:      tree.Len(),
		Height:    tree.Height(),
		Rotations: stats.Rotations,
		Inserts:   stats.Inserts,
		Erases:    stats.Erases,
		InUse:     stats.InUse(),
	}
}

// BuildCmd builds a tree from the given keys
// go run ./cmd/rbtree build 10 20 30 --graph
var BuildCmd = &cobra.Command{
	Use:   "build [keys...]",
	Short: "build a tree from keys and print it in order",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := parseKeys(args)
		if err != nil {
			return err
		}

		file, err := cmd.Flags().GetString("file")
		if err != nil {
			return err
		}

		if len(file) > 0 {
			fileKeys, err := readKeysFile(file)
			if err != nil {
				return err
			}
			keys = append(keys, fileKeys...)
		}

		eraseArgs, err := cmd.Flags().GetStringSlice("erase")
		if err != nil {
			return err
		}

		eraseKeys, err := parseKeys(eraseArgs)
		if err != nil {
			return err
		}

		showGraph, err := cmd.Flags().GetBool("graph")
		if err != nil {
			return err
		}

		showStats, err := cmd.Flags().GetBool("stats")
		if err != nil {
			return err
		}

		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		tree := newTree()
		defer tree.Destroy()

		for _, k := range keys {
			if _, err := tree.Insert(k); err != nil {
				return errors.Wrapf(err, "unable to insert key %d", k)
			}
		}

		for _, k := range eraseKeys {
			if !tree.Delete(k) {
				log.Warnf("key %d not found, nothing to erase", k)
			}
		}

		fmt.Println(tree.Keys())

		if showGraph {
			if err := tree.FprintWith(os.Stdout, colorNodeFormatter); err != nil {
				return err
			}
		}

		if showStats {
			stats := newTreeStats(tree)
			switch output {
			case "yaml":
				out, err := yaml.Marshal(stats)
				if err != nil {
					return err
				}
				fmt.Print(string(out))

			case "table":
				t := style.NewTable(os.Stdout, "Tree", "keys", "height", "rotations", "inserts", "erases", "nodes in use")
				t.AppendRow([]interface{}{stats.Keys, stats.Height, stats.Rotations, stats.Inserts, stats.Erases, stats.InUse})
				t.Render()

			default:
				return fmt.Errorf("unsupported output format %q", output)
			}
		}

		if err := tree.Verify(); err != nil {
			return errors.Wrap(err, "tree invariants violated")
		}

		return nil
	},
}
