package cmd

import (
	"math/rand"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/rbtree/pkg/rbtree"
)

func init() {
	VerifyCmd.Flags().Int("n", 10_000, "number of operations")
	VerifyCmd.Flags().Int64("seed", 1, "random seed")
	VerifyCmd.Flags().Int64("key-range", 1_000, "keys are drawn from [0, key-range)")
	VerifyCmd.Flags().Float64("erase-ratio", 0.4, "probability of an operation being an erase")
	RootCmd.AddCommand(VerifyCmd)
}

// VerifyCmd runs a random workload and checks the invariants after every
// mutation.
var VerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "run a random insert/erase workload and verify the tree after every step",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := cmd.Flags().GetInt("n")
		if err != nil {
			return err
		}

		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			return err
		}

		keyRange, err := cmd.Flags().GetInt64("key-range")
		if err != nil {
			return err
		}

		if keyRange <= 0 {
			return errors.New("--key-range must be positive")
		}

		eraseRatio, err := cmd.Flags().GetFloat64("erase-ratio")
		if err != nil {
			return err
		}

		tree := newTree()
		defer tree.Destroy()

		return runVerify(tree, rand.New(rand.NewSource(seed)), n, keyRange, eraseRatio)
	},
}

func runVerify(tree *rbtree.Tree[int64], rnd *rand.Rand, n int, keyRange int64, eraseRatio float64) error {
	var refs []rbtree.NodeRef
	for step := 0; step < n; step++ {
		if len(refs) > 0 && rnd.Float64() < eraseRatio {
			i := rnd.Intn(len(refs))
			if err := tree.Erase(refs[i]); err != nil {
				return errors.Wrapf(err, "step %d", step)
			}

			refs[i] = refs[len(refs)-1]
			refs = refs[:len(refs)-1]
		} else {
			ref, err := tree.Insert(rnd.Int63n(keyRange))
			if err != nil {
				return errors.Wrapf(err, "step %d", step)
			}
			refs = append(refs, ref)
		}

		if err := tree.Verify(); err != nil {
			return errors.Wrapf(err, "invariants violated at step %d", step)
		}
	}

	log.Infof("%d operations verified, %d keys left, height %d", n, tree.Len(), tree.Height())
	return nil
}
