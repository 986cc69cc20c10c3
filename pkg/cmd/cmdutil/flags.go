package cmdutil

import "github.com/spf13/pflag"

// PersistentFlags defines the flags shared by every command that builds trees
func PersistentFlags(flags *pflag.FlagSet) {
	flags.Int("max-nodes", 0, "maximum number of keys per tree, 0 for no limit")
	flags.Int("initial-capacity", 0, "number of nodes to preallocate per tree")
}
