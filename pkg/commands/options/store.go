package options

import (
	"github.com/spf13/cobra"
)

// StoreOptions
type StoreOptions struct {
	Ephemeral bool
	Verbose   bool
}

func AddStoreArgs(cmd *cobra.Command, o *StoreOptions) {
	cmd.PersistentFlags().BoolVar(&o.Ephemeral, "ephemeral", false,
		"Keep entries in memory only, nothing is read from or written to disk.")
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log diagnostics.")
}
