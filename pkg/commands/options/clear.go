package options

import (
	"github.com/spf13/cobra"
)

// ClearOptions
type ClearOptions struct {
	Yes bool
}

func AddClearArgs(cmd *cobra.Command, o *ClearOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Delete without asking for confirmation.")
}
