package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodmap/pkg/runner/legend"
)

func addMoods(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "moods",
		Short: "Print the mood vocabulary and its colours.",
		Example: `
moodmap moods
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := legend.Legend{}
			err := k.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
