package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/moodmap/pkg/mood"
)

// LogOptions
type LogOptions struct {
	Intensity int
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().IntVarP(&o.Intensity, "intensity", "i", 0,
		fmt.Sprintf("How strong the feeling is, %d to %d. Defaults to the configured intensity.", mood.MinIntensity, mood.MaxIntensity))
}

// GetIntensity returns the flag value, or fallback when the flag was not given
// on cmd. An explicit out of range value is returned as is for validation.
func (o *LogOptions) GetIntensity(cmd *cobra.Command, fallback int) int {
	if !cmd.Flags().Changed("intensity") {
		return fallback
	}
	return o.Intensity
}
