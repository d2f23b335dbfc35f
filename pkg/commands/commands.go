package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tableflip.dev/moodmap/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
	so     = &options.StoreOptions{}
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moodmap",
		Short: base.Wrap80("Track how you feel, see your mood distribution and a forecast of your patterns."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if so.Verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	options.AddStoreArgs(cmd, so)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLog(topLevel)
	addHistory(topLevel)
	addChart(topLevel)
	addForecast(topLevel)
	addCalendar(topLevel)
	addClear(topLevel)
	addMoods(topLevel)
	addInfo(topLevel)
	addWatch(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
