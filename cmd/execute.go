package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vosuolebrogi/repopub/config"
	klog "github.com/vosuolebrogi/repopub/pkg/log"
	"github.com/vosuolebrogi/repopub/pkg/run"
)

const appName = "repopub"

// RootCmd represents the base command when called without any subcommands.
// It takes no flags and no arguments: the remote, the commit message and
// the branch name are fixed.
var RootCmd = &cobra.Command{
	Use:   appName,
	Short: "Push the current directory to its GitHub repository",
	Long:  "Push the current directory to its GitHub repository",
	Args:  cobra.NoArgs,

	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := klog.New("info", "", "stderr")
		if err != nil {
			return fmt.Errorf("failed to initialize the logger: %+v", err)
		}

		conf := &config.Config{
			Logger: logger,
		}

		if err := conf.Init(); err != nil {
			return fmt.Errorf("failed to initialize the configuration: %+v", err)
		}

		return run.Run(conf)
	},
}

// Execute adds all child commands to the root command and sets their flags.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
