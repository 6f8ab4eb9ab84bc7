// Package run implements the main repopub loop: the publish sequence,
// the completion banner, and the final acknowledgement.
package run

import (
	"context"

	"github.com/vosuolebrogi/repopub/config"
	"github.com/vosuolebrogi/repopub/pkg/publisher"
)

// Run drives a whole publish session. The only error it returns is the
// missing-git abort; failed git commands already printed their diagnostics
// to the console and don't stop the session.
func Run(conf *config.Config) error {
	repo := publisher.New(conf.Logger, conf.DryRun, conf.WorkDir,
		conf.RemoteURL, conf.CommitMessage, conf.Branch)
	prompt := publisher.NewPrompter(conf.In, conf.Out)

	err := repo.Publish(context.Background())
	if err != nil {
		conf.Logger.Errorf("%v", err)
		prompt.AwaitAck("Press Enter to exit... ")
		return err
	}

	prompt.Banner("Done! Check the push output above.")
	prompt.AwaitAck("Press Enter to exit... ")

	return nil
}
