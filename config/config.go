package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// The publish target is fixed: this tool exists to push one repository
// to one place. Nothing here is read from flags, files or environment.
const (
	// RemoteURL is the hosted repository every publish targets
	RemoteURL = "https://github.com/vosuolebrogi/20250609-link.git"

	// CommitMessage is the message used for the publish commit
	CommitMessage = "Initial commit: Telegram bot for Yandex Go links"

	// Branch is the name the current branch is renamed to before the push
	Branch = "main"
)

// Config is the publisher configuration, passed to run.Run
type Config struct {
	// When DryRun is true, we log the sequence but don't spawn git
	DryRun bool

	// Logger should be used to send all logs
	Logger *logrus.Logger

	// WorkDir is the directory whose content gets published
	WorkDir string

	// RemoteURL is the address of the hosted repository
	RemoteURL string

	// CommitMessage is the publish commit's message
	CommitMessage string

	// Branch is the branch name used for the rename and the push
	Branch string

	// In and Out carry the acknowledgement prompt's console streams
	In  io.Reader
	Out io.Writer
}

// Init resolves the working directory and fills in the fixed publish
// values. An empty WorkDir means the process' current directory.
func (c *Config) Init() error {
	var err error

	if c.WorkDir == "" {
		c.WorkDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("can't find the current directory: %v", err)
		}
	}

	c.WorkDir, err = filepath.Abs(c.WorkDir)
	if err != nil {
		return fmt.Errorf("can't find %s absolute path (broken cwd?): %v", c.WorkDir, err)
	}

	c.RemoteURL = RemoteURL
	c.CommitMessage = CommitMessage
	c.Branch = Branch

	if c.In == nil {
		c.In = os.Stdin
	}

	if c.Out == nil {
		c.Out = os.Stdout
	}

	return nil
}
