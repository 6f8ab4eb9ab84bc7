package publisher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// gitBin is the external tool we drive. We only sequence its commands,
// we never reimplement them.
const gitBin = "git"

// ErrGitNotFound aborts the sequence before any git command is spawned.
var ErrGitNotFound = errors.New("git executable not found in PATH; install it from https://git-scm.com/downloads and retry")

var lookPath = exec.LookPath

type logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Publisher pushes a local directory's content to a fixed hosted repository
type Publisher struct {
	Logger  logger
	WorkDir string
	URL     string
	Msg     string
	Branch  string
	DryRun  bool
	Stdout  io.Writer
	Stderr  io.Writer
}

// New instantiate a new Publisher over the given working directory.
func New(log logger, dryRun bool, dir, url, msg, branch string) *Publisher {
	return &Publisher{
		Logger:  log,
		WorkDir: dir,
		URL:     url,
		Msg:     msg,
		Branch:  branch,
		DryRun:  dryRun,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// HasGit tests whether the git executable is resolvable on PATH.
func HasGit() bool {
	_, err := lookPath(gitBin)
	return err == nil
}

// Git runs a single git command in the working directory, streaming its
// output to the console so the user can read git's own diagnostics.
func (p *Publisher) Git(ctx context.Context, args ...string) error {
	if p.DryRun {
		return nil
	}

	cmd := exec.CommandContext(ctx, gitBin, args...) // #nosec
	cmd.Dir = p.WorkDir
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %s failed: %v", args[0], err)
	}

	return nil
}

// Publish drives the whole fixed sequence: init, remote add, add, status,
// commit, branch rename, push. A missing git executable aborts before the
// first command; anything else (existing remote, nothing to commit,
// rejected push) is logged and the sequence moves on, like a rerun in an
// already published directory. Git's own diagnostics stay on the console.
func (p *Publisher) Publish(ctx context.Context) error {
	if !HasGit() {
		return ErrGitNotFound
	}

	steps := [][]string{
		{"init"},
		{"remote", "add", "origin", p.URL},
		{"add", "."},
		{"status"},
		{"commit", "-m", p.Msg},
		{"branch", "-M", p.Branch},
		{"push", "-u", "origin", p.Branch},
	}

	for _, args := range steps {
		p.Logger.Infof("running git %s", strings.Join(args, " "))

		if err := p.Git(ctx, args...); err != nil {
			p.Logger.Errorf("%v", err)
		}
	}

	return nil
}
