// Package publisher makes a git repository out of a local directory and
// pushes its content to a fixed hosted repository, in one linear shot:
// init, remote add, add, status, commit, branch rename, push.
//
// It requires the git command in $PATH and deliberately sequences the
// external tool instead of reimplementing it; only the missing-tool probe
// is treated as fatal, every other step failure stays on the console for
// the user to read, so reruns over an already published directory work.
package publisher
