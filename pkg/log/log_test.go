package log

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestLog(t *testing.T) {
	logger, err := New("warning", "", "test")
	if err != nil {
		t.Fatalf("failed to create a test logger: %v", err)
	}

	logger.Info("running git init")
	logger.Warn("running git commit")
	logger.Error("git push failed")

	hook := logger.Hooks[logrus.InfoLevel][0].(*test.Hook)
	if len(hook.Entries) != 2 {
		t.Errorf("Not the correct count of log entries")
	}

	logger.Warn("running git push")
	if hook.LastEntry().Message != "running git push" {
		t.Errorf("Unexpected log entry: %s", hook.LastEntry().Message)
	}

	logger, err = New("", "", "test")
	if err != nil {
		t.Fatalf("failed to create a test logger: %v", err)
	}
	if logger.Level != logrus.InfoLevel {
		t.Error("The default loglevel should be info")
	}

	logger, err = New("", "", "")
	if err != nil {
		t.Fatalf("failed to create a default logger: %v", err)
	}
	if logger.Out != os.Stderr {
		t.Error("The default output should be stderr")
	}

	logger, err = New("info", "", "stdout")
	if err != nil || logger.Out != os.Stdout {
		t.Error("Failed to instantiate a stdout logger")
	}

	logger, err = New("info", "", "stderr")
	if err != nil || logger.Out != os.Stderr {
		t.Error("Failed to instantiate a stderr logger")
	}

	if _, err = New("info", "", "syslog"); err == nil {
		t.Error("syslog output without a log server should fail")
	}
}
