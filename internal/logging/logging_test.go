package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetupToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := Setup(path)
	if err != nil {
		t.Fatal(err)
	}
	logrus.WithField("component", "test").Debug("hello from test")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("expected debug line in log, got %q", string(data))
	}
	if !strings.Contains(string(data), "component=test") {
		t.Errorf("expected field in log, got %q", string(data))
	}
}

func TestSetupDiscard(t *testing.T) {
	cleanup, err := Setup("")
	if err != nil {
		t.Fatal(err)
	}
	defer cleanup()
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		t.Error("expected debug disabled without a log file")
	}
}

func TestSetupBadPath(t *testing.T) {
	if _, err := Setup(filepath.Join(t.TempDir(), "missing", "debug.log")); err == nil {
		t.Error("expected error for unwritable path")
	}
}
