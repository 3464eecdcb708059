package logging

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Setup configures logrus. With an empty filename everything is discarded,
// since the terminal belongs to the viewer. Otherwise logrus and Bubble Tea
// both write to filename at debug level.
func Setup(filename string) (cleanup func(), err error) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if filename == "" {
		logrus.SetOutput(io.Discard)
		logrus.SetLevel(logrus.InfoLevel)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	logrus.SetOutput(f)
	logrus.SetLevel(logrus.DebugLevel)

	tf, err := tea.LogToFile(filename, "tea")
	if err != nil {
		f.Close()
		return nil, err
	}

	cleanup = func() {
		logrus.SetOutput(io.Discard)
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}
