package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Journal is a machine-readable record of every external command run.
// It writes nowhere until OpenJournal points it at a file.
var Journal = newJournal(io.Discard)

func newJournal(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// OpenJournal appends journal entries to the file at path.
// The returned function restores the discarding journal and closes the file.
func OpenJournal(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	Journal.SetOutput(f)
	return func() error {
		Journal.SetOutput(io.Discard)
		return f.Close()
	}, nil
}
