package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup returns the process logger. It writes to stderr so command
// output on stdout stays clean, and stays quiet below warning level:
// persistence failures are logged, not surfaced.
func Setup() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.TextFormatter{
			DisableTimestamp: true,
		},
		Out:   os.Stderr,
		Level: logrus.WarnLevel,
	}

	return &logger
}
