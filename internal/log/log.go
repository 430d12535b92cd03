// Package log routes application logging through logrus.
// Cosmetic failures (subtitle fetch, orientation lock) are logged here
// and never surfaced to the user as errors.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// Setup configures the log destination and level. With debug enabled,
// Debug-level messages go to stderr; otherwise only warnings and above.
func Setup(debug bool) {
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
}

// Discard silences all output. Used while the bubbletea player owns the
// terminal, where stray writes would corrupt the screen.
func Discard() {
	logger.SetOutput(io.Discard)
}

func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}
