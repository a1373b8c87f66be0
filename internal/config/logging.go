// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// ParseLevel accepts logrus level names; empty means info.
func ParseLevel(level string) (logrus.Level, error) {
	if level == "" {
		return logrus.InfoLevel, nil
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("logging.level: %w", err)
	}
	return lvl, nil
}

// SetupLogging configures the standard logrus logger.
func SetupLogging(l LoggingConfig, out io.Writer) error {
	lvl, err := ParseLevel(l.Level)
	if err != nil {
		return err
	}

	logrus.SetLevel(lvl)
	logrus.SetOutput(out)
	if l.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return nil
}
