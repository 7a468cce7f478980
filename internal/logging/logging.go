package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/davidahmann/edsign/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger from cfg. Output goes to stderr unless cfg.File is set,
// in which case the file is opened for append. The returned Closer releases
// the log file and must be called once the logger is no longer used.
func New(cfg config.LogConfig, stderr io.Writer) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()
	log.Out = stderr
	var closer io.Closer = nopCloser{}

	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("could not set up logging: %w", err)
		}
		log.Out = file
		closer = file
	}

	switch cfg.Format {
	case "json":
		log.Formatter = &logrus.JSONFormatter{}
	default:
		log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	}

	switch cfg.Level {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "info":
		log.SetLevel(logrus.InfoLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	case "fatal":
		log.SetLevel(logrus.FatalLevel)
	default:
		log.SetLevel(logrus.WarnLevel)
	}

	return log, closer, nil
}
