package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a logger with default settings. The level can be overridden
// through the LOG_LEVEL environment variable before configuration is loaded.
func New() *logrus.Logger {
	return NewWithConfig(os.Getenv("LOG_LEVEL"), "text")
}

// NewWithConfig creates a logger with an explicit level and format.
func NewWithConfig(level, format string) *logrus.Logger {
	log := logrus.New()

	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "time",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "msg",
			},
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	log.SetOutput(os.Stdout)

	switch level {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}

	return log
}
