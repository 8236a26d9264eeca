// Package logger wraps a process-wide zerolog console logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

const (
	timeFormat = "2006-01-02 15:04:05.999"
)

var logger = newLogger(zerolog.InfoLevel)

func newLogger(l zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = timeFormat
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: timeFormat}
	return zerolog.New(output).Level(l).With().Timestamp().Logger()
}

// Init reconfigures the global logger with the given level, one of
// "debug", "info", "warn" or "error".  Without Init the level is info.
func Init(level string) {
	l := zerolog.GlobalLevel()
	switch level {
	case "debug":
		l = zerolog.DebugLevel
	case "info":
		l = zerolog.InfoLevel
	case "warn":
		l = zerolog.WarnLevel
	case "error":
		l = zerolog.ErrorLevel
	}
	logger = newLogger(l)
}

func Infof(format string, v ...interface{}) {
	logger.Info().Msgf(format, v...)
}

func Debugf(format string, v ...interface{}) {
	logger.Debug().Msgf(format, v...)
}

func Warnf(format string, v ...interface{}) {
	logger.Warn().Msgf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	logger.Error().Msgf(format, v...)
}

func Panicf(format string, v ...interface{}) {
	logger.Panic().Msgf(format, v...)
}
