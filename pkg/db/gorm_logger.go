package db

import (
	"time"

	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

type logrusWriter struct {
	entry *logrus.Entry
}

func (w logrusWriter) Printf(format string, args ...interface{}) {
	w.entry.Infof(format, args...)
}

// NewGormLogger routes gorm's SQL and slow-query logging through logrus.
// The gorm level follows the logrus level so debug logging shows every statement.
func NewGormLogger(logger *logrus.Logger, slowThreshold time.Duration) gormlogger.Interface {
	return gormlogger.New(
		logrusWriter{entry: logger.WithField("component", "gorm")},
		gormlogger.Config{
			SlowThreshold:             slowThreshold,
			LogLevel:                  gormLevel(logger.GetLevel()),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

func gormLevel(level logrus.Level) gormlogger.LogLevel {
	switch {
	case level >= logrus.DebugLevel:
		return gormlogger.Info
	case level >= logrus.WarnLevel:
		return gormlogger.Warn
	case level >= logrus.ErrorLevel:
		return gormlogger.Error
	default:
		return gormlogger.Silent
	}
}
