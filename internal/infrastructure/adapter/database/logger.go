package database

import (
	"context"
	"errors"
	"time"

	coreport "github.com/copeonbnb/whitelist-api/internal/domain/port/core"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger bridges GORM's logger interface to the domain Logger port
type GormLogger struct {
	logger        coreport.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogger creates a GORM logger backed by the domain logger
func NewGormLogger(logger coreport.Logger, logLevel string) gormlogger.Interface {
	level := gormlogger.Warn
	switch logLevel {
	case "debug":
		level = gormlogger.Info
	case "info":
		level = gormlogger.Warn
	case "warn":
		level = gormlogger.Warn
	case "error":
		level = gormlogger.Error
	}

	return &GormLogger{
		logger:        logger,
		level:         level,
		slowThreshold: 200 * time.Millisecond,
	}
}

// LogMode returns a copy of the logger with the given level
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *l
	newLogger.level = level
	return &newLogger
}

// Info logs informational messages from GORM
func (l *GormLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.level < gormlogger.Info {
		return
	}
	l.logger.Info(msg, map[string]any{"data": data})
}

// Warn logs warning messages from GORM
func (l *GormLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.level < gormlogger.Warn {
		return
	}
	l.logger.Warn(msg, map[string]any{"data": data})
}

// Error logs error messages from GORM
func (l *GormLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if l.level < gormlogger.Error {
		return
	}
	l.logger.Error(msg, map[string]any{"data": data})
}

// Trace logs executed queries with timing information
func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logger.Error("Query failed", map[string]any{
			"sql":        sql,
			"rows":       rows,
			"elapsed_ms": elapsed.Milliseconds(),
			"error":      err.Error(),
		})
	case elapsed > l.slowThreshold:
		l.logger.Warn("Slow query", map[string]any{
			"sql":        sql,
			"rows":       rows,
			"elapsed_ms": elapsed.Milliseconds(),
		})
	case l.level >= gormlogger.Info:
		l.logger.Debug("Query executed", map[string]any{
			"sql":        sql,
			"rows":       rows,
			"elapsed_ms": elapsed.Milliseconds(),
		})
	}
}
