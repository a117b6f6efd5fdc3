package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Определяем уровни логирования
const (
	DEBUG = "DEBUG"
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
)

const (
	DefaultPattern    = "%time [%level] %msg%field%n"
	DefaultTimeFormat = "2006-01-02 15:04:05"
)

var (
	mu     sync.RWMutex
	std    = newLogger(os.Stderr, logrus.InfoLevel, DefaultPattern, DefaultTimeFormat)
	closer io.Closer
)

func newLogger(out io.Writer, level logrus.Level, pattern, timeFormat string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&formatter{pattern: pattern, time: timeFormat})
	return l
}

// Init replaces the package logger. Output always goes to stderr, so stdout
// stays free for ZPL, and additionally to a rotating file when enabled.
func Init(cfg Config) error {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	pattern := cfg.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	timeFormat := cfg.Time
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}

	writers := []io.Writer{os.Stderr}
	var fileWriter *lumberjack.Logger
	if cfg.File.Enabled {
		if cfg.File.Path == "" {
			return fmt.Errorf("file output requires 'path' field")
		}
		fileWriter = &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,  // megabytes
			MaxBackups: cfg.File.MaxBackups, // number of backups
			MaxAge:     cfg.File.MaxAgeDays, // days
			Compress:   cfg.File.Compress,
		}
		writers = append(writers, fileWriter)
	}

	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	std = newLogger(io.MultiWriter(writers...), level, pattern, timeFormat)
	if fileWriter != nil {
		closer = fileWriter
	}
	return nil
}

// SetOutput redirects the package logger, mostly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	std.SetOutput(w)
}

// Close releases the log file opened by Init, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

func GetLogger() *logrus.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return std
}

// ParseLevel accepts the level constants above in any case, plus "warning"
// and the empty string (info).
func ParseLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return logrus.InfoLevel, nil
	case "debug":
		return logrus.DebugLevel, nil
	case "warn", "warning":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.InfoLevel, fmt.Errorf("unknown log level: %s", level)
	}
}

func LogMessage(level, message string) {
	l := GetLogger()

	switch level {
	case DEBUG:
		l.Debug(message)
	case WARN:
		l.Warn(message)
	case ERROR:
		l.Error(message)
	default:
		l.Info(message)
	}
}

// PrintIfErr logs *err with msg as context when it is not nil.
func PrintIfErr(msg string, err *error) {
	if err == nil || *err == nil {
		return
	}
	GetLogger().WithError(*err).Error(msg)
}
