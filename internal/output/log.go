// Package output provides terminal output utilities.
package output

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger is the package-level logger instance.
var logger *log.Logger

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig controls logger setup.
type LogConfig struct {
	// Verbose enables debug level and caller reporting. It also forces
	// timestamps on.
	Verbose bool

	// Timestamps overrides timestamp display. Nil means on.
	Timestamps *bool
}

// SetupLogging configures the logger based on verbosity and timestamp settings.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if !cfg.Verbose && cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// BundleLogger returns a child logger that prefixes every line with the
// bundle name, so interleaved batch output stays attributable.
func BundleLogger(name string) *log.Logger {
	return logger.WithPrefix(StyleNoun.Render(name))
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}
