// Package logging provides structured logging for lsext.
// Logs go to stderr so stdout carries only listing output.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rescale/lsext/internal/constants"
)

// Config configures a Logger.
type Config struct {
	// Out receives human-readable console output. Defaults to os.Stderr.
	Out io.Writer

	// LogFile, if set, also receives JSON log lines with size-based rotation.
	LogFile string
}

// Logger wraps zerolog with console and optional file output.
type Logger struct {
	zlog zerolog.Logger
	file *lumberjack.Logger
}

// NewLogger creates a logger from cfg.
func NewLogger(cfg Config) *Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: constants.LogTimeFormat,
		NoColor:    !isTerminal(out),
	}

	l := &Logger{}
	var w io.Writer = console
	if cfg.LogFile != "" {
		l.file = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    constants.LogFileMaxSizeMB,
			MaxBackups: constants.LogFileMaxBackups,
			MaxAge:     constants.LogFileMaxAgeDays,
			Compress:   true,
		}
		w = zerolog.MultiLevelWriter(console, l.file)
	}

	l.zlog = zerolog.New(w).
		With().
		Timestamp().
		Logger()
	return l
}

// NewDefaultCLILogger creates a stderr-only logger.
func NewDefaultCLILogger() *Logger {
	return NewLogger(Config{})
}

// isTerminal reports whether w is a terminal; only *os.File can be.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Error returns an error level event.
func (l *Logger) Error() *zerolog.Event {
	return l.zlog.Error()
}

// Debug returns a debug level event.
func (l *Logger) Debug() *zerolog.Event {
	return l.zlog.Debug()
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Debugf logs a debug message with printf-style formatting.
// Only shown when --verbose or --debug is set.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.zlog.Debug().Msgf(format, args...)
}

// SetGlobalLevel sets the global log level.
func SetGlobalLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

func init() {
	// Default to info; --verbose lowers it
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
