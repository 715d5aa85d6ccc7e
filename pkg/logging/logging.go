// Package logging provides leveled, subsystem-tagged logging for menuctl.
//
// Two modes exist. CLI mode writes slog text records to the given writer.
// TUI mode routes entries through a buffered channel instead, so the
// renderer can surface them without tearing the alternate screen.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// Level is the severity of a log entry.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Entry is a structured record delivered to the TUI channel.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Subsystem string
	Message   string
	Err       error
}

const channelBuffer = 512

var (
	logger  *slog.Logger
	channel chan Entry
	tuiMode bool
	minimum Level
)

// InitForCLI directs log output to w as slog text records.
func InitForCLI(level Level, w io.Writer) {
	tuiMode = false
	minimum = level
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level.slogLevel()}))
	slog.SetDefault(logger)
}

// InitForTUI switches logging to channel delivery and returns the
// receive side. Entries below level are dropped.
func InitForTUI(level Level) <-chan Entry {
	tuiMode = true
	minimum = level
	channel = make(chan Entry, channelBuffer)
	logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level.slogLevel()}))
	return channel
}

// CloseChannel closes the TUI channel on shutdown.
func CloseChannel() {
	if channel != nil {
		close(channel)
		channel = nil
	}
}

func emit(level Level, subsystem string, err error, format string, args ...interface{}) {
	if level < minimum {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	if tuiMode {
		if channel == nil {
			return
		}
		entry := Entry{
			Timestamp: time.Now(),
			Level:     level,
			Subsystem: subsystem,
			Message:   msg,
			Err:       err,
		}
		select {
		case channel <- entry:
		default:
			// Drop rather than block the UI loop when the buffer is full.
		}
		return
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	logger.LogAttrs(context.Background(), level.slogLevel(), msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem, format string, args ...interface{}) {
	emit(LevelDebug, subsystem, nil, format, args...)
}

// Info logs an informational message.
func Info(subsystem, format string, args ...interface{}) {
	emit(LevelInfo, subsystem, nil, format, args...)
}

// Warn logs a warning message.
func Warn(subsystem, format string, args ...interface{}) {
	emit(LevelWarn, subsystem, nil, format, args...)
}

// Error logs an error with its cause.
func Error(subsystem string, err error, format string, args ...interface{}) {
	emit(LevelError, subsystem, err, format, args...)
}
