// Package logger provides leveled logging with consistent formatting.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Level controls logging verbosity.
type Level int

// Log levels in increasing verbosity.
const (
	LevelError Level = iota
	LevelInfo
	LevelDebug
)

var (
	mu       sync.RWMutex
	minLevel = LevelInfo
	stdout   = log.New(os.Stdout, "", log.Ldate|log.Ltime)
	stderr   = log.New(os.Stderr, "", log.Ldate|log.Ltime)
)

// ParseLevel maps a level name to a Level, defaulting to info.
func ParseLevel(name string) Level {
	switch name {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Initialize configures the minimum level and, in development mode, adds
// caller information to every line.
func Initialize(level Level, development bool) {
	mu.Lock()
	defer mu.Unlock()

	minLevel = level
	flags := log.Ldate | log.Ltime
	if development {
		flags |= log.Lshortfile
	}
	stdout = log.New(os.Stdout, "", flags)
	stderr = log.New(os.Stderr, "", flags)
}

// SetOutput redirects both output streams, used by tests to silence logs.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	stdout = log.New(w, "", 0)
	stderr = log.New(w, "", 0)
}

func logf(level Level, prefix, message string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()

	if level > minLevel {
		return
	}
	out := stdout
	if level == LevelError {
		out = stderr
	}
	// Skip logf and the exported wrapper so Lshortfile points at the caller
	_ = out.Output(3, prefix+": "+formatMessage(message, args...))
}

func formatMessage(message string, args ...any) string {
	if len(args) == 0 {
		return message
	}
	return fmt.Sprintf(message, args...)
}

// Info logs informational messages.
func Info(message string, args ...any) {
	logf(LevelInfo, "INFO", message, args...)
}

// Error logs error messages.
func Error(message string, args ...any) {
	logf(LevelError, "ERROR", message, args...)
}

// Debug logs debug messages, discarded unless the debug level is enabled.
func Debug(message string, args ...any) {
	logf(LevelDebug, "DEBUG", message, args...)
}

// Fatal logs an error message and terminates the program.
func Fatal(message string, args ...any) {
	logf(LevelError, "FATAL", message, args...)
	os.Exit(1)
}
