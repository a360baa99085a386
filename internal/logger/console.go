// Package logger provides leveled diagnostic logging for rustcheat.
//
// Diagnostics go to stderr so they never mix with sheet output on stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level orders log messages by severity
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// levelNames holds the configuration name of each Level, in order
var levelNames = [...]string{"trace", "debug", "info", "warn", "error"}

var levelColors = [...]color.Attribute{color.FgHiBlack, color.FgCyan, color.FgBlue, color.FgYellow, color.FgRed}

// String returns the upper-case tag printed in log lines.
func (l Level) String() string {
	if l < LevelTrace || l > LevelError {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return strings.ToUpper(levelNames[l])
}

// DefaultLevel keeps normal CLI runs quiet
const DefaultLevel = "warn"

// ParseLevel maps a lower-case level name to its Level.
func ParseLevel(name string) (Level, bool) {
	for i, n := range levelNames {
		if n == name {
			return Level(i), true
		}
	}
	return LevelWarn, false
}

// IsValidLevel reports whether level is one of the known level names
func IsValidLevel(level string) bool {
	_, ok := ParseLevel(level)
	return ok
}

// NormalizeLevel lowercases a level name and falls back to DefaultLevel
// for empty or unknown names.
func NormalizeLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if IsValidLevel(normalized) {
		return normalized
	}
	return DefaultLevel
}

// Logger is the logging surface used across rustcheat.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
}

// ConsoleLogger writes "[HH:MM:SS] [LEVEL] message" lines to a writer.
// Level tags are colored only on os.Stdout/os.Stderr when color is allowed.
type ConsoleLogger struct {
	mu        sync.Mutex
	w         io.Writer
	threshold Level
	color     bool
	now       func() time.Time
}

// NewConsoleLogger creates a ConsoleLogger that writes to w.
// A nil writer discards messages. Level names are case-insensitive and an
// empty or unknown name means DefaultLevel.
func NewConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	threshold, _ := ParseLevel(NormalizeLevel(level))
	return &ConsoleLogger{
		w:         w,
		threshold: threshold,
		color:     colorWriter(w),
		now:       time.Now,
	}
}

// colorWriter reports whether w is a standard stream that may be colored.
// color.NoColor already accounts for NO_COLOR and non-TTY output.
func colorWriter(w io.Writer) bool {
	return (w == os.Stdout || w == os.Stderr) && !color.NoColor
}

func (cl *ConsoleLogger) LogTrace(message string) { cl.log(LevelTrace, message) }
func (cl *ConsoleLogger) LogDebug(message string) { cl.log(LevelDebug, message) }
func (cl *ConsoleLogger) LogInfo(message string)  { cl.log(LevelInfo, message) }
func (cl *ConsoleLogger) LogWarn(message string)  { cl.log(LevelWarn, message) }
func (cl *ConsoleLogger) LogError(message string) { cl.log(LevelError, message) }

// Enabled reports whether messages at level are written.
func (cl *ConsoleLogger) Enabled(level Level) bool {
	return cl.w != nil && level >= cl.threshold
}

func (cl *ConsoleLogger) log(level Level, message string) {
	if !cl.Enabled(level) {
		return
	}

	tag := level.String()
	if cl.color {
		tag = color.New(levelColors[level]).Sprint(tag)
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()
	fmt.Fprintf(cl.w, "[%s] [%s] %s\n", cl.now().Format("15:04:05"), tag, message)
}

// NoOpLogger discards every message
type NoOpLogger struct{}

// NewNoOpLogger creates a logger that does nothing
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) LogTrace(message string) {}
func (n *NoOpLogger) LogDebug(message string) {}
func (n *NoOpLogger) LogInfo(message string)  {}
func (n *NoOpLogger) LogWarn(message string)  {}
func (n *NoOpLogger) LogError(message string) {}
