// Package logger writes leveled run diagnostics to a console stream.
//
// Lines look like "[15:04:05] [WARN] message". The stream is always separate
// from the merged document. Loggers are safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/mergecode/internal/display"
)

// Level is the severity of a log line. Higher levels are more severe.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

var levelColors = map[Level]color.Attribute{
	LevelTrace: color.FgHiBlack,
	LevelDebug: color.FgCyan,
	LevelInfo:  color.FgBlue,
	LevelWarn:  color.FgYellow,
	LevelError: color.FgRed,
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel maps a level name (case-insensitive, surrounding space ignored)
// to its Level. Empty and unknown names give LevelInfo.
func ParseLevel(name string) Level {
	want := strings.ToUpper(strings.TrimSpace(name))
	for level, levelName := range levelNames {
		if levelName == want {
			return level
		}
	}
	return LevelInfo
}

// ConsoleLogger writes timestamped lines at or above a minimum level.
type ConsoleLogger struct {
	mu    sync.Mutex
	out   io.Writer
	min   Level
	color bool
}

// NewConsoleLogger creates a ConsoleLogger writing to w. A nil w discards
// everything. The level name is parsed with ParseLevel. Level tags are
// colored only when w is a terminal and NO_COLOR is unset.
func NewConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	return &ConsoleLogger{
		out:   w,
		min:   ParseLevel(level),
		color: w != nil && display.ColorEnabled(w),
	}
}

// Enabled reports whether lines at level are written.
func (cl *ConsoleLogger) Enabled(level Level) bool {
	return cl.out != nil && level >= cl.min
}

func (cl *ConsoleLogger) log(level Level, message string) {
	if !cl.Enabled(level) {
		return
	}

	tag := level.String()
	if cl.color {
		c := color.New(levelColors[level])
		c.EnableColor()
		tag = c.Sprint(tag)
	}
	line := fmt.Sprintf("[%s] [%s] %s\n", time.Now().Format("15:04:05"), tag, message)

	cl.mu.Lock()
	defer cl.mu.Unlock()
	io.WriteString(cl.out, line)
}

func (cl *ConsoleLogger) LogTrace(message string) { cl.log(LevelTrace, message) }
func (cl *ConsoleLogger) LogDebug(message string) { cl.log(LevelDebug, message) }
func (cl *ConsoleLogger) LogInfo(message string)  { cl.log(LevelInfo, message) }
func (cl *ConsoleLogger) LogWarn(message string)  { cl.log(LevelWarn, message) }
func (cl *ConsoleLogger) LogError(message string) { cl.log(LevelError, message) }

// LogMergeStart logs "Merging <root> into <output> (run <id>)" at INFO.
func (cl *ConsoleLogger) LogMergeStart(runID, root, output string) {
	if output == "" {
		output = "<stream>"
	}
	cl.LogInfo(fmt.Sprintf("Merging %s into %s (run %s)", root, output, runID))
}

// LogPathOmitted logs a listed entry the walk left out, at TRACE.
func (cl *ConsoleLogger) LogPathOmitted(path string, isDir bool, reason string) {
	kind := "file"
	if isDir {
		kind = "directory"
	}
	cl.LogTrace(fmt.Sprintf("Omitted %s %s: %s", kind, path, reason))
}

// LogFileMerged logs one appended file at DEBUG.
func (cl *ConsoleLogger) LogFileMerged(path string, size int) {
	cl.LogDebug(fmt.Sprintf("Merged %s (%d bytes)", path, size))
}

// LogFileSkipped logs "Skipping file <path>: <err>" at WARN.
func (cl *ConsoleLogger) LogFileSkipped(path string, err error) {
	cl.LogWarn(fmt.Sprintf("Skipping file %s: %v", path, err))
}

// LogDirSkipped logs a directory whose listing failed at WARN.
func (cl *ConsoleLogger) LogDirSkipped(path string, err error) {
	cl.LogWarn(fmt.Sprintf("Skipping directory %s: %v", path, err))
}

// LogMergeComplete logs run totals at INFO.
func (cl *ConsoleLogger) LogMergeComplete(files, skipped int, duration time.Duration) {
	cl.LogInfo(fmt.Sprintf("Merge complete: %d files, %d skipped (%s)", files, skipped, formatDuration(duration)))
}

// formatDuration renders d compactly: "250ms", "5s", "1m30s", "2h15m".
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	d = d.Truncate(time.Second)
	h, m, s := d/time.Hour, d%time.Hour/time.Minute, d%time.Minute/time.Second

	var b strings.Builder
	if h > 0 {
		fmt.Fprintf(&b, "%dh", h)
	}
	if m > 0 {
		fmt.Fprintf(&b, "%dm", m)
	}
	if s > 0 || b.Len() == 0 {
		fmt.Fprintf(&b, "%ds", s)
	}
	return b.String()
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

func NewNoOpLogger() *NoOpLogger { return &NoOpLogger{} }

func (*NoOpLogger) LogWarn(message string)                                      {}
func (*NoOpLogger) LogMergeStart(runID, root, output string)                    {}
func (*NoOpLogger) LogPathOmitted(path string, isDir bool, reason string)       {}
func (*NoOpLogger) LogFileMerged(path string, size int)                         {}
func (*NoOpLogger) LogFileSkipped(path string, err error)                       {}
func (*NoOpLogger) LogDirSkipped(path string, err error)                        {}
func (*NoOpLogger) LogMergeComplete(files, skipped int, duration time.Duration) {}
