// Package ui provides terminal output and the append-only log for wallcycle.
package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Colors for terminal output
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Gray   = "\033[90m"
)

// Symbols for different message types
const (
	SymbolSuccess = "✔"
	SymbolInfo    = "ℹ"
	SymbolWarning = "[W]"
	SymbolError   = "[E]"
)

// TimestampFormat is the layout of the log line prefix.
const TimestampFormat = time.RFC3339

// Output writes progress to stdout, failures to stderr and mirrors
// every message into an optional log sink.
type Output struct {
	mu      sync.Mutex
	w       io.Writer
	errW    io.Writer
	log     io.Writer
	noColor bool
	quiet   bool
	verbose bool
	now     func() time.Time
}

// NewOutput creates a new Output.
func NewOutput(w, errW io.Writer) *Output {
	return &Output{w: w, errW: errW, now: time.Now}
}

// DefaultOutput creates an Output for stdout and stderr.
func DefaultOutput() *Output {
	return NewOutput(os.Stdout, os.Stderr)
}

// SetNoColor disables colors.
func (o *Output) SetNoColor(noColor bool) {
	o.noColor = noColor
}

// SetQuiet enables quiet mode (only errors reach the console).
func (o *Output) SetQuiet(quiet bool) {
	o.quiet = quiet
}

// SetVerbose enables verbose mode.
func (o *Output) SetVerbose(verbose bool) {
	o.verbose = verbose
}

// SetLog sets the log sink. A nil writer disables file logging.
func (o *Output) SetLog(w io.Writer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.log = w
}

// OpenLog opens path for appending and uses it as the log sink.
// The caller owns the returned file.
func (o *Output) OpenLog(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	o.SetLog(f)
	return f, nil
}

// color applies color if enabled.
func (o *Output) color(code, text string) string {
	if o.noColor {
		return text
	}
	return code + text + Reset
}

// Log appends a timestamped line to the log sink only.
func (o *Output) Log(format string, args ...interface{}) {
	o.emit(nil, "", fmt.Sprintf(format, args...))
}

// emit writes line to console (if non-nil) and msg to the log under one lock.
func (o *Output) emit(console io.Writer, line, msg string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if console != nil {
		fmt.Fprintln(console, line)
	}
	if o.log != nil {
		// Best effort: a failing log never stops the program.
		_, _ = fmt.Fprintf(o.log, "[%s] %s\n", o.now().Format(TimestampFormat), msg)
	}
}

// console returns stdout unless quiet mode is on.
func (o *Output) console() io.Writer {
	if o.quiet {
		return nil
	}
	return o.w
}

// Success prints a success message.
func (o *Output) Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	o.emit(o.console(), o.color(Green, SymbolSuccess)+" "+msg, msg)
}

// Info prints an info message.
func (o *Output) Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	o.emit(o.console(), o.color(Blue, SymbolInfo)+" "+msg, msg)
}

// Print prints a plain message.
func (o *Output) Print(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	o.emit(o.console(), msg, msg)
}

// Warning prints a warning message.
func (o *Output) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	o.emit(o.console(), o.color(Yellow, SymbolWarning)+" "+msg, SymbolWarning+" "+msg)
}

// Error prints an error message to stderr. Never silenced by quiet mode.
func (o *Output) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	o.emit(o.errW, o.color(Red, SymbolError)+" "+msg, SymbolError+" "+msg)
}

// ErrorWithHint prints an error message with a hint.
func (o *Output) ErrorWithHint(err, hint string) {
	o.Error("%s", err)
	if o.errW != nil {
		o.mu.Lock()
		fmt.Fprintf(o.errW, "  %s %s\n", o.color(Gray, "Hint:"), hint)
		o.mu.Unlock()
	}
}

// Debug prints a debug message (only in verbose mode).
func (o *Output) Debug(format string, args ...interface{}) {
	if !o.verbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	o.emit(o.console(), o.color(Gray, "[DEBUG]")+" "+msg, "[DEBUG] "+msg)
}

// Field prints a labeled field.
func (o *Output) Field(label, value string) {
	o.emit(o.console(), "  "+o.color(Gray, label+":")+" "+value, label+": "+value)
}

// WallpaperInfo prints the images applied to each screen.
func (o *Output) WallpaperInfo(paths []string, setAt time.Time) {
	o.Success("Wallpaper set on %d screen(s)", len(paths))
	for i, p := range paths {
		o.Field(fmt.Sprintf("Screen %d", i+1), p)
	}
	if !setAt.IsZero() {
		o.Field("Set at", setAt.Format("2006-01-02 15:04:05"))
	}
}
