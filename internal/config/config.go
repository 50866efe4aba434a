package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// AppName is used for the config directory and log file names.
const AppName = "wallcycle"

// DefaultRetryDelay is the backoff between failed wallpaper tool runs.
const DefaultRetryDelay = time.Second

var (
	// ErrNoDirectory is returned when neither the wallpaper directory nor
	// the fallback directory exists.
	ErrNoDirectory = errors.New("no usable wallpaper directory")

	// ErrInvalidInterval is returned for a non-numeric or negative interval.
	ErrInvalidInterval = errors.New("invalid interval")
)

// Config holds the validated run parameters. It is not modified after Parse.
type Config struct {
	// Dir is the directory that will actually be scanned.
	Dir string

	// PrimaryDir and FallbackDir are the directories as given.
	PrimaryDir  string
	FallbackDir string

	// Fallback is true when PrimaryDir was missing and FallbackDir is used.
	// Fallback mode never cycles.
	Fallback bool

	// Interval is the number of seconds between cycles; 0 means one-shot.
	Interval int

	LogPath    string
	RetryDelay time.Duration
	DryRun     bool
	Verbose    bool
	Quiet      bool
	NoColor    bool
}

func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultLogPath returns the log file location, or "" when no home
// directory is available.
func DefaultLogPath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, AppName+".log")
}

func DefaultConfig() *Config {
	return &Config{
		LogPath:    DefaultLogPath(),
		RetryDelay: DefaultRetryDelay,
	}
}

// Parse builds a Config from the positional arguments
// <wallpaper_directory> [interval_seconds] [fallback_directory].
// Ambient settings (log path, verbosity, dry-run) are copied from base.
func Parse(args []string, base Config) (*Config, error) {
	if len(args) == 0 || args[0] == "" {
		return nil, fmt.Errorf("%w: wallpaper directory is required", ErrNoDirectory)
	}
	if len(args) > 3 {
		return nil, fmt.Errorf("too many arguments: %d", len(args))
	}

	cfg := base
	cfg.PrimaryDir = ExpandPath(args[0])
	if len(args) > 2 {
		cfg.FallbackDir = ExpandPath(args[2])
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	cfg.LogPath = ExpandPath(cfg.LogPath)

	if err := cfg.resolveDir(); err != nil {
		return nil, err
	}

	if len(args) > 1 {
		interval, err := ParseInterval(args[1])
		if err != nil {
			return nil, err
		}
		cfg.Interval = interval
	}

	return &cfg, nil
}

// resolveDir picks the primary directory or, failing that, the fallback.
func (c *Config) resolveDir() error {
	if isDir(c.PrimaryDir) {
		c.Dir = c.PrimaryDir
		c.Fallback = false
		return nil
	}

	if c.FallbackDir == "" {
		return fmt.Errorf("%w: %s does not exist", ErrNoDirectory, c.PrimaryDir)
	}
	if !isDir(c.FallbackDir) {
		return fmt.Errorf("%w: neither %s nor fallback %s exists", ErrNoDirectory, c.PrimaryDir, c.FallbackDir)
	}

	c.Dir = c.FallbackDir
	c.Fallback = true
	return nil
}

// ParseInterval parses a non-negative number of seconds. An empty string
// is treated as 0.
func ParseInterval(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidInterval, s)
	}
	return n, nil
}

// IntervalDuration returns Interval as a time.Duration.
func (c *Config) IntervalDuration() time.Duration {
	return time.Duration(c.Interval) * time.Second
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ExpandPath replaces a leading "~/" with the home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
