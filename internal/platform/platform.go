// Package platform provides OS-agnostic abstractions for the display
// system and the external wallpaper tool.
package platform

import "context"

// Platform provides access to OS-specific services.
type Platform interface {
	// Name returns the platform identifier (e.g., "x11").
	Name() string

	// IsSupported returns true if this platform is fully supported.
	IsSupported() bool

	// Wallpaper returns the wallpaper management service.
	Wallpaper() WallpaperService

	// Screens returns the display enumeration service.
	Screens() ScreenService
}

// WallpaperService applies wallpapers to the connected screens.
type WallpaperService interface {
	// Set applies one image per screen, in screen order, in a single
	// invocation of the underlying tool.
	Set(ctx context.Context, paths []string) error
}

// ScreenService enumerates display outputs.
type ScreenService interface {
	// Count returns the number of currently connected outputs.
	Count(ctx context.Context) (int, error)
}

// Runner executes an external command and returns its combined
// stdout and stderr.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// CommandError describes an external tool that exited unsuccessfully.
type CommandError struct {
	// Command is the full command line.
	Command string

	// Output is the combined stdout and stderr of the tool.
	Output string

	Err error
}

func (e *CommandError) Error() string {
	if e.Output == "" {
		return e.Command + ": " + e.Err.Error()
	}
	return e.Command + ": " + e.Err.Error() + " (output: " + e.Output + ")"
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
