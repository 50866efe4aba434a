// Package x11 provides the X11 platform implementation built on xrandr and feh.
package x11

import "github.com/darkawower/wallcycle/internal/platform"

func init() {
	for _, os := range []string{"linux", "freebsd", "openbsd", "netbsd", "dragonfly"} {
		platform.Register(os, func() platform.Platform {
			return New()
		})
	}
}

// Platform implements platform.Platform for X11 sessions.
type Platform struct {
	wallpaper *WallpaperService
	screens   *ScreenService
}

// New creates a new X11 platform instance that runs real commands.
func New() *Platform {
	return NewWithRunner(ExecRunner{})
}

// NewWithRunner creates an X11 platform that executes tools through r.
func NewWithRunner(r platform.Runner) *Platform {
	return &Platform{
		wallpaper: NewWallpaperService(r),
		screens:   NewScreenService(r),
	}
}

// Name returns the platform identifier.
func (p *Platform) Name() string {
	return "x11"
}

// IsSupported returns true as X11 is fully supported.
func (p *Platform) IsSupported() bool {
	return true
}

// Wallpaper returns the wallpaper management service.
func (p *Platform) Wallpaper() platform.WallpaperService {
	return p.wallpaper
}

// Screens returns the display enumeration service.
func (p *Platform) Screens() platform.ScreenService {
	return p.screens
}

// Compile-time check that Platform implements platform.Platform.
var _ platform.Platform = (*Platform)(nil)
