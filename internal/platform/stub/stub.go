// Package stub provides a fallback platform implementation for systems
// without X11 tooling.
package stub

import (
	"context"
	"fmt"
	"runtime"

	"github.com/darkawower/wallcycle/internal/platform"
)

func init() {
	for _, os := range []string{"darwin", "windows", "solaris", "aix", "plan9"} {
		platform.Register(os, func() platform.Platform {
			return New()
		})
	}
}

// Platform implements platform.Platform as a fallback for unsupported systems.
type Platform struct {
	name string
}

// New creates a new stub platform instance.
func New() *Platform {
	return &Platform{
		name: runtime.GOOS,
	}
}

// Name returns the platform identifier.
func (p *Platform) Name() string {
	return p.name
}

// IsSupported returns false as this is a fallback implementation.
func (p *Platform) IsSupported() bool {
	return false
}

// Wallpaper returns the wallpaper service (stub).
func (p *Platform) Wallpaper() platform.WallpaperService {
	return &stubWallpaperService{}
}

// Screens returns the screen service (stub).
func (p *Platform) Screens() platform.ScreenService {
	return &stubScreenService{}
}

// Compile-time check that Platform implements platform.Platform.
var _ platform.Platform = (*Platform)(nil)

// stubWallpaperService is a no-op wallpaper service.
type stubWallpaperService struct{}

func (s *stubWallpaperService) Set(ctx context.Context, paths []string) error {
	return fmt.Errorf("wallpaper setting not supported on %s", runtime.GOOS)
}

// stubScreenService reports no screens.
type stubScreenService struct{}

func (s *stubScreenService) Count(ctx context.Context) (int, error) {
	return 0, fmt.Errorf("screen detection not supported on %s", runtime.GOOS)
}
