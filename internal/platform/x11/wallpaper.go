package x11

import (
	"context"
	"errors"
	"fmt"

	"github.com/darkawower/wallcycle/internal/platform"
)

// FehCommand is the wallpaper tool.
const FehCommand = "feh"

// ErrNoImages is returned when Set is called without any paths.
var ErrNoImages = errors.New("no images to set")

// WallpaperService implements platform.WallpaperService using feh.
type WallpaperService struct {
	runner platform.Runner
}

// NewWallpaperService creates a new feh wallpaper service.
func NewWallpaperService(r platform.Runner) *WallpaperService {
	return &WallpaperService{runner: r}
}

// Args returns the feh arguments for paths: fill scaling, no ~/.fehbg,
// then one image per screen.
func (s *WallpaperService) Args(paths []string) []string {
	args := make([]string, 0, len(paths)+2)
	args = append(args, "--bg-fill", "--no-fehbg")
	return append(args, paths...)
}

// CommandLine returns the full command that Set would run.
func (s *WallpaperService) CommandLine(paths []string) []string {
	return append([]string{FehCommand}, s.Args(paths)...)
}

// Set applies paths to the screens in xrandr order.
func (s *WallpaperService) Set(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return ErrNoImages
	}
	if _, err := s.runner.Run(ctx, FehCommand, s.Args(paths)...); err != nil {
		return fmt.Errorf("failed to set wallpaper: %w", err)
	}
	return nil
}
