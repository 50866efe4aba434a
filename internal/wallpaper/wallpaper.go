// Package wallpaper applies a selection of images to the desktop.
package wallpaper

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/darkawower/wallcycle/internal/platform"
	"github.com/darkawower/wallcycle/internal/ui"
)

// commandLiner is implemented by services that can describe the command
// they would run.
type commandLiner interface {
	CommandLine(paths []string) []string
}

// Setter applies selections through a platform.WallpaperService and
// reports the outcome.
type Setter struct {
	svc    platform.WallpaperService
	out    *ui.Output
	dryRun bool
	now    func() time.Time
}

// NewSetter creates a new wallpaper setter for the current platform.
func NewSetter(out *ui.Output) *Setter {
	return NewSetterWithService(platform.Current().Wallpaper(), out)
}

// NewSetterWithService creates a setter backed by svc.
func NewSetterWithService(svc platform.WallpaperService, out *ui.Output) *Setter {
	return &Setter{
		svc: svc,
		out: out,
		now: time.Now,
	}
}

// SetDryRun makes Set print the tool invocation instead of running it.
func (s *Setter) SetDryRun(dryRun bool) {
	s.dryRun = dryRun
}

// Set applies one image per screen. An empty selection is a no-op.
func (s *Setter) Set(ctx context.Context, selection []string) error {
	if len(selection) == 0 {
		s.out.Warning("No screens detected, nothing to set")
		return nil
	}

	paths := make([]string, len(selection))
	for i, p := range selection {
		absPath, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		paths[i] = absPath
	}

	if s.dryRun {
		if cl, ok := s.svc.(commandLiner); ok {
			s.out.Info("Would run: %s", strings.Join(cl.CommandLine(paths), " "))
		} else {
			s.out.Info("Would set wallpaper to: %s", strings.Join(paths, ", "))
		}
		return nil
	}

	if err := s.svc.Set(ctx, paths); err != nil {
		s.out.Error("%v", err)
		return err
	}

	s.out.WallpaperInfo(paths, s.now())
	return nil
}
