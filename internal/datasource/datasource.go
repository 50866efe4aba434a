// Package datasource finds wallpaper images on disk and draws random
// selections from them.
package datasource

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// SupportedExtensions are the image file suffixes we collect. Matching is
// case-sensitive.
var SupportedExtensions = []string{".jpg", ".jpeg", ".png"}

// IsImage reports whether name ends in one of SupportedExtensions.
func IsImage(name string) bool {
	for _, ext := range SupportedExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// ListImages walks root recursively and returns every image path in
// traversal order. A symlinked root is resolved; links found while
// walking are not followed.
func ListImages(ctx context.Context, root string) ([]string, error) {
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory: %w", err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", root)
	}

	var images []string

	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// The root must be readable; unreadable subtrees are skipped.
			if path == resolved {
				return err
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// Check context cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() {
			return nil
		}

		if IsImage(d.Name()) {
			images = append(images, path)
		}
		return nil
	}

	if err := filepath.WalkDir(resolved, walkFn); err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return images, nil
}
