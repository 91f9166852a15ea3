package fsutil

import (
	"os"
	"path/filepath"
)

// WriteFile writes data to path, creating missing parent directories.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Resolve returns path unchanged if it is absolute, otherwise joined to base.
func Resolve(base, path string) string {
	if filepath.IsAbs(path) || base == "" {
		return path
	}
	return filepath.Join(base, path)
}

// Display renders path for humans: relative to base with forward slashes,
// unless absolute is set or the path cannot be expressed relative to base.
func Display(base, path string, absolute bool) string {
	if path == "" {
		return ""
	}
	if absolute {
		if abs, err := filepath.Abs(Resolve(base, path)); err == nil {
			return filepath.ToSlash(abs)
		}
		return filepath.ToSlash(path)
	}
	if !filepath.IsAbs(path) || base == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
