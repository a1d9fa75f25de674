package utils

import (
	"path/filepath"

	"github.com/funvibe/badlam/internal/config"
)

// ResolvePath resolves a relative path against baseDir.
// Absolute paths and an empty baseDir leave the path unchanged.
func ResolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" || baseDir == "." {
		return path
	}
	return filepath.Join(baseDir, path)
}

// ExtractProgramName derives a display name from a file path.
// It takes the base filename and removes any recognized source extension.
func ExtractProgramName(path string) string {
	name := filepath.Base(path)
	return config.TrimSourceExt(name)
}

// WantPath returns the expected-output file that belongs to a source file:
// prog.lam -> prog.want.
func WantPath(path string) string {
	return config.TrimSourceExt(path) + config.WantFileExt
}
