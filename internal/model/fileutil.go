package model

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// IsFile reports whether path is a regular file. Symlinks are followed.
func IsFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, errors.Wrapf(err, "failed to stat %s", path)
	}
	return info.Mode().IsRegular(), nil
}

// ReadText reads the whole file and checks that it decodes as UTF-8.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read file %s", path)
	}
	if !utf8.Valid(data) {
		return "", errors.Wrapf(ErrNotText, "cannot read %s", path)
	}
	return string(data), nil
}

// ExpandPath expands a leading ~ to the user's home directory and resolves
// relative paths against workDir.
func ExpandPath(path, workDir string) string {
	if path == "" {
		return workDir
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[1:])
		}
	}

	if !filepath.IsAbs(path) && workDir != "" {
		path = filepath.Join(workDir, path)
	}
	return path
}
