// Package sys holds the small filesystem helpers the sandbox uses for assets and settings.
package sys

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"spritebox/internal/logging"
)

// ErrAbsolutePath is returned by WriteFile for paths outside the working tree.
var ErrAbsolutePath = errors.New("absolute path not allowed")

func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return data, nil
}

// WriteFile writes data to a relative path, creating parent directories.
func WriteFile(path string, data []byte) error {
	if filepath.IsAbs(path) {
		return errors.Wrap(ErrAbsolutePath, path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

func AbsPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "resolve %s", path)
	}
	return abs, nil
}

// UniqueFiles maps base names to paths for every file under dir. When two files
// share a base name the lexically later path wins. A missing dir yields an empty map.
func UniqueFiles(dir string) (map[string]string, error) {
	out := make(map[string]string)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logging.Warn("directory %s does not exist", dir)
		return out, nil
	}
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			out[d.Name()] = path
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walk %s", dir)
	}
	return out, nil
}
