package utils

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/gulps/pkg/errors"
)

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	if homeDir = os.Getenv("HOME"); homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrFileAccess, "unable to determine home directory")
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !(len(path) > 1 && path[0] == '~' && path[1] == '/') {
		return path, nil
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot expand %s", path)
	}
	if path == "~" {
		return homeDir, nil
	}
	return filepath.Join(homeDir, path[2:]), nil
}

// ExpandPath expands a leading ~ and environment variables. Paths that
// cannot be expanded are returned with only the variables substituted.
func ExpandPath(path string) string {
	path = os.ExpandEnv(path)
	if expanded, err := ExpandHome(path); err == nil {
		return expanded
	}
	return path
}
