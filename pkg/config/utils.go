package config

import (
	"os"
	"path/filepath"
)

// FindEnvFile walks from the working directory towards the filesystem root and
// returns the first path at which filename exists. An empty filename means
// ".env". It returns os.ErrNotExist when no directory on the way holds the file,
// which lets Load run from any package directory of the repository.
func FindEnvFile(filename string) (string, error) {
	if filename == "" {
		filename = ".env"
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
