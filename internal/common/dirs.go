package common

import (
	"mlops-pipeline/internal/errs"
	"mlops-pipeline/internal/logging"

	"github.com/spf13/afero"
)

// CreateDirectory creates path and any missing parents. An existing path is left alone.
func CreateDirectory(fs afero.Fs, path string, verbose bool) error {
	if _, err := fs.Stat(path); err == nil {
		if verbose {
			logging.Log.Infof("Directory already exists: %s", path)
		}
		return nil
	}

	if err := fs.MkdirAll(path, 0o755); err != nil {
		return errs.FromFS("create directory", path, err)
	}
	if verbose {
		logging.Log.Infof("Created directory: %s", path)
	}
	return nil
}

// CreateDirectories creates each path in order and stops at the first failure
func CreateDirectories(fs afero.Fs, paths []string, verbose bool) error {
	for _, path := range paths {
		if err := CreateDirectory(fs, path, verbose); err != nil {
			return err
		}
	}
	return nil
}
