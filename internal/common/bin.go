package common

import (
	"bytes"
	"encoding/gob"
	"path/filepath"

	"mlops-pipeline/internal/errs"
	"mlops-pipeline/internal/logging"

	"github.com/spf13/afero"
)

// SaveBin persists v as an opaque binary blob at path.
// The encoding is gob: a nil v is rejected as a serialization error, and empty
// maps and slices held in struct fields come back from LoadBin as nil.
func SaveBin(fs afero.Fs, path string, v interface{}) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return errs.E(errs.Serialization, "save bin", path, err)
	}

	if err := CreateDirectory(fs, filepath.Dir(path), false); err != nil {
		return err
	}
	if err := afero.WriteFile(fs, path, buf.Bytes(), 0o644); err != nil {
		return errs.FromFS("save bin", path, err)
	}

	logging.Log.WithField("path", path).Info("Binary data saved")
	return nil
}

// LoadBin restores a blob written by SaveBin into v, which must be a pointer
func LoadBin(fs afero.Fs, path string, v interface{}) error {
	f, err := fs.Open(path)
	if err != nil {
		return errs.FromFS("load bin", path, err)
	}
	defer func(f afero.File) {
		_ = f.Close()
	}(f)

	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return errs.E(errs.Serialization, "load bin", path, err)
	}

	logging.Log.WithField("path", path).Info("Binary data loaded")
	return nil
}
