package common

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"mlops-pipeline/internal/errs"
	"mlops-pipeline/internal/logging"

	"github.com/spf13/afero"
)

// LoadJSON parses the JSON object at path into a plain map
func LoadJSON(fs afero.Fs, path string) (map[string]interface{}, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errs.FromFS("load json", path, err)
	}

	var content map[string]interface{}
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, errs.E(errs.Parse, "load json", path, err)
	}
	return content, nil
}

// SaveJSON writes data as indented JSON, creating the parent directory first.
// Non-ASCII text is written as-is. A negative indent is treated as zero.
func SaveJSON(fs afero.Fs, path string, data interface{}, indent int) error {
	if indent < 0 {
		indent = 0
	}
	var compact bytes.Buffer
	enc := json.NewEncoder(&compact)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return errs.E(errs.Serialization, "save json", path, err)
	}

	// json.Indent breaks lines even for a zero-width indent, unlike Encoder.SetIndent
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact.Bytes(), "", strings.Repeat(" ", indent)); err != nil {
		return errs.E(errs.Serialization, "save json", path, err)
	}

	if err := CreateDirectory(fs, filepath.Dir(path), false); err != nil {
		return err
	}
	if err := afero.WriteFile(fs, path, buf.Bytes(), 0o644); err != nil {
		return errs.FromFS("save json", path, err)
	}

	logging.Log.WithField("path", path).Info("JSON data saved")
	return nil
}
