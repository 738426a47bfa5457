package common

import (
	"fmt"

	"mlops-pipeline/internal/errs"
	"mlops-pipeline/internal/models"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// ReadYAML parses the YAML document at path into a Mapping.
// An empty or null document is an error, not an empty mapping.
func ReadYAML(fs afero.Fs, path string) (models.Mapping, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errs.FromFS("read yaml", path, err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errs.E(errs.Parse, "read yaml", path, err)
	}
	if raw == nil {
		return nil, errs.E(errs.EmptyDocument, "read yaml", path, nil)
	}

	normalized, err := normalize(raw)
	if err != nil {
		return nil, errs.E(errs.Parse, "read yaml", path, err)
	}
	m, ok := normalized.(models.Mapping)
	if !ok {
		return nil, errs.E(errs.Parse, "read yaml", path, fmt.Errorf("top-level value is %T, not a mapping", raw))
	}
	return m, nil
}

// normalize converts yaml.v2's map[interface{}]interface{} into Mapping, recursively.
// Distinct keys that render to the same string (1 and "1") are rejected.
func normalize(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case map[interface{}]interface{}:
		m := make(models.Mapping, len(t))
		for k, val := range t {
			key := fmt.Sprint(k)
			if _, dup := m[key]; dup {
				return nil, fmt.Errorf("duplicate key %q after conversion to string", key)
			}
			n, err := normalize(val)
			if err != nil {
				return nil, err
			}
			m[key] = n
		}
		return m, nil
	case []interface{}:
		for i := range t {
			n, err := normalize(t[i])
			if err != nil {
				return nil, err
			}
			t[i] = n
		}
		return t, nil
	default:
		return v, nil
	}
}
