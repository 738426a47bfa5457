package config

import (
	"bytes"
	"errors"
	"fmt"

	"mlops-pipeline/internal/errs"
	"mlops-pipeline/internal/models"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// Load reads the configuration from the specified YAML file and returns a validated Config struct
func Load(fs afero.Fs, filepath string) (*models.Config, error) {
	configFile, err := afero.ReadFile(fs, filepath)
	if err != nil {
		return nil, errs.FromFS("load config", filepath, err)
	}
	if len(bytes.TrimSpace(configFile)) == 0 {
		return nil, errs.E(errs.EmptyDocument, "load config", filepath, nil)
	}

	var config *models.Config
	if err := yaml.Unmarshal(configFile, &config); err != nil {
		return nil, errs.E(errs.Parse, "load config", filepath, err)
	}
	if config == nil {
		return nil, errs.E(errs.EmptyDocument, "load config", filepath, nil)
	}

	if err := Validate(config); err != nil {
		return nil, errs.E(errs.AttributeLookup, "load config", filepath, err)
	}

	return config, nil
}

// Validate reports every missing required field at once
func Validate(cfg *models.Config) error {
	var problems []error
	if cfg.ArtifactsRoot == "" {
		problems = append(problems, missing("artifacts_root"))
	}
	problems = append(problems, validateDataIngestion(cfg.DataIngestion)...)
	return errors.Join(problems...)
}

func validateDataIngestion(s *models.DataIngestionSection) []error {
	if s == nil {
		return []error{missing("data_ingestion")}
	}

	var problems []error
	fields := []struct {
		name  string
		value string
	}{
		{"root_dir", s.RootDir},
		{"source_URL", s.SourceURL},
		{"local_data_file", s.LocalDataFile},
		{"unzip_dir", s.UnzipDir},
	}
	for _, f := range fields {
		if f.value == "" {
			problems = append(problems, missing("data_ingestion."+f.name))
		}
	}
	return problems
}

func missing(key string) error {
	return fmt.Errorf("%s: required", key)
}
