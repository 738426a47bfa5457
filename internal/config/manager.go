package config

import (
	"errors"

	"mlops-pipeline/internal/common"
	"mlops-pipeline/internal/errs"
	"mlops-pipeline/internal/logging"
	"mlops-pipeline/internal/models"

	"github.com/spf13/afero"
)

// Manager turns the on-disk YAML documents into typed per-stage configuration
type Manager struct {
	fs     afero.Fs
	config *models.Config
	params models.Mapping
	schema models.Mapping
}

// NewManager loads the config, params and schema documents and makes sure the artifacts root exists.
// Documents are read fresh on every call.
func NewManager(fs afero.Fs, paths models.Paths) (*Manager, error) {
	cfg, err := Load(fs, paths.Config)
	if err != nil {
		return nil, err
	}

	params, err := common.ReadYAML(fs, paths.Params)
	if err != nil {
		return nil, err
	}

	schema, err := common.ReadYAML(fs, paths.Schema)
	if err != nil {
		return nil, err
	}

	if err := common.CreateDirectories(fs, []string{cfg.ArtifactsRoot}, true); err != nil {
		return nil, err
	}

	logging.Log.WithField("config", paths.Config).Debug("Configuration loaded")

	return &Manager{
		fs:     fs,
		config: cfg,
		params: params,
		schema: schema,
	}, nil
}

// DataIngestionConfig extracts the data_ingestion section and makes sure its root directory exists
func (m *Manager) DataIngestionConfig() (models.DataIngestionConfig, error) {
	section := m.config.DataIngestion
	if problems := validateDataIngestion(section); len(problems) > 0 {
		return models.DataIngestionConfig{}, errs.E(errs.AttributeLookup, "data ingestion config", "", errors.Join(problems...))
	}

	if err := common.CreateDirectories(m.fs, []string{section.RootDir}, true); err != nil {
		return models.DataIngestionConfig{}, err
	}

	return models.DataIngestionConfig{
		RootDir:       section.RootDir,
		SourceURL:     section.SourceURL,
		LocalDataFile: section.LocalDataFile,
		UnzipDir:      section.UnzipDir,
	}, nil
}

// Params returns the parsed hyperparameters document
func (m *Manager) Params() models.Mapping {
	return m.params
}

// Schema returns the parsed schema document
func (m *Manager) Schema() models.Mapping {
	return m.schema
}
