package pipeline

import (
	"context"

	"mlops-pipeline/internal/config"
	"mlops-pipeline/internal/ingestion"
	"mlops-pipeline/internal/logging"
	"mlops-pipeline/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const StageName = "Data Ingestion Stage"

// DataIngestionPipeline wires configuration into the ingestion component and runs it
type DataIngestionPipeline struct {
	runID     string
	ingestion *ingestion.DataIngestion
	log       *logrus.Entry
}

// NewDataIngestionPipeline loads configuration from paths and builds the ingestion component
func NewDataIngestionPipeline(fs afero.Fs, paths models.Paths, downloader ingestion.Downloader) (*DataIngestionPipeline, error) {
	runID := uuid.NewString()
	locallog := logging.Log.WithFields(logrus.Fields{
		"run_id": runID,
		"stage":  StageName,
	})

	manager, err := config.NewManager(fs, paths)
	if err != nil {
		return nil, err
	}

	cfg, err := manager.DataIngestionConfig()
	if err != nil {
		return nil, err
	}

	component, err := ingestion.New(fs, cfg, downloader, ingestion.WithLogger(locallog))
	if err != nil {
		return nil, err
	}

	return &DataIngestionPipeline{
		runID:     runID,
		ingestion: component,
		log:       locallog,
	}, nil
}

// RunID identifies this pipeline instance in log output
func (p *DataIngestionPipeline) RunID() string {
	return p.runID
}

// Stage reports the ingestion progress
func (p *DataIngestionPipeline) Stage() ingestion.Stage {
	return p.ingestion.Stage()
}

// Run downloads then extracts the dataset. Errors are returned as-is.
func (p *DataIngestionPipeline) Run(ctx context.Context) error {
	if err := p.ingestion.DownloadFile(ctx); err != nil {
		return err
	}
	if err := p.ingestion.ExtractZipFile(); err != nil {
		return err
	}
	p.log.Debug("Ingestion finished")
	return nil
}
