package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"mlops-pipeline/internal/ingestion"
	"mlops-pipeline/internal/logging"
	"mlops-pipeline/internal/models"
	"mlops-pipeline/internal/pipeline"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "mlops-pipeline",
		Usage: "Download and unpack the training dataset described by config.yaml",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the general pipeline configuration",
				Value:   "config/config.yaml",
			},
			&cli.StringFlag{
				Name:    "params",
				Aliases: []string{"p"},
				Usage:   "Path to the hyperparameters file",
				Value:   "params.yaml",
			},
			&cli.StringFlag{
				Name:    "schema",
				Aliases: []string{"s"},
				Usage:   "Path to the dataset schema file",
				Value:   "schema.yaml",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: func(c *cli.Context) error {
			return logging.SetLevel(c.String("log-level"))
		},
		Action: runDataIngestion,
	}

	if err := app.Run(os.Args); err != nil {
		logging.Log.WithError(err).Fatalf("stage %s failed", pipeline.StageName)
	}
}

// runDataIngestion runs the ingestion stage with the paths given on the command line.
// Failures are returned for main to log once.
func runDataIngestion(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	paths := models.Paths{
		Config: c.String("config"),
		Params: c.String("params"),
		Schema: c.String("schema"),
	}

	logging.Log.Infof(">>>>>>>>>> stage %s started <<<<<<<<", pipeline.StageName)

	if err := runStage(ctx, afero.NewOsFs(), paths, ingestion.NewHTTPDownloader(nil)); err != nil {
		return err
	}

	logging.Log.Infof(">>>>>>>>>> stage %s completed <<<<<<<<", pipeline.StageName)
	return nil
}

func runStage(ctx context.Context, fs afero.Fs, paths models.Paths, downloader ingestion.Downloader) error {
	p, err := pipeline.NewDataIngestionPipeline(fs, paths, downloader)
	if err != nil {
		return err
	}
	logging.Log.WithField("run_id", p.RunID()).Debug("Pipeline constructed")
	return p.Run(ctx)
}
