package ingestion

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mlops-pipeline/internal/common"
	"mlops-pipeline/internal/errs"
	"mlops-pipeline/internal/logging"
	"mlops-pipeline/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const partialSuffix = ".part"

// DataIngestion downloads the dataset archive and unpacks it into the configured directory
type DataIngestion struct {
	fs         afero.Fs
	config     models.DataIngestionConfig
	downloader Downloader
	stage      Stage
	log        *logrus.Entry
}

// Option configures a DataIngestion.
type Option func(*DataIngestion)

// WithLogger sets the log entry used for progress messages
func WithLogger(entry *logrus.Entry) Option {
	return func(d *DataIngestion) {
		if entry != nil {
			d.log = entry
		}
	}
}

// New creates a DataIngestion and makes sure its root directory exists
func New(fs afero.Fs, cfg models.DataIngestionConfig, downloader Downloader, opts ...Option) (*DataIngestion, error) {
	d := &DataIngestion{
		fs:         fs,
		config:     cfg,
		downloader: downloader,
		log:        logging.Log.WithField("component", "data_ingestion"),
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := common.CreateDirectories(fs, []string{cfg.RootDir}, true); err != nil {
		return nil, err
	}
	return d, nil
}

// Config returns the configuration the component was built with
func (d *DataIngestion) Config() models.DataIngestionConfig {
	return d.config
}

// Stage reports how far the ingestion has progressed
func (d *DataIngestion) Stage() Stage {
	return d.stage
}

// DownloadFile fetches the archive unless a file already exists at the local path.
// The body is written to a sibling .part file and renamed into place once complete.
func (d *DataIngestion) DownloadFile(ctx context.Context) error {
	target := d.config.LocalDataFile
	locallog := d.log.WithField("path", target)

	exists, err := afero.Exists(d.fs, target)
	if err != nil {
		return errs.FromFS("download", target, err)
	}
	if exists {
		locallog.Info("File already exists, skipping download")
		d.stage = Downloaded
		return nil
	}

	if err := common.CreateDirectory(d.fs, filepath.Dir(target), false); err != nil {
		return err
	}

	locallog.WithField("url", d.config.SourceURL).Info("Downloading file")

	partial := target + partialSuffix
	f, err := d.fs.Create(partial)
	if err != nil {
		return errs.FromFS("download", partial, err)
	}

	_, err = d.downloader.Download(ctx, d.config.SourceURL, f)
	closeErr := f.Close()
	if err != nil {
		_ = d.fs.Remove(partial)
		return err
	}
	if closeErr != nil {
		_ = d.fs.Remove(partial)
		return errs.FromFS("download", partial, closeErr)
	}

	if err := d.fs.Rename(partial, target); err != nil {
		_ = d.fs.Remove(partial)
		return errs.FromFS("download", target, err)
	}

	size, err := common.GetSize(d.fs, target)
	if err != nil {
		return err
	}
	locallog.Infof("Downloaded %s", size)

	d.stage = Downloaded
	return nil
}

// ExtractZipFile unpacks every entry of the local archive into the unzip directory
func (d *DataIngestion) ExtractZipFile() error {
	archive := d.config.LocalDataFile
	dest := d.config.UnzipDir
	locallog := d.log.WithField("path", dest)

	locallog.Info("Extracting zip file")

	if err := common.CreateDirectory(d.fs, dest, false); err != nil {
		return err
	}

	f, err := d.fs.Open(archive)
	if err != nil {
		return errs.FromFS("extract", archive, err)
	}
	defer func(f afero.File) {
		_ = f.Close()
	}(f)

	info, err := f.Stat()
	if err != nil {
		return errs.FromFS("extract", archive, err)
	}

	zr, err := zip.NewReader(f, info.Size())
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return errs.E(errs.ArchiveFormat, "extract", archive, err)
	}

	for _, zf := range zr.File {
		if err := d.extractEntry(zf, dest); err != nil {
			return err
		}
	}

	locallog.WithField("entries", len(zr.File)).Info("Extraction completed")
	d.stage = Extracted
	return nil
}

func (d *DataIngestion) extractEntry(zf *zip.File, dest string) error {
	name := filepath.FromSlash(zf.Name)
	if !filepath.IsLocal(name) {
		return errs.E(errs.ArchiveFormat, "extract", d.config.LocalDataFile, fmt.Errorf("entry %q escapes the destination", zf.Name))
	}
	target := filepath.Join(dest, name)

	if zf.FileInfo().IsDir() {
		if err := d.fs.MkdirAll(target, 0o755); err != nil {
			return errs.FromFS("extract", target, err)
		}
		return nil
	}

	if err := d.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errs.FromFS("extract", target, err)
	}

	rc, err := zf.Open()
	if err != nil {
		return errs.E(errs.ArchiveFormat, "extract", zf.Name, err)
	}
	defer func(rc io.ReadCloser) {
		_ = rc.Close()
	}(rc)

	// Entry modes are ignored so a later run can overwrite the file.
	out, err := d.fs.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return errs.FromFS("extract", target, err)
	}

	_, err = io.Copy(out, rc)
	closeErr := out.Close()
	if err != nil {
		if errors.Is(err, zip.ErrChecksum) || errors.Is(err, zip.ErrFormat) || errors.Is(err, io.ErrUnexpectedEOF) {
			return errs.E(errs.ArchiveFormat, "extract", zf.Name, err)
		}
		return errs.FromFS("extract", target, err)
	}
	if closeErr != nil {
		return errs.FromFS("extract", target, closeErr)
	}
	return nil
}
