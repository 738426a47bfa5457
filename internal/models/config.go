package models

// Paths locates the three YAML documents a pipeline run is configured from
type Paths struct {
	Config string
	Params string
	Schema string
}

// Config represents the general pipeline configuration (config.yaml)
type Config struct {
	ArtifactsRoot string                `yaml:"artifacts_root"`
	DataIngestion *DataIngestionSection `yaml:"data_ingestion"`
}

// DataIngestionSection is the data_ingestion block of config.yaml as written on disk
type DataIngestionSection struct {
	RootDir       string `yaml:"root_dir"`
	SourceURL     string `yaml:"source_URL"`
	LocalDataFile string `yaml:"local_data_file"`
	UnzipDir      string `yaml:"unzip_dir"`
}

// DataIngestionConfig is the resolved configuration handed to the ingestion component.
// It is passed by value and never modified after construction.
type DataIngestionConfig struct {
	RootDir       string
	SourceURL     string
	LocalDataFile string
	UnzipDir      string
}
