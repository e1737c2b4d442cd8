package config

import "time"

// ExtractorConfig is the root configuration for the parquet extractor.
type ExtractorConfig struct {
	Source  SourceConfig  `yaml:"source"`
	Preview PreviewConfig `yaml:"preview"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig describes the remote dataset.
type SourceConfig struct {
	URL        string        `yaml:"url"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"` // 0 disables retries
	UserAgent  string        `yaml:"user_agent"`
}

// PreviewConfig controls what is printed after the download.
type PreviewConfig struct {
	Rows int `yaml:"rows"`
}

// LoggingConfig holds slog settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DBConfig holds a single database connection.
//
// Fields are kept as the raw environment strings. An empty field means the
// variable was unset and is left for the driver to default.
type DBConfig struct {
	Name     string
	User     string
	Password string
	Host     string
	Port     string
}
