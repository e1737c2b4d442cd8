package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultSourceURL   = "https://huggingface.co/datasets/electricsheepafrica/nigerian_energy_and_utilities_billing_payments/resolve/main/nigerian_energy_and_utilities_billing_payments.parquet"
	DefaultTimeout     = 5 * time.Minute
	DefaultUserAgent   = "energy-billing-extractor"
	DefaultPreviewRows = 10
	DefaultLogLevel    = "info"
	DefaultEnvFile     = ".env"
)

// Default returns an extractor config with every default applied.
func Default() *ExtractorConfig {
	cfg := &ExtractorConfig{}
	cfg.applyDefaults()
	return cfg
}

func (c *ExtractorConfig) applyDefaults() {
	// Source defaults
	if c.Source.URL == "" {
		c.Source.URL = DefaultSourceURL
	}
	if c.Source.Timeout == 0 {
		c.Source.Timeout = DefaultTimeout
	}
	if c.Source.UserAgent == "" {
		c.Source.UserAgent = DefaultUserAgent
	}

	// Preview defaults
	if c.Preview.Rows == 0 {
		c.Preview.Rows = DefaultPreviewRows
	}

	// Logging defaults
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}
