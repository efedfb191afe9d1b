// Package config assembles runtime settings for the jobtrack CLI from
// defaults, an optional JSON file, environment variables and command-line
// flags, in that order of precedence.
package config

import "time"

// Config holds runtime settings for the jobtrack CLI.
//
// Fields:
//   - APIBaseURL: root URL of the job tracker REST backend.
//   - CloudName / UploadPreset: Cloudinary account and unsigned preset used
//     by the direct resume-upload path.
//   - UploadBaseURL: Cloudinary API root, overridable for testing.
//   - RequestTimeout: overall per-request deadline applied by the API client.
type Config struct {
	APIBaseURL     string
	CloudName      string
	UploadPreset   string
	UploadBaseURL  string
	RequestTimeout time.Duration
	Verbose        bool
}

// LoadDefaults populates c with the stock deployment values.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://job-application-tracker-2mm8.onrender.com"
	c.CloudName = "dmi9k62p1"
	c.UploadPreset = "jobtracker_unsigned"
	c.UploadBaseURL = ""
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), the environment, and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
