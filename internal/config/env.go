package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays cfg with environment variables. A .env file loaded by
// the entrypoint (godotenv) lands here too.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("JOBTRACK_API_BASE_URL"); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv("JOBTRACK_CLOUD_NAME"); ok && v != "" {
		cfg.CloudName = v
	}
	if v, ok := os.LookupEnv("JOBTRACK_UPLOAD_PRESET"); ok && v != "" {
		cfg.UploadPreset = v
	}
	if v, ok := os.LookupEnv("JOBTRACK_UPLOAD_BASE_URL"); ok && v != "" {
		cfg.UploadBaseURL = v
	}
	if v, ok := os.LookupEnv("JOBTRACK_REQUEST_TIMEOUT"); ok && v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
}
