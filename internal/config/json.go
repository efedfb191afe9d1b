package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dkolesn/jobtrack/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Timeout is
// given in seconds.
type jsonConfig struct {
	APIBaseURL            string `json:"api_base_url"`
	CloudName             string `json:"cloud_name"`
	UploadPreset          string `json:"upload_preset"`
	UploadBaseURL         string `json:"upload_base_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flags. Absent file path means no JSON is loaded. Only fields
// present in the file override; zero values are left alone. Panics on read
// or unmarshal errors, matching the fail-fast startup behavior.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.CloudName != "" {
		cfg.CloudName = jc.CloudName
	}
	if jc.UploadPreset != "" {
		cfg.UploadPreset = jc.UploadPreset
	}
	if jc.UploadBaseURL != "" {
		cfg.UploadBaseURL = jc.UploadBaseURL
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
}
