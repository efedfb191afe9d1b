package config

import (
	"flag"
	"os"
	"time"

	"github.com/dkolesn/jobtrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string       base URL of the backend API
//	-cloud string   Cloudinary cloud name
//	-preset string  Cloudinary unsigned upload preset
//	-t int          request timeout in seconds
//	-v              verbose (debug) logging
//
// The function filters os.Args to only the flags it owns, via
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-cloud", "-preset", "-t", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.CloudName, "cloud", cfg.CloudName, "Cloudinary cloud name")
	fs.StringVar(&cfg.UploadPreset, "preset", cfg.UploadPreset, "Cloudinary unsigned upload preset")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
