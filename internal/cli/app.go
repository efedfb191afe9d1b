// Package cli implements the interactive views of the jobtrack client: the
// application list, the create and edit forms, the details view and the
// resume picker, all driven through a small command loop.
package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/dkolesn/jobtrack/internal/api"
	"github.com/dkolesn/jobtrack/internal/cloudinary"
	"github.com/dkolesn/jobtrack/internal/config"
	"github.com/dkolesn/jobtrack/internal/logging"
	"github.com/dkolesn/jobtrack/internal/models"
	"github.com/dkolesn/jobtrack/internal/services"
)

type App struct {
	config  *config.Config
	jobs    services.JobService
	resumes services.ResumeService
	reader  *bufio.Reader
	out     io.Writer

	// readFile is a test seam for loading resume files from disk.
	readFile func(path string) ([]byte, error)
	// writeFile is a test seam for saving downloaded resumes.
	writeFile func(path string, data []byte) error

	// cache is the list view's local copy of the job set. Deletion and
	// inline status changes mutate it only after the backend confirms.
	cache []models.Job
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	client := api.New(cfg.APIBaseURL, cfg.RequestTimeout, log)

	uploader := cloudinary.NewUploader(cfg.CloudName, cfg.UploadPreset, log)
	uploader.BaseURL = cfg.UploadBaseURL

	return &App{
		config:    cfg,
		jobs:      services.NewJobService(client, uploader, log),
		resumes:   services.NewResumeService(client),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		readFile:  os.ReadFile,
		writeFile: func(path string, data []byte) error { return os.WriteFile(path, data, 0o644) },
	}
}
