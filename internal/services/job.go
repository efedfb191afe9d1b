// Package services implements the client-side operations behind each view:
// listing and aggregating jobs, the create and edit submission flows, the
// inline status change, deletion, and the resume catalog.
package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/dkolesn/jobtrack/internal/api"
	"github.com/dkolesn/jobtrack/internal/common"
	"github.com/dkolesn/jobtrack/internal/logging"
	"github.com/dkolesn/jobtrack/internal/models"
)

// ResumeUploader pushes a file to the external hosting service and returns
// its public URL. Implemented by cloudinary.Uploader.
type ResumeUploader interface {
	Upload(ctx context.Context, filename string, content io.Reader, companyName string) (string, error)
}

// JobService is the operation surface behind the list, create, edit and
// details views.
type JobService interface {
	List(ctx context.Context) ([]models.Job, error)
	Get(ctx context.Context, id int) (models.Job, error)
	Create(ctx context.Context, draft models.Draft, resume *ResumeInput) (models.Job, error)
	Update(ctx context.Context, id int, draft models.Draft, file *LocalPDF) (models.Job, error)
	UpdateStatus(ctx context.Context, id int, status models.Status) (models.Job, error)
	Delete(ctx context.Context, id int) error
	DownloadResume(ctx context.Context, ref string) ([]byte, error)
}

type jobService struct {
	client   *api.Client
	uploader ResumeUploader
	log      logging.Logger
}

func NewJobService(client *api.Client, uploader ResumeUploader, log logging.Logger) JobService {
	return &jobService{client: client, uploader: uploader, log: log}
}

// List fetches the full set of job records in one request.
func (s *jobService) List(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := s.client.Get(ctx, "/jobs/", &jobs); err != nil {
		return nil, fmt.Errorf("fetching jobs: %w", err)
	}
	return jobs, nil
}

// Get fetches one record by identifier. A missing record matches
// common.ErrNotFound.
func (s *jobService) Get(ctx context.Context, id int) (models.Job, error) {
	var job models.Job
	if err := s.client.Get(ctx, fmt.Sprintf("/jobs/%d", id), &job); err != nil {
		return models.Job{}, fmt.Errorf("fetching job %d: %w", id, err)
	}
	return job, nil
}

// Create validates the draft and the resume input, resolves the resume
// reference (uploading a local file to the hosting service when no catalog
// URL was picked), and submits the combined record in a single request.
// Validation failures are reported before any network call is made.
func (s *jobService) Create(ctx context.Context, draft models.Draft, resume *ResumeInput) (models.Job, error) {
	if err := draft.Validate(); err != nil {
		return models.Job{}, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	if resume == nil || resume.Empty() {
		return models.Job{}, common.ErrNoResume
	}

	resumeURL := resume.PickedURL()
	if resumeURL == "" {
		file := resume.File()
		uploaded, err := s.uploader.Upload(ctx, file.Filename, bytes.NewReader(file.Content), draft.CompanyName)
		if err != nil {
			return models.Job{}, fmt.Errorf("uploading resume: %w", err)
		}
		resumeURL = uploaded
	}

	form := draftForm(draft).Set("resume_url", resumeURL)

	var created models.Job
	if err := s.client.PostMultipart(ctx, "/jobs/", form, &created); err != nil {
		return models.Job{}, fmt.Errorf("creating job: %w", err)
	}
	s.log.Info(ctx, "job created", "id", created.ID, "company", created.CompanyName)
	return created, nil
}

// Update submits a full-record replacement, with an optional new resume file
// sent as a file part for the backend to store.
func (s *jobService) Update(ctx context.Context, id int, draft models.Draft, file *LocalPDF) (models.Job, error) {
	if err := draft.Validate(); err != nil {
		return models.Job{}, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	form := draftForm(draft)
	if file != nil {
		form.File("resume", file.Filename, file.Content)
	}

	var updated models.Job
	if err := s.client.PutMultipart(ctx, fmt.Sprintf("/jobs/%d", id), form, &updated); err != nil {
		return models.Job{}, fmt.Errorf("updating job %d: %w", id, err)
	}
	s.log.Info(ctx, "job updated", "id", id)
	return updated, nil
}

// UpdateStatus issues the status-only partial update and returns the
// backend's view of the record.
func (s *jobService) UpdateStatus(ctx context.Context, id int, status models.Status) (models.Job, error) {
	if !status.Valid() {
		return models.Job{}, fmt.Errorf("%w: unknown status %q", common.ErrValidation, status)
	}

	path := fmt.Sprintf("/jobs/%d/status?status=%s", id, url.QueryEscape(string(status)))
	var updated models.Job
	if err := s.client.Put(ctx, path, &updated); err != nil {
		return models.Job{}, fmt.Errorf("updating status of job %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes one record. Irreversible; there is no soft delete.
func (s *jobService) Delete(ctx context.Context, id int) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("/jobs/%d", id), nil); err != nil {
		return fmt.Errorf("deleting job %d: %w", id, err)
	}
	s.log.Info(ctx, "job deleted", "id", id)
	return nil
}

// DownloadResume fetches the content behind a resume reference, which may be
// an absolute hosted URL or a backend-relative path.
func (s *jobService) DownloadResume(ctx context.Context, ref string) ([]byte, error) {
	content, err := s.client.Fetch(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("downloading resume: %w", err)
	}
	return content, nil
}

func draftForm(d models.Draft) *api.Form {
	return api.NewForm().
		Set("company_name", d.CompanyName).
		Set("job_title", d.JobTitle).
		Set("job_url", d.JobURL).
		Set("status", string(d.Status)).
		Set("job_description", d.JobDescription).
		Set("notes", d.Notes).
		Set("location", d.Location).
		Set("applied_date", d.AppliedDate)
}

// Summary holds the list view's aggregate counters.
type Summary struct {
	Total    int
	ByStatus map[models.Status]int
}

// Summarize derives per-status counts by exact status match. Every
// enumerated status is counted, including Rejected.
func Summarize(jobs []models.Job) Summary {
	s := Summary{Total: len(jobs), ByStatus: make(map[models.Status]int, len(models.Statuses()))}
	for _, st := range models.Statuses() {
		s.ByStatus[st] = 0
	}
	for _, j := range jobs {
		s.ByStatus[j.Status]++
	}
	return s
}
