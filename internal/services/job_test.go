package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkolesn/jobtrack/internal/api"
	"github.com/dkolesn/jobtrack/internal/common"
	"github.com/dkolesn/jobtrack/internal/logging"
	"github.com/dkolesn/jobtrack/internal/models"
)

type fakeUploader struct {
	url      string
	err      error
	uploads  []string // filenames seen
	company  string
	received []byte
}

func (f *fakeUploader) Upload(ctx context.Context, filename string, content io.Reader, companyName string) (string, error) {
	f.uploads = append(f.uploads, filename)
	f.company = companyName
	f.received, _ = io.ReadAll(content)
	return f.url, f.err
}

// countingBackend wraps a handler and counts requests, so tests can assert
// that client-side rejections never hit the network.
func newService(t *testing.T, up *fakeUploader, h http.HandlerFunc) (JobService, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	log := logging.NewText(io.Discard, false)
	client := api.New(srv.URL, 5*time.Second, log)
	return NewJobService(client, up, log), &calls
}

func validDraft() models.Draft {
	return models.Draft{
		CompanyName: "Google",
		JobTitle:    "Software Engineer",
		Status:      models.StatusApplied,
		AppliedDate: "2025-06-01",
	}
}

func TestCreate_UploadsLocalFileAndSubmitsURL(t *testing.T) {
	up := &fakeUploader{url: "https://res.cloudinary.com/x/resumes/google/1_cv"}
	svc, _ := newService(t, up, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/jobs/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Google", r.FormValue("company_name"))
		assert.Equal(t, "Software Engineer", r.FormValue("job_title"))
		assert.Equal(t, "Applied", r.FormValue("status"))
		assert.Equal(t, "2025-06-01", r.FormValue("applied_date"))
		assert.Equal(t, up.url, r.FormValue("resume_url"))

		// Canonical path submits a URL, never a file part.
		_, _, err := r.FormFile("resume")
		assert.Error(t, err)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":1,"company_name":"Google","job_title":"Software Engineer","status":"Applied","resume_url":"`+up.url+`"}`)
	})

	var resume ResumeInput
	require.NoError(t, resume.AttachFile("cv.pdf", []byte("%PDF-1.4 body")))

	created, err := svc.Create(context.Background(), validDraft(), &resume)
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, up.url, created.ResumeRef())
	assert.Equal(t, []string{"cv.pdf"}, up.uploads)
	assert.Equal(t, "Google", up.company)
	assert.Equal(t, "%PDF-1.4 body", string(up.received))
}

func TestCreate_PickedURLSkipsUpload(t *testing.T) {
	up := &fakeUploader{url: "unused"}
	svc, _ := newService(t, up, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "https://res.cloudinary.com/x/existing", r.FormValue("resume_url"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":2}`)
	})

	var resume ResumeInput
	resume.Pick("https://res.cloudinary.com/x/existing")

	_, err := svc.Create(context.Background(), validDraft(), &resume)
	require.NoError(t, err)
	assert.Empty(t, up.uploads)
}

func TestCreate_NoResumeBlocksBeforeNetwork(t *testing.T) {
	svc, calls := newService(t, &fakeUploader{}, func(w http.ResponseWriter, r *http.Request) {})

	_, err := svc.Create(context.Background(), validDraft(), &ResumeInput{})
	require.ErrorIs(t, err, common.ErrNoResume)
	assert.Zero(t, calls.Load())
}

func TestCreate_InvalidDraftBlocksBeforeNetwork(t *testing.T) {
	up := &fakeUploader{}
	svc, calls := newService(t, up, func(w http.ResponseWriter, r *http.Request) {})

	draft := validDraft()
	draft.CompanyName = "  "

	var resume ResumeInput
	resume.Pick("https://x/cv")

	_, err := svc.Create(context.Background(), draft, &resume)
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Zero(t, calls.Load())
	assert.Empty(t, up.uploads)
}

func TestCreate_UploadFailureSurfaces(t *testing.T) {
	up := &fakeUploader{err: errors.New("preset not allowed")}
	svc, calls := newService(t, up, func(w http.ResponseWriter, r *http.Request) {})

	var resume ResumeInput
	require.NoError(t, resume.AttachFile("cv.pdf", []byte("%PDF-1.4")))

	_, err := svc.Create(context.Background(), validDraft(), &resume)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preset not allowed")
	assert.Zero(t, calls.Load(), "backend must not be called when the upload fails")
}

func TestAttachFile_RejectsNonPDF(t *testing.T) {
	var resume ResumeInput
	err := resume.AttachFile("cv.docx", []byte("PK\x03\x04 not a pdf"))
	require.ErrorIs(t, err, common.ErrNotPDF)
	assert.True(t, resume.Empty())
}

func TestResumeInput_MutualExclusivity(t *testing.T) {
	var resume ResumeInput

	require.NoError(t, resume.AttachFile("cv.pdf", []byte("%PDF-1.4")))
	require.NotNil(t, resume.File())

	resume.Pick("https://x/picked")
	assert.Nil(t, resume.File())
	assert.Equal(t, "https://x/picked", resume.PickedURL())

	// And back again, any number of times.
	require.NoError(t, resume.AttachFile("cv2.pdf", []byte("%PDF-1.4")))
	assert.Empty(t, resume.PickedURL())
	assert.Equal(t, "cv2.pdf", resume.File().Filename)
}

func TestUpdate_OptionalFilePart(t *testing.T) {
	var gotFile bool
	svc, _ := newService(t, &fakeUploader{}, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/jobs/5", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		if _, _, err := r.FormFile("resume"); err == nil {
			gotFile = true
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":5}`)
	})

	_, err := svc.Update(context.Background(), 5, validDraft(), nil)
	require.NoError(t, err)
	assert.False(t, gotFile)

	_, err = svc.Update(context.Background(), 5, validDraft(), &LocalPDF{Filename: "new.pdf", Content: []byte("%PDF-1.4")})
	require.NoError(t, err)
	assert.True(t, gotFile)
}

func TestUpdateStatus_QueryEscaped(t *testing.T) {
	svc, _ := newService(t, &fakeUploader{}, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/jobs/3/status", r.URL.Path)
		assert.Equal(t, "Online Assignment", r.URL.Query().Get("status"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":3,"status":"Online Assignment"}`)
	})

	updated, err := svc.UpdateStatus(context.Background(), 3, models.StatusOnlineAssignment)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnlineAssignment, updated.Status)
}

func TestUpdateStatus_InvalidValueRejectedLocally(t *testing.T) {
	svc, calls := newService(t, &fakeUploader{}, func(w http.ResponseWriter, r *http.Request) {})

	_, err := svc.UpdateStatus(context.Background(), 3, "Ghosted")
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Zero(t, calls.Load())
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := newService(t, &fakeUploader{}, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Job not found"}`, http.StatusNotFound)
	})

	_, err := svc.Get(context.Background(), 99)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc, _ := newService(t, &fakeUploader{}, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/jobs/4", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"message":"Job deleted successfully"}`)
	})

	require.NoError(t, svc.Delete(context.Background(), 4))
}

func TestSummarize_CountsEveryStatus(t *testing.T) {
	jobs := []models.Job{
		{Status: models.StatusApplied},
		{Status: models.StatusApplied},
		{Status: models.StatusInterviewing},
		{Status: models.StatusOffer},
		{Status: models.StatusRejected},
	}

	s := Summarize(jobs)
	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 2, s.ByStatus[models.StatusApplied])
	assert.Equal(t, 1, s.ByStatus[models.StatusInterviewing])
	assert.Equal(t, 1, s.ByStatus[models.StatusOffer])
	assert.Equal(t, 1, s.ByStatus[models.StatusRejected])
	assert.Equal(t, 0, s.ByStatus[models.StatusOnlineAssignment])
}
