package services

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/dkolesn/jobtrack/internal/api"
	"github.com/dkolesn/jobtrack/internal/common"
	"github.com/dkolesn/jobtrack/internal/models"
)

// LocalPDF is a resume file read from disk, ready for upload.
type LocalPDF struct {
	Filename string
	Content  []byte
}

// ResumeInput holds the create form's resume choice: either a new local PDF
// or an existing hosted file picked from the catalog. The two are mutually
// exclusive; setting one clears the other, for any interleaving of the two
// actions.
type ResumeInput struct {
	file      *LocalPDF
	pickedURL string
}

// AttachFile validates that content is a PDF and attaches it, dropping any
// previously picked catalog URL.
func (r *ResumeInput) AttachFile(filename string, content []byte) error {
	if http.DetectContentType(content) != "application/pdf" {
		return common.ErrNotPDF
	}
	r.file = &LocalPDF{Filename: filename, Content: content}
	r.pickedURL = ""
	return nil
}

// Pick selects an existing hosted resume, dropping any attached local file.
func (r *ResumeInput) Pick(url string) {
	r.pickedURL = url
	r.file = nil
}

func (r *ResumeInput) File() *LocalPDF   { return r.file }
func (r *ResumeInput) PickedURL() string { return r.pickedURL }

// Empty reports whether neither input was provided. An empty input blocks
// create submission before any network call.
func (r *ResumeInput) Empty() bool {
	return r.file == nil && r.pickedURL == ""
}

// ResumeService exposes the hosting service's catalog of previously
// uploaded resumes, proxied through the backend.
type ResumeService interface {
	Catalog(ctx context.Context) ([]models.UploadedResume, error)
}

type resumeService struct {
	client *api.Client
}

func NewResumeService(client *api.Client) ResumeService {
	return &resumeService{client: client}
}

// Catalog fetches all previously uploaded resumes in one request.
func (s *resumeService) Catalog(ctx context.Context) ([]models.UploadedResume, error) {
	var entries []models.UploadedResume
	if err := s.client.Get(ctx, "/cloudinary/resumes", &entries); err != nil {
		return nil, fmt.Errorf("fetching resume catalog: %w", err)
	}
	return entries, nil
}

// ResumeGroup is one bucket of the grouped catalog.
type ResumeGroup struct {
	Key     string
	Entries []models.UploadedResume
}

// GroupResumes buckets entries by their group key, alphabetically, with the
// literal "Other" fallback bucket sorted last.
func GroupResumes(entries []models.UploadedResume) []ResumeGroup {
	byKey := make(map[string][]models.UploadedResume)
	for _, e := range entries {
		key := e.GroupKey()
		byKey[key] = append(byKey[key], e)
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == "Other" {
			return false
		}
		if keys[j] == "Other" {
			return true
		}
		return keys[i] < keys[j]
	})

	groups := make([]ResumeGroup, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, ResumeGroup{Key: k, Entries: byKey[k]})
	}
	return groups
}

// FilterResumes returns the entries whose filename, company name, job title
// or group key contains query, case-insensitively. An empty query returns
// everything.
func FilterResumes(entries []models.UploadedResume, query string) []models.UploadedResume {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return entries
	}

	matched := make([]models.UploadedResume, 0, len(entries))
	for _, e := range entries {
		haystacks := []string{e.Filename, e.CompanyName, e.JobTitle, e.GroupKey()}
		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), needle) {
				matched = append(matched, e)
				break
			}
		}
	}
	return matched
}
