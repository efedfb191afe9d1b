// Package models holds the client-side view of the job tracker's domain
// entities. Field names and JSON tags follow the backend's wire format.
package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used by the backend ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// Job is the persisted application record as returned by the backend.
// ID is assigned by the backend and immutable afterwards.
type Job struct {
	ID             int    `json:"id"`
	CompanyName    string `json:"company_name"`
	JobTitle       string `json:"job_title"`
	JobURL         string `json:"job_url"`
	Status         Status `json:"status"`
	AppliedDate    string `json:"applied_date"`
	Location       string `json:"location"`
	JobDescription string `json:"job_description"`
	Notes          string `json:"notes"`

	// Exactly one of the two references is populated, depending on which
	// creation path produced the record: a backend-relative upload path or
	// an absolute URL to hosted content.
	ResumeFilePath string `json:"resume_file_path,omitempty"`
	ResumeURL      string `json:"resume_url,omitempty"`
}

// ResumeRef returns the effective resume reference, preferring the hosted
// URL. Empty when the record has no resume attached. The reference is not
// re-validated; a stale link is possible.
func (j Job) ResumeRef() string {
	if j.ResumeURL != "" {
		return j.ResumeURL
	}
	return j.ResumeFilePath
}

// Draft is the editable field subset of a Job. It backs both the create and
// edit forms; the edit form keeps one immutable snapshot and one mutable
// copy and compares them with Equal.
type Draft struct {
	CompanyName    string
	JobTitle       string
	JobURL         string
	Status         Status
	AppliedDate    string
	Location       string
	JobDescription string
	Notes          string
}

// NewDraft returns a create-form draft with defaults: status Applied and
// applied date set to today in the local calendar.
func NewDraft() Draft {
	return Draft{
		Status:      StatusApplied,
		AppliedDate: time.Now().Format(DateLayout),
	}
}

// DraftOf seeds a draft from an existing record (the edit form's snapshot).
func DraftOf(j Job) Draft {
	return Draft{
		CompanyName:    j.CompanyName,
		JobTitle:       j.JobTitle,
		JobURL:         j.JobURL,
		Status:         j.Status,
		AppliedDate:    j.AppliedDate,
		Location:       j.Location,
		JobDescription: j.JobDescription,
		Notes:          j.Notes,
	}
}

// Equal reports field-wise equality. Used for the edit form's dirty check.
func (d Draft) Equal(other Draft) bool {
	return d == other
}

// Empty reports whether no field differs from the zero/default draft.
// The create form uses it to skip submission of an entirely blank form.
func (d Draft) Empty() bool {
	return strings.TrimSpace(d.CompanyName) == "" &&
		strings.TrimSpace(d.JobTitle) == "" &&
		strings.TrimSpace(d.JobURL) == "" &&
		strings.TrimSpace(d.Location) == "" &&
		strings.TrimSpace(d.JobDescription) == "" &&
		strings.TrimSpace(d.Notes) == ""
}

// Validate checks submission invariants: company name and job title
// non-empty, status enumerated, applied date a valid calendar date.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.CompanyName) == "" {
		return fmt.Errorf("company name is required")
	}
	if strings.TrimSpace(d.JobTitle) == "" {
		return fmt.Errorf("job title is required")
	}
	if !d.Status.Valid() {
		return fmt.Errorf("unknown status %q", d.Status)
	}
	if _, err := time.Parse(DateLayout, d.AppliedDate); err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err)
	}
	return nil
}
