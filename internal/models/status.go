package models

import (
	"fmt"
	"strings"
)

// Status is the pipeline stage of a job application.
type Status string

const (
	StatusApplied          Status = "Applied"
	StatusOnlineAssignment Status = "Online Assignment"
	StatusInterviewing     Status = "Interviewing"
	StatusOffer            Status = "Offer"
	StatusRejected         Status = "Rejected"
)

// Statuses returns the full enumeration in pipeline order. The same set is
// valid in every form and in the inline status changer.
func Statuses() []Status {
	return []Status{
		StatusApplied,
		StatusOnlineAssignment,
		StatusInterviewing,
		StatusOffer,
		StatusRejected,
	}
}

// ParseStatus matches s against the enumeration, ignoring case and
// surrounding whitespace.
func ParseStatus(s string) (Status, error) {
	needle := strings.TrimSpace(s)
	for _, st := range Statuses() {
		if strings.EqualFold(needle, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Valid reports whether s is one of the enumerated values (exact match,
// case-sensitive - the wire format is canonical).
func (s Status) Valid() bool {
	for _, st := range Statuses() {
		if s == st {
			return true
		}
	}
	return false
}
