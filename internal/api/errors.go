package api

import (
	"fmt"
	"net/http"

	"github.com/dkolesn/jobtrack/internal/common"
)

// StatusError is returned for any non-2xx backend response. Body carries the
// (truncated) response text for diagnostics.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend returned status %d", e.Code)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Code, e.Body)
}

// Is lets a 404 match common.ErrNotFound through errors.Is, so callers can
// branch on missing records without inspecting status codes.
func (e *StatusError) Is(target error) bool {
	return target == common.ErrNotFound && e.Code == http.StatusNotFound
}
