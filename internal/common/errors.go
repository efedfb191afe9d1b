// Package common defines shared sentinel errors used across the jobtrack
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Backend said the record does not exist (404 on a single-record fetch).
	ErrNotFound = errors.New("not found")

	// Client-side validation failed before any network call was issued.
	ErrValidation = errors.New("validation error")

	// A create submission arrived with neither a local PDF nor a picked
	// catalog URL attached.
	ErrNoResume = errors.New("no resume attached")

	// The attached file is not a PDF.
	ErrNotPDF = errors.New("only PDF files allowed")
)
