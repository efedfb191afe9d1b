package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dkolesn/jobtrack/internal/models"
	"github.com/dkolesn/jobtrack/internal/services"
)

// pickResume is the catalog picker: one fetch of every uploaded resume,
// grouped by company, narrowed by free-text search, selected by number.
// Returns an empty URL when the user cancels or the catalog is unavailable.
func (a *App) pickResume(ctx context.Context) (string, error) {
	entries, err := a.resumes.Catalog(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error loading uploaded resumes: %v\n", err)
		return "", nil
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No uploaded resumes yet.")
		return "", nil
	}

	filtered := entries
	for {
		ordered := a.printCatalog(filtered)

		input, err := GetSimpleText(a.reader, "Pick a number, type text to search, or press Enter to cancel", a.out)
		if err != nil {
			return "", err
		}
		if input == "" {
			return "", nil
		}

		if n, nerr := strconv.Atoi(input); nerr == nil {
			if n >= 1 && n <= len(ordered) {
				return ordered[n-1].SecureURL, nil
			}
			fmt.Fprintln(a.out, "No such entry.")
			continue
		}

		filtered = services.FilterResumes(entries, input)
		if len(filtered) == 0 {
			fmt.Fprintf(a.out, "No matches for %q, showing everything.\n", input)
			filtered = entries
		}
	}
}

// printCatalog renders entries grouped by company and returns them in
// display order, so the shown numbers map back to entries.
func (a *App) printCatalog(entries []models.UploadedResume) []models.UploadedResume {
	ordered := make([]models.UploadedResume, 0, len(entries))
	for _, g := range services.GroupResumes(entries) {
		fmt.Fprintf(a.out, "%s:\n", g.Key)
		for _, e := range g.Entries {
			ordered = append(ordered, e)
			label := e.Filename
			if e.JobTitle != "" {
				label += " - " + e.JobTitle
			}
			if e.CreatedAt != "" {
				label += " (" + e.CreatedAt + ")"
			}
			fmt.Fprintf(a.out, "  [%d] %s\n", len(ordered), label)
		}
	}
	return ordered
}
