package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkolesn/jobtrack/internal/common"
	"github.com/dkolesn/jobtrack/internal/models"
)

// show is the read-only details view. A missing or unreachable record gets
// a dedicated error state with a way back to the list.
func (a *App) show(ctx context.Context, id int) {
	job, err := a.jobs.Get(ctx, id)
	if err != nil {
		a.printFetchError(id, err)
		return
	}
	a.printJob(job)
}

func (a *App) printFetchError(id int, err error) {
	if errors.Is(err, common.ErrNotFound) {
		fmt.Fprintf(a.out, "Job %d was not found. It may have been deleted.\n", id)
	} else {
		fmt.Fprintf(a.out, "Error loading job %d: %v\n", id, err)
	}
	fmt.Fprintln(a.out, "Type 'list' to go back to your applications.")
}

func (a *App) printJob(j models.Job) {
	fmt.Fprintf(a.out, "#%d %s - %s\n", j.ID, j.CompanyName, j.JobTitle)
	fmt.Fprintf(a.out, "  Status:   %s\n", j.Status)
	fmt.Fprintf(a.out, "  Applied:  %s\n", j.AppliedDate)
	if j.Location != "" {
		fmt.Fprintf(a.out, "  Location: %s\n", j.Location)
	}
	if j.JobURL != "" {
		fmt.Fprintf(a.out, "  URL:      %s\n", j.JobURL)
	}
	if j.JobDescription != "" {
		fmt.Fprintf(a.out, "  Description:\n    %s\n", j.JobDescription)
	}
	if j.Notes != "" {
		fmt.Fprintf(a.out, "  Notes:\n    %s\n", j.Notes)
	}
	if ref := j.ResumeRef(); ref != "" {
		fmt.Fprintf(a.out, "  Resume:   %s\n", ref)
		fmt.Fprintf(a.out, "  (use 'resume %d [file]' to download it)\n", j.ID)
	}
}

// downloadResume is the details view's download action: the reference is
// fetched as-is, with no freshness check.
func (a *App) downloadResume(ctx context.Context, id int, outPath string) {
	job, err := a.jobs.Get(ctx, id)
	if err != nil {
		a.printFetchError(id, err)
		return
	}

	ref := job.ResumeRef()
	if ref == "" {
		fmt.Fprintf(a.out, "Job %d has no resume attached.\n", id)
		return
	}

	content, err := a.jobs.DownloadResume(ctx, ref)
	if err != nil {
		fmt.Fprintf(a.out, "Error downloading resume: %v\n", err)
		return
	}

	if outPath == "" {
		outPath = fmt.Sprintf("job_%d_resume.pdf", id)
	}
	if err := a.writeFile(outPath, content); err != nil {
		fmt.Fprintf(a.out, "Error saving resume: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Saved resume to %s (%d bytes)\n", outPath, len(content))
}
