package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dkolesn/jobtrack/internal/models"
	"github.com/dkolesn/jobtrack/internal/services"
)

// list is the list view: one fetch for the full set, summary counters
// derived locally. A failed fetch is reported and leaves the cached set
// untouched.
func (a *App) list(ctx context.Context) {
	jobs, err := a.jobs.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error loading jobs: %v\n", err)
		return
	}
	a.cache = jobs

	if len(jobs) == 0 {
		fmt.Fprintln(a.out, "No applications yet. Type 'add' to create one.")
		return
	}

	tw := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOMPANY\tTITLE\tSTATUS\tAPPLIED\tRESUME")
	for _, j := range jobs {
		resume := "-"
		if j.ResumeRef() != "" {
			resume = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			j.ID, j.CompanyName, j.JobTitle, j.Status, j.AppliedDate, resume)
	}
	tw.Flush()

	s := services.Summarize(jobs)
	fmt.Fprintf(a.out, "Total: %d", s.Total)
	for _, st := range models.Statuses() {
		fmt.Fprintf(a.out, " | %s: %d", st, s.ByStatus[st])
	}
	fmt.Fprintln(a.out)
}

// changeStatus is the list view's inline status changer: the cached row is
// updated only once the backend confirms; on failure the prior value stays.
func (a *App) changeStatus(ctx context.Context, id int, value string) {
	status, err := models.ParseStatus(value)
	if err != nil {
		fmt.Fprintf(a.out, "%v (valid: %v)\n", err, models.Statuses())
		return
	}

	updated, err := a.jobs.UpdateStatus(ctx, id, status)
	if err != nil {
		fmt.Fprintf(a.out, "Error updating status: %v\nStatus left unchanged.\n", err)
		return
	}

	for i := range a.cache {
		if a.cache[i].ID == id {
			a.cache[i].Status = updated.Status
			break
		}
	}
	fmt.Fprintf(a.out, "Job %d is now %q\n", id, updated.Status)
}

// delete removes one record after interactive confirmation. On success the
// row disappears from the cached set; on failure the set is unchanged.
func (a *App) delete(ctx context.Context, id int) {
	prompt := fmt.Sprintf("Are you sure you want to delete job %d? This cannot be undone.", id)
	if !Confirm(a.reader, prompt, a.out) {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}

	fmt.Fprintf(a.out, "Deleting job %d...\n", id)
	if err := a.jobs.Delete(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Error deleting job %d: %v\nThe job was not removed.\n", id, err)
		return
	}

	kept := a.cache[:0]
	for _, j := range a.cache {
		if j.ID != id {
			kept = append(kept, j)
		}
	}
	a.cache = kept
	fmt.Fprintf(a.out, "Deleted job %d.\n", id)
}
