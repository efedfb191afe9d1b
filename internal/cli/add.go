package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dkolesn/jobtrack/internal/models"
	"github.com/dkolesn/jobtrack/internal/services"
)

// add is the create form. The draft and resume choice survive a failed
// submission: the form reruns with the previous answers as defaults so
// nothing has to be re-entered.
func (a *App) add(ctx context.Context) {
	fmt.Fprintln(a.out, "New job application (press Enter to accept the value in brackets)")

	draft := models.NewDraft()
	resume := &services.ResumeInput{}

	for {
		if err := a.promptDraft(&draft); err != nil {
			return
		}
		if err := a.promptResume(ctx, resume); err != nil {
			return
		}

		if draft.Empty() && resume.Empty() {
			fmt.Fprintln(a.out, "Nothing entered, discarding.")
			return
		}

		created, err := a.jobs.Create(ctx, draft, resume)
		if err == nil {
			fmt.Fprintf(a.out, "Created job %d (%s - %s)\n", created.ID, created.CompanyName, created.JobTitle)
			a.cache = append(a.cache, created)
			return
		}

		fmt.Fprintf(a.out, "Error: %v\nYour input was kept.\n", err)
		if !Confirm(a.reader, "Edit the form and try again?", a.out) {
			return
		}
	}
}

// promptDraft walks through every editable field, defaulting to the current
// draft values.
func (a *App) promptDraft(draft *models.Draft) error {
	var err error
	if draft.CompanyName, err = GetTextWithDefault(a.reader, "Company name *", draft.CompanyName, a.out); err != nil {
		return err
	}
	if draft.JobTitle, err = GetTextWithDefault(a.reader, "Job title *", draft.JobTitle, a.out); err != nil {
		return err
	}
	if draft.JobURL, err = GetTextWithDefault(a.reader, "Job URL", draft.JobURL, a.out); err != nil {
		return err
	}
	if draft.Location, err = GetTextWithDefault(a.reader, "Location", draft.Location, a.out); err != nil {
		return err
	}
	if err = a.promptStatus(draft); err != nil {
		return err
	}
	if draft.AppliedDate, err = GetTextWithDefault(a.reader, "Applied date (YYYY-MM-DD)", draft.AppliedDate, a.out); err != nil {
		return err
	}
	if draft.JobDescription, err = GetMultiline(a.reader, "Job description", draft.JobDescription, a.out); err != nil {
		return err
	}
	if draft.Notes, err = GetMultiline(a.reader, "Notes", draft.Notes, a.out); err != nil {
		return err
	}
	return nil
}

func (a *App) promptStatus(draft *models.Draft) error {
	for {
		value, err := GetTextWithDefault(a.reader, "Status", string(draft.Status), a.out)
		if err != nil {
			return err
		}
		status, perr := models.ParseStatus(value)
		if perr != nil {
			fmt.Fprintf(a.out, "%v (valid: %v)\n", perr, models.Statuses())
			continue
		}
		draft.Status = status
		return nil
	}
}

// promptResume fills the create form's resume choice: a freshly attached
// local PDF or an entry picked from the uploaded catalog. Picking one path
// clears the other.
func (a *App) promptResume(ctx context.Context, resume *services.ResumeInput) error {
	if !resume.Empty() {
		current := resume.PickedURL()
		if f := resume.File(); f != nil {
			current = f.Filename
		}
		if Confirm(a.reader, fmt.Sprintf("Keep the current resume (%s)?", current), a.out) {
			return nil
		}
	}

	for {
		choice, err := GetSimpleText(a.reader, "Resume: (f) attach a PDF file, (p) pick an uploaded one, (n) none", a.out)
		if err != nil {
			return err
		}

		switch strings.ToLower(choice) {
		case "f":
			path, err := GetSimpleText(a.reader, "Path to PDF file", a.out)
			if err != nil {
				return err
			}
			content, rerr := a.readFile(path)
			if rerr != nil {
				fmt.Fprintf(a.out, "Cannot read %s: %v\n", path, rerr)
				continue
			}
			if aerr := resume.AttachFile(filepath.Base(path), content); aerr != nil {
				fmt.Fprintln(a.out, aerr)
				continue
			}
			return nil
		case "p":
			url, err := a.pickResume(ctx)
			if err != nil {
				return err
			}
			if url == "" {
				continue
			}
			resume.Pick(url)
			return nil
		case "n", "":
			return nil
		default:
			fmt.Fprintf(a.out, "Unknown choice %q\n", choice)
		}
	}
}
