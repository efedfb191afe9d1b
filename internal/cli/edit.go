package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dkolesn/jobtrack/internal/models"
	"github.com/dkolesn/jobtrack/internal/services"
)

// edit is the edit form: it seeds an immutable snapshot and a mutable draft
// from the fetched record and refuses to submit when nothing changed and no
// replacement file was chosen. A successful save shows the updated details.
func (a *App) edit(ctx context.Context, id int) {
	job, err := a.jobs.Get(ctx, id)
	if err != nil {
		a.printFetchError(id, err)
		return
	}

	fmt.Fprintf(a.out, "Editing job %d (press Enter to keep the value in brackets)\n", id)

	snapshot := models.DraftOf(job)
	draft := snapshot

	if err := a.promptDraft(&draft); err != nil {
		return
	}
	file, err := a.promptReplacementFile()
	if err != nil {
		return
	}

	if draft.Equal(snapshot) && file == nil {
		fmt.Fprintln(a.out, "No changes to save.")
		return
	}

	for {
		updated, err := a.jobs.Update(ctx, id, draft, file)
		if err == nil {
			for i := range a.cache {
				if a.cache[i].ID == id {
					a.cache[i] = updated
					break
				}
			}
			fmt.Fprintln(a.out, "Saved.")
			a.printJob(updated)
			return
		}

		fmt.Fprintf(a.out, "Error: %v\nYour changes were kept.\n", err)
		if !Confirm(a.reader, "Try saving again?", a.out) {
			return
		}
	}
}

// promptReplacementFile asks for an optional new resume PDF. The edit form
// offers direct file replacement only; there is no catalog picker here.
func (a *App) promptReplacementFile() (*services.LocalPDF, error) {
	for {
		path, err := GetSimpleText(a.reader, "Path to a replacement PDF (Enter to keep the current resume)", a.out)
		if err != nil {
			return nil, err
		}
		if path == "" {
			return nil, nil
		}

		content, rerr := a.readFile(path)
		if rerr != nil {
			fmt.Fprintf(a.out, "Cannot read %s: %v\n", path, rerr)
			continue
		}

		var in services.ResumeInput
		if aerr := in.AttachFile(filepath.Base(path), content); aerr != nil {
			fmt.Fprintln(a.out, aerr)
			continue
		}
		return in.File(), nil
	}
}
