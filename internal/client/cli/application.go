package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abylaikhan/uniadvisor/internal/client/models"
)

// OpenApplication loads an application, makes it the current one for the
// upload and submit commands, and renders its details.
func (a *App) OpenApplication(ctx context.Context, id string) error {
	app, err := a.api.GetApplication(ctx, id)
	if err != nil {
		a.notify.Error(detailOr(err, "Failed to load application"))
		return err
	}

	a.currentApplicationID = id
	a.uploadedDocuments = app.Documents
	a.printApplication(app)
	return nil
}

func (a *App) printApplication(app models.Application) {
	fmt.Fprintln(a.out, "\n--- Application ---")
	fmt.Fprintf(a.out, "University: %s\n", orNA(app.UniversityName))
	fmt.Fprintf(a.out, "Major:      %s\n", orNA(app.MajorName))
	location := app.Country
	if app.City != "" {
		location = app.City + ", " + app.Country
	}
	fmt.Fprintf(a.out, "Location:   %s\n", orNA(location))
	fmt.Fprintf(a.out, "Status:     %s\n", orNA(app.Status))
	if app.Notes != "" {
		fmt.Fprintf(a.out, "Notes:      %s\n", app.Notes)
	}

	a.printProgress(app.Status)

	if len(app.Documents) == 0 {
		fmt.Fprintln(a.out, "\nNo documents uploaded yet.")
		return
	}
	fmt.Fprintln(a.out, "\nDocuments:")
	for _, d := range app.Documents {
		verified := " "
		if d.IsVerified {
			verified = "v"
		}
		fmt.Fprintf(a.out, "  [%s] %-20s %s\n", verified, d.DocumentType, d.Filename)
	}
}

// printProgress renders the four-stage indicator. Completed stages show a
// check, the current stage is bracketed, future stages show their number.
func (a *App) printProgress(status string) {
	current := models.ProgressStage(status)
	labels := []string{"Draft", "Submitted", "Review", "Decision"}

	marks := make([]string, models.ProgressStageCount)
	for i := 0; i < models.ProgressStageCount; i++ {
		stage := i + 1
		switch {
		case stage < current:
			marks[i] = fmt.Sprintf(" ok %s", labels[i])
		case stage == current:
			marks[i] = fmt.Sprintf("[%d] %s", stage, labels[i])
		default:
			marks[i] = fmt.Sprintf(" %d  %s", stage, labels[i])
		}
	}
	fmt.Fprintf(a.out, "\nProgress: %s\n", strings.Join(marks, "  ->  "))
}

// UploadDocument uploads a local file to the current application. Without
// an open application this is a local error; no request is made.
func (a *App) UploadDocument(ctx context.Context, path, documentType string) error {
	if a.currentApplicationID == "" {
		a.notify.Error("Open an application first (use 'open <id>' or 'apply')")
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		a.notify.Error("Cannot read file: " + err.Error())
		return err
	}
	defer f.Close()

	doc, err := a.api.UploadDocument(ctx, a.currentApplicationID, filepath.Base(path), f, documentType)
	if err != nil {
		a.notify.Error(detailOr(err, "Upload failed"))
		return err
	}

	a.uploadedDocuments = append(a.uploadedDocuments, doc)
	a.notify.Success(fmt.Sprintf("Uploaded %s (%s)", doc.Filename, doc.DocumentType))
	return nil
}

// SubmitApplication submits the current application after a confirmation.
// Submitting with no uploaded documents is refused locally.
func (a *App) SubmitApplication(ctx context.Context) error {
	if a.currentApplicationID == "" {
		a.notify.Error("Open an application first (use 'open <id>' or 'apply')")
		return nil
	}
	if len(a.uploadedDocuments) == 0 {
		a.notify.Error("Please upload at least one document before submitting")
		return nil
	}

	ok, err := getConfirmation(a.reader, "Submit this application? It cannot be edited afterwards", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.api.SubmitApplication(ctx, a.currentApplicationID); err != nil {
		a.notify.Error(detailOr(err, "Submission failed"))
		return err
	}
	a.notify.Success("Application submitted!")

	// Refetch so the status and progress indicator reflect the submission.
	return a.OpenApplication(ctx, a.currentApplicationID)
}

// ListApplications lists the user's applications, optionally filtered by
// status, with per-status counts.
func (a *App) ListApplications(ctx context.Context, status string) error {
	userID, err := a.userID(ctx)
	if err != nil {
		a.notify.Error(detailOr(err, "Failed to load account"))
		return err
	}

	page, err := a.api.ListUserApplications(ctx, userID, status)
	if err != nil {
		a.notify.Error(detailOr(err, "Failed to load applications"))
		return err
	}

	if len(page.Applications) == 0 {
		if status != "" {
			fmt.Fprintf(a.out, "No applications with status '%s'.\n", status)
		} else {
			fmt.Fprintln(a.out, "No applications yet. Use 'apply' to start one.")
		}
		return nil
	}

	fmt.Fprintf(a.out, "\n%d applications:\n", page.TotalCount)
	for _, app := range page.Applications {
		fmt.Fprintf(a.out, "  %-8s %-30s %-20s %s\n",
			app.ID, orNA(app.UniversityName), orNA(app.MajorName), app.Status)
	}

	if len(page.StatusCounts) > 0 {
		parts := make([]string, 0, len(page.StatusCounts))
		for _, s := range []string{
			models.StatusDraft, models.StatusSubmitted, models.StatusUnderReview,
			models.StatusMissingDocuments, models.StatusConditionalOffer,
			models.StatusFinalOffer, models.StatusRejected,
		} {
			if n, ok := page.StatusCounts[s]; ok && n > 0 {
				parts = append(parts, fmt.Sprintf("%s: %d", s, n))
			}
		}
		if len(parts) > 0 {
			fmt.Fprintln(a.out, "By status:", strings.Join(parts, ", "))
		}
	}
	return nil
}

// Notifications lists the user's notifications and marks the unread ones
// as read after display.
func (a *App) Notifications(ctx context.Context) error {
	userID, err := a.userID(ctx)
	if err != nil {
		a.notify.Error(detailOr(err, "Failed to load account"))
		return err
	}

	page, err := a.api.ListNotifications(ctx, userID, false)
	if err != nil {
		a.notify.Error(detailOr(err, "Failed to load notifications"))
		return err
	}
	if len(page.Notifications) == 0 {
		fmt.Fprintln(a.out, "No notifications.")
		return nil
	}

	fmt.Fprintf(a.out, "\n%d notifications (%d unread):\n", len(page.Notifications), page.UnreadCount)
	for _, n := range page.Notifications {
		mark := " "
		if !n.IsRead {
			mark = "*"
		}
		fmt.Fprintf(a.out, " %s %s - %s\n", mark, n.Title, n.Message)

		if !n.IsRead {
			if err := a.api.MarkNotificationRead(ctx, n.ID, userID); err != nil {
				a.log.Warn(ctx, "marking notification read failed", "id", n.ID, "error", err)
			}
		}
	}
	return nil
}
