package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/abylaikhan/uniadvisor/internal/client/models"
)

// Apply runs the application wizard: pick a university, pick one of its
// majors, optionally add notes, and create a draft application. Majors are
// fetched only after a university is chosen, and the draft is created only
// when both choices are made.
func (a *App) Apply(ctx context.Context) error {
	userID, err := a.userID(ctx)
	if err != nil {
		a.notify.Error(detailOr(err, "Failed to load account"))
		return err
	}

	universities, err := a.api.ListUniversities(ctx)
	if err != nil {
		a.notify.Error(detailOr(err, "Failed to load universities"))
		return err
	}
	if len(universities) == 0 {
		a.notify.Warning("No universities available")
		return nil
	}

	uni, ok, err := a.pickUniversity(universities)
	if err != nil || !ok {
		return err
	}

	majors, err := a.api.ListMajors(ctx, uni.ID)
	if err != nil {
		a.notify.Error(detailOr(err, "Failed to load majors"))
		return err
	}
	if len(majors) == 0 {
		a.notify.Warning("This university has no majors listed")
		return nil
	}

	major, ok, err := a.pickMajor(majors)
	if err != nil || !ok {
		return err
	}

	notes, err := getSimpleText(a.reader, "Notes (optional)", a.out)
	if err != nil {
		return err
	}

	appID, err := a.api.CreateApplication(ctx, userID, uni.ID, major.ID, notes)
	if err != nil {
		a.notify.Error(detailOr(err, "Failed to create application"))
		return err
	}

	a.notify.Success("Application created")
	return a.OpenApplication(ctx, appID)
}

// pickUniversity loops over search terms until the user selects a
// university by its listed number or cancels with an empty selection.
func (a *App) pickUniversity(all []models.University) (models.University, bool, error) {
	shown := all
	for {
		fmt.Fprintf(a.out, "\n%d universities:\n", len(shown))
		for i, u := range shown {
			printUniversityCard(a.out, i+1, u)
		}

		input, err := getSimpleText(a.reader, "Pick a number, type a search term, or press Enter to cancel", a.out)
		if err != nil {
			return models.University{}, false, err
		}
		if input == "" {
			return models.University{}, false, nil
		}

		if n, err := strconv.Atoi(input); err == nil {
			if n < 1 || n > len(shown) {
				a.notify.Error("No university with that number")
				continue
			}
			return shown[n-1], true, nil
		}

		filtered := models.FilterUniversities(all, input)
		if len(filtered) == 0 {
			a.notify.Warning("No universities match '" + input + "'")
			continue
		}
		shown = filtered
	}
}

func (a *App) pickMajor(majors []models.Major) (models.Major, bool, error) {
	fmt.Fprintln(a.out, "\nMajors:")
	for i, m := range majors {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, m.Name)
	}

	for {
		input, err := getSimpleText(a.reader, "Pick a major number, or press Enter to cancel", a.out)
		if err != nil {
			return models.Major{}, false, err
		}
		if input == "" {
			return models.Major{}, false, nil
		}

		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(majors) {
			a.notify.Error("No major with that number")
			continue
		}
		return majors[n-1], true, nil
	}
}
