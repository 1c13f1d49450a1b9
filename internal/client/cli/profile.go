package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/abylaikhan/uniadvisor/internal/client/models"
)

// Profile shows the stored profile and offers to edit it. Editing prompts
// for every field with the current value as the default; saving sends the
// full profile object, cancelling refetches and discards the edits.
func (a *App) Profile(ctx context.Context) error {
	acc, err := a.api.Me(ctx)
	if err != nil {
		a.notify.Error(detailOr(err, "Failed to load profile"))
		return err
	}
	a.printProfile(acc.Profile)

	edit, err := getConfirmation(a.reader, "Edit profile?", a.out)
	if err != nil {
		return err
	}
	if !edit {
		return nil
	}

	updated := acc.Profile
	if err := a.editProfile(&updated); err != nil {
		return err
	}

	save, err := getConfirmation(a.reader, "Save changes?", a.out)
	if err != nil {
		return err
	}
	if !save {
		a.notify.Info("Changes discarded")
		return nil
	}

	if err := a.api.SaveProfile(ctx, updated); err != nil {
		a.notify.Error(detailOr(err, "Failed to save profile"))
		return err
	}
	a.notify.Success("Profile saved")
	if updated.FullName != "" {
		a.userName = updated.FullName
	}
	return nil
}

func (a *App) printProfile(p models.Profile) {
	fmt.Fprintln(a.out, "--- Profile ---")
	fmt.Fprintf(a.out, "Full name:         %s\n", orNA(p.FullName))
	fmt.Fprintf(a.out, "Nationality:       %s\n", orNA(p.Nationality))
	fmt.Fprintf(a.out, "Date of birth:     %s\n", orNA(p.DateOfBirth))
	fmt.Fprintf(a.out, "Bio:               %s\n", orNA(p.Bio))
	fmt.Fprintf(a.out, "GPA:               %s\n", orNAFloat(p.GPA))
	fmt.Fprintf(a.out, "Budget:            %s\n", formatMoney(float64(p.Budget)))
	fmt.Fprintf(a.out, "Preferred country: %s\n", orNA(p.PreferredCountry))
	fmt.Fprintf(a.out, "Preferred major:   %s\n", orNA(p.PreferredMajor))
	fmt.Fprintf(a.out, "Learning style:    %s\n", orNA(p.LearningStyle))
	fmt.Fprintf(a.out, "Career goal:       %s\n", orNA(p.CareerGoal))
}

// editProfile prompts for each field; an empty answer keeps the current
// value, shown in brackets.
func (a *App) editProfile(p *models.Profile) error {
	text := func(label string, cur *string) error {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", label, *cur), a.out)
		if err != nil {
			return err
		}
		if v != "" {
			*cur = v
		}
		return nil
	}

	if err := text("Full name", &p.FullName); err != nil {
		return err
	}
	if err := text("Nationality", &p.Nationality); err != nil {
		return err
	}
	if err := text("Date of birth (YYYY-MM-DD)", &p.DateOfBirth); err != nil {
		return err
	}
	if err := text("Bio", &p.Bio); err != nil {
		return err
	}

	gpaText, err := getSimpleText(a.reader, fmt.Sprintf("GPA [%s]", orNAFloat(p.GPA)), a.out)
	if err != nil {
		return err
	}
	if gpaText != "" {
		if gpa, err := strconv.ParseFloat(gpaText, 64); err == nil {
			p.GPA = gpa
		} else {
			a.notify.Warning("Not a number, keeping previous GPA")
		}
	}

	budgetText, err := getSimpleText(a.reader, fmt.Sprintf("Budget [%d]", p.Budget), a.out)
	if err != nil {
		return err
	}
	if budgetText != "" {
		if budget, err := strconv.Atoi(budgetText); err == nil {
			p.Budget = budget
		} else {
			a.notify.Warning("Not a number, keeping previous budget")
		}
	}

	if err := text("Preferred country", &p.PreferredCountry); err != nil {
		return err
	}
	if err := text("Preferred major", &p.PreferredMajor); err != nil {
		return err
	}
	if err := text("Learning style", &p.LearningStyle); err != nil {
		return err
	}
	return text("Career goal", &p.CareerGoal)
}
