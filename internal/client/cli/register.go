package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/abylaikhan/uniadvisor/internal/client/models"
)

// registrationData accumulates the wizard's answers across steps.
type registrationData struct {
	FullName string
	Email    string
	Password string
	Profile  models.Profile
}

// Validation errors of the first wizard step. Matched in tests; shown
// verbatim to the user.
var (
	errFieldsRequired   = errors.New("Please fill in all fields")
	errPasswordTooShort = errors.New("Password must be at least 8 characters")
	errPasswordMismatch = errors.New("Passwords do not match")
	errTermsNotAccepted = errors.New("Please accept the terms and conditions")
)

// validateStep1 gates the transition out of the account step.
func validateStep1(fullName, email, password, confirm string, terms bool) error {
	if fullName == "" || email == "" || password == "" || confirm == "" {
		return errFieldsRequired
	}
	if len(password) < 8 {
		return errPasswordTooShort
	}
	if password != confirm {
		return errPasswordMismatch
	}
	if !terms {
		return errTermsNotAccepted
	}
	return nil
}

// Register walks the three-step registration wizard. "back" on steps 2 and 3
// returns to the previous step with earlier answers kept. The terminal step
// runs the fixed two-call sequence: create the account, then create the
// profile; a profile failure is non-fatal since the account already exists.
func (a *App) Register(ctx context.Context) error {
	var data registrationData

	step := 1
	for step <= 3 {
		var err error
		switch step {
		case 1:
			err = a.registerStep1(&data)
		case 2:
			err = a.registerStep2(&data)
		case 3:
			err = a.registerStep3(&data)
		}
		if err != nil {
			if errors.Is(err, errStepBack) {
				step--
				continue
			}
			return err
		}
		step++
	}

	return a.submitRegistration(ctx, data)
}

// errStepBack signals a "back" navigation inside the wizard.
var errStepBack = errors.New("back")

func (a *App) registerStep1(data *registrationData) error {
	for {
		fullName, err := getSimpleText(a.reader, "Step 1/3: Full name", a.out)
		if err != nil {
			return err
		}
		email, err := getSimpleText(a.reader, "Email", a.out)
		if err != nil {
			return err
		}
		password, err := getPassword(a.out, "Password")
		if err != nil {
			return err
		}
		confirm, err := getPassword(a.out, "Confirm password")
		if err != nil {
			return err
		}
		terms, err := getConfirmation(a.reader, "Do you accept the terms and conditions?", a.out)
		if err != nil {
			return err
		}

		if err := validateStep1(fullName, email, password, confirm, terms); err != nil {
			a.notify.Error(err.Error())
			continue
		}

		data.FullName = fullName
		data.Email = email
		data.Password = password
		data.Profile.FullName = fullName
		return nil
	}
}

func (a *App) registerStep2(data *registrationData) error {
	nationality, err := a.wizardText("Step 2/3: Nationality (or 'back')")
	if err != nil {
		return err
	}
	data.Profile.Nationality = nationality

	gpaText, err := a.wizardText("GPA (or 'back')")
	if err != nil {
		return err
	}
	if gpa, err := strconv.ParseFloat(gpaText, 64); err == nil {
		data.Profile.GPA = gpa
	}

	budgetText, err := a.wizardText("Yearly budget in USD (or 'back')")
	if err != nil {
		return err
	}
	if budget, err := strconv.Atoi(budgetText); err == nil {
		data.Profile.Budget = budget
	}

	careerGoal, err := a.wizardText("Career goal (or 'back')")
	if err != nil {
		return err
	}
	data.Profile.CareerGoal = careerGoal
	return nil
}

func (a *App) registerStep3(data *registrationData) error {
	country, err := a.wizardText("Step 3/3: Preferred country (or 'back')")
	if err != nil {
		return err
	}
	data.Profile.PreferredCountry = country

	major, err := a.wizardText("Preferred major (or 'back')")
	if err != nil {
		return err
	}
	data.Profile.PreferredMajor = major

	style, err := a.wizardText("Learning style (or 'back')")
	if err != nil {
		return err
	}
	data.Profile.LearningStyle = style
	return nil
}

// wizardText reads one wizard answer, translating "back" into errStepBack.
func (a *App) wizardText(prompt string) (string, error) {
	text, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if strings.EqualFold(text, "back") {
		return "", errStepBack
	}
	return text, nil
}

func (a *App) submitRegistration(ctx context.Context, data registrationData) error {
	if _, err := a.api.Register(ctx, data.Email, data.Password, data.FullName); err != nil {
		a.notify.Error(detailOr(err, "Registration failed"))
		return err
	}

	// The account exists from here on; profile creation failing must not
	// block entry to the authenticated area.
	if err := a.api.SaveProfile(ctx, data.Profile); err != nil {
		a.log.Warn(ctx, "profile creation after registration failed", "error", err)
		a.notify.Success("Registration successful! Redirecting...")
	} else {
		a.notify.Success("Registration successful! Redirecting to dashboard...")
	}

	a.afterLogin(ctx, data.FullName)
	return nil
}
