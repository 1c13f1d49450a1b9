package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abylaikhan/uniadvisor/internal/client/api"
	"github.com/abylaikhan/uniadvisor/internal/client/models"
)

func TestValidateStep1(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		email    string
		password string
		confirm  string
		terms    bool
		want     error
	}{
		{"valid", "Alice", "a@b.c", "secret123", "secret123", true, nil},
		{"missing name", "", "a@b.c", "secret123", "secret123", true, errFieldsRequired},
		{"missing email", "Alice", "", "secret123", "secret123", true, errFieldsRequired},
		{"short password", "Alice", "a@b.c", "short", "short", true, errPasswordTooShort},
		{"mismatch", "Alice", "a@b.c", "secret123", "secret124", true, errPasswordMismatch},
		{"terms declined", "Alice", "a@b.c", "secret123", "secret123", false, errTermsNotAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validateStep1(tt.fullName, tt.email, tt.password, tt.confirm, tt.terms)
			if !errors.Is(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegister_HappyPath(t *testing.T) {
	var regEmail, regName string
	var savedProfile models.Profile
	f := &fakeAPI{
		registerFn: func(email, _, fullName string) (api.TokenPair, error) {
			regEmail, regName = email, fullName
			return api.TokenPair{AccessToken: "at"}, nil
		},
		saveProfFn: func(p models.Profile) error {
			savedProfile = p
			return nil
		},
	}
	a, _ := newTestApp(f)

	// Step 1 name/email, step 2 nationality/gpa/budget/goal, step 3
	// country/major/style.
	defer stubTexts(t,
		"Alice", "alice@example.org",
		"Kazakh", "3.6", "15000", "Software engineer",
		"Germany", "Computer Science", "Visual",
	)()
	defer stubPasswords(t, "secret123", "secret123")()
	defer stubConfirm(t, true)()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if regEmail != "alice@example.org" || regName != "Alice" {
		t.Errorf("registered %q/%q", regEmail, regName)
	}
	if savedProfile.Nationality != "Kazakh" || savedProfile.GPA != 3.6 ||
		savedProfile.Budget != 15000 || savedProfile.PreferredCountry != "Germany" {
		t.Errorf("profile = %+v", savedProfile)
	}
}

func TestRegister_BackReturnsToPreviousStep(t *testing.T) {
	f := &fakeAPI{}
	a, _ := newTestApp(f)

	// Step 2 answers, then "back" on step 3 returns to step 2, whose
	// answers are re-asked before step 3 runs again.
	answers := []string{
		"Alice", "alice@example.org",
		"Kazakh", "3.6", "15000", "Engineer",
		"back",
		"German", "3.8", "20000", "Architect",
		"Germany", "CS", "Visual",
	}
	defer stubTexts(t, answers...)()
	defer stubPasswords(t, "secret123", "secret123")()
	defer stubConfirm(t, true)()

	var saved models.Profile
	f.saveProfFn = func(p models.Profile) error { saved = p; return nil }

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if saved.Nationality != "German" || saved.GPA != 3.8 {
		t.Errorf("step 2 answers not replaced after back: %+v", saved)
	}
}

func TestRegister_ProfileFailureIsNonFatal(t *testing.T) {
	f := &fakeAPI{
		saveProfFn: func(models.Profile) error {
			return &api.Error{Status: 500, Detail: "profile service down"}
		},
	}
	a, _ := newTestApp(f)

	defer stubTexts(t,
		"Alice", "alice@example.org",
		"Kazakh", "3.6", "15000", "Engineer",
		"Germany", "CS", "Visual",
	)()
	defer stubPasswords(t, "secret123", "secret123")()
	defer stubConfirm(t, true)()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register should succeed when only the profile save fails, got %v", err)
	}
}

func TestRegister_ValidationReprompts(t *testing.T) {
	registered := false
	f := &fakeAPI{
		registerFn: func(string, string, string) (api.TokenPair, error) {
			registered = true
			return api.TokenPair{}, nil
		},
	}
	a, out := newTestApp(f)

	// First attempt has mismatched passwords, second is clean.
	texts := []string{
		"Alice", "alice@example.org",
		"Alice", "alice@example.org",
		"Kazakh", "3.6", "15000", "Engineer",
		"Germany", "CS", "Visual",
	}
	defer stubTexts(t, texts...)()
	defer stubPasswords(t, "secret123", "secret999", "secret123", "secret123")()
	defer stubConfirm(t, true)()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if !registered {
		t.Fatal("Register never reached the API")
	}
	if got := out.String(); !strings.Contains(got, errPasswordMismatch.Error()) {
		t.Errorf("mismatch notice missing:\n%s", got)
	}
}
