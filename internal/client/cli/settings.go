package cli

import (
	"context"
	"fmt"
)

// Settings shows account details and offers local-only password checks.
// The platform exposes no change-password endpoint yet, so the flow stops
// after validation.
func (a *App) Settings(ctx context.Context) error {
	acc, err := a.api.Me(ctx)
	if err != nil {
		a.notify.Error(detailOr(err, "Failed to load account"))
		return err
	}

	fmt.Fprintln(a.out, "--- Account ---")
	fmt.Fprintf(a.out, "Email:   %s\n", orNA(acc.User.Email))
	fmt.Fprintf(a.out, "Phone:   %s\n", orNA(acc.User.Phone))
	plan := "Free"
	if acc.User.IsPremium {
		plan = "Premium"
	}
	fmt.Fprintf(a.out, "Plan:    %s\n", plan)

	change, err := getConfirmation(a.reader, "Change password?", a.out)
	if err != nil {
		return err
	}
	if !change {
		return nil
	}
	return a.changePassword()
}

func (a *App) changePassword() error {
	current, err := getPassword(a.out, "Current password")
	if err != nil {
		return err
	}
	if current == "" {
		a.notify.Error("Please enter your current password")
		return nil
	}

	next, err := getPassword(a.out, "New password")
	if err != nil {
		return err
	}
	if len(next) < 8 {
		a.notify.Error("Password must be at least 8 characters")
		return nil
	}

	confirm, err := getPassword(a.out, "Confirm new password")
	if err != nil {
		return err
	}
	if next != confirm {
		a.notify.Error("Passwords do not match")
		return nil
	}

	a.notify.Info("Password change is not available yet")
	return nil
}
