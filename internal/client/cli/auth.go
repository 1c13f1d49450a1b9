package cli

import (
	"context"
	"regexp"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getConfirmation = GetConfirmation

// Login prompts for email/password credentials and authenticates. On
// success the token pair is already stored by the API client; the user's
// name is cached for the prompt and their id for later calls.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}

	if _, err := a.api.Login(ctx, email, password); err != nil {
		a.notify.Error(detailOr(err, "Invalid email or password"))
		return err
	}

	a.afterLogin(ctx, email)
	return nil
}

var otpPattern = regexp.MustCompile(`^\d{6}$`)

// LoginOTP performs phone login: request a one-time code, then verify it.
// An invalid code clears the entry and reprompts; a second failure gives up.
func (a *App) LoginOTP(ctx context.Context) error {
	phone, err := getSimpleText(a.reader, "Enter phone number", a.out)
	if err != nil {
		return err
	}
	if phone == "" {
		a.notify.Error("Please enter your phone number")
		return nil
	}

	if err := a.api.SendOTP(ctx, phone); err != nil {
		a.notify.Error(detailOr(err, "Failed to send OTP"))
		return err
	}
	a.notify.Success("OTP sent successfully! Check your phone.")

	for attempt := 0; attempt < 2; attempt++ {
		code, err := getSimpleText(a.reader, "Enter the 6-digit code", a.out)
		if err != nil {
			return err
		}
		if !otpPattern.MatchString(code) {
			a.notify.Error("Please enter the complete OTP")
			continue
		}

		if _, err := a.api.VerifyOTP(ctx, phone, code); err != nil {
			a.notify.Error(detailOr(err, "Invalid OTP"))
			continue
		}

		a.afterLogin(ctx, phone)
		return nil
	}
	return nil
}

// afterLogin caches identity details and lands the user on the dashboard,
// the same way the pages redirected after storing tokens.
func (a *App) afterLogin(ctx context.Context, name string) {
	a.userName = name
	a.notify.Success("Login successful! Redirecting...")

	if acc, err := a.api.Me(ctx); err == nil {
		_ = a.store.SetUserID(ctx, acc.User.ID)
		if acc.Profile.FullName != "" {
			a.userName = acc.Profile.FullName
		}
	}
	_ = a.Dashboard(ctx)
}

// Logout clears the stored token pair and forgets the cached identity.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	a.currentApplicationID = ""
	a.uploadedDocuments = nil
	a.notify.Info("Logged out")
	return nil
}
