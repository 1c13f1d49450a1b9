package api

import (
	"context"
	"fmt"

	"github.com/abylaikhan/uniadvisor/internal/client/models"
)

// TokenPair is the credential pair issued by the auth service.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// storePair persists a freshly issued token pair.
func (c *Client) storePair(ctx context.Context, p TokenPair) error {
	if err := c.tokens.SetTokens(ctx, p.AccessToken, p.RefreshToken); err != nil {
		return fmt.Errorf("storing tokens: %w", err)
	}
	return nil
}

// Login authenticates with email and password and stores the issued tokens.
func (c *Client) Login(ctx context.Context, email, password string) (TokenPair, error) {
	body := map[string]string{"email": email, "password": password}

	var pair TokenPair
	if err := c.postJSON(ctx, "/auth/login", body, &pair); err != nil {
		return TokenPair{}, err
	}
	return pair, c.storePair(ctx, pair)
}

// Register creates a new email-based account and stores the issued tokens.
func (c *Client) Register(ctx context.Context, email, password, fullName string) (TokenPair, error) {
	body := map[string]string{
		"email":         email,
		"password":      password,
		"full_name":     fullName,
		"auth_provider": "email",
	}

	var pair TokenPair
	if err := c.postJSON(ctx, "/auth/register", body, &pair); err != nil {
		return TokenPair{}, err
	}
	return pair, c.storePair(ctx, pair)
}

// SendOTP requests a one-time code for phone login.
func (c *Client) SendOTP(ctx context.Context, phone string) error {
	return c.postJSON(ctx, "/auth/send-otp", map[string]string{"phone": phone}, nil)
}

// VerifyOTP exchanges a one-time code for a token pair and stores it.
func (c *Client) VerifyOTP(ctx context.Context, phone, code string) (TokenPair, error) {
	body := map[string]string{"phone": phone, "otp_code": code}

	var pair TokenPair
	if err := c.postJSON(ctx, "/auth/verify-otp", body, &pair); err != nil {
		return TokenPair{}, err
	}
	return pair, c.storePair(ctx, pair)
}

// Me fetches the current user and profile.
func (c *Client) Me(ctx context.Context) (models.Account, error) {
	var acc models.Account
	if err := c.getJSON(ctx, "/auth/me", &acc); err != nil {
		return models.Account{}, err
	}
	return acc, nil
}

// SaveProfile upserts the whole profile. The endpoint has create semantics
// on first call and replace semantics afterwards; partial updates are not
// supported, so the full object is always sent.
func (c *Client) SaveProfile(ctx context.Context, p models.Profile) error {
	return c.postJSON(ctx, "/auth/profile/create", p, nil)
}
