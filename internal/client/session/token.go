package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Status describes the stored session from the client's point of view.
type Status int

const (
	// StatusLoggedOut means no access token is stored.
	StatusLoggedOut Status = iota
	// StatusActive means a token is stored and not known to be expired.
	StatusActive
	// StatusExpired means the stored token's exp claim is in the past.
	// The next authenticated call will come back 401 and wipe the session.
	StatusExpired
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusExpired:
		return "expired"
	default:
		return "logged out"
	}
}

// TokenStatus inspects an access token without verifying its signature;
// the server is the authority; this only drives the prompt display. Tokens
// that do not parse as JWTs or carry no exp claim are treated as active and
// left for the server to judge.
func TokenStatus(token string, now time.Time) Status {
	if token == "" {
		return StatusLoggedOut
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return StatusActive
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return StatusActive
	}
	if exp.Before(now) {
		return StatusExpired
	}
	return StatusActive
}
