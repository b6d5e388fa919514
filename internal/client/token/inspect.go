// Package token inspects stored session tokens for display purposes.
//
// The session token is opaque to every authentication flow; this package
// only does a best-effort unverified JWT decode so the whoami view can show
// the subject and expiry when they happen to be present.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Info describes what could be read out of a token.
type Info struct {
	// Decodable reports whether the token parsed as a JWT at all.
	Decodable bool

	// Subject is the sub claim, when present.
	Subject string

	// ExpiresAt is the exp claim; zero when absent.
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry in the past.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}

// Inspect decodes raw without verifying the signature. Tokens that are not
// JWTs yield a zero Info; that is not an error, the token is simply opaque.
func Inspect(raw string) Info {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return Info{}
	}

	info := Info{Decodable: true}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info
}
