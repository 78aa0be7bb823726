package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the fields the storefront extracts from a bearer credential.
type Claims struct {
	Identity string
	Role     Role
	// ExpiresAt is nil when the credential carries no exp claim.
	ExpiresAt *time.Time
}

// DecodeCredential structurally parses a bearer credential: three
// dot-separated segments whose middle segment is a base64url JSON object
// carrying at least the email and role claims.
//
// The signature is deliberately NOT verified: the client trusts the issuing
// user service, and a forged role claim only changes what the UI offers;
// every privileged call is still rejected server-side. Expiry, when present,
// is enforced locally so a stale stored credential never produces a session
// that dies on its first authenticated call.
func DecodeCredential(raw string) (Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return Claims{}, ErrInvalidCredential
	}

	identity, ok := claims["email"].(string)
	if !ok || identity == "" {
		return Claims{}, ErrInvalidCredential
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return Claims{}, ErrInvalidCredential
	}
	role := Role(roleStr)
	if !role.Valid() {
		return Claims{}, ErrInvalidCredential
	}

	out := Claims{Identity: identity, Role: role}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return Claims{}, ErrInvalidCredential
	}
	if exp != nil {
		if time.Now().After(exp.Time) {
			return Claims{}, ErrInvalidCredential
		}
		t := exp.Time
		out.ExpiresAt = &t
	}

	return out, nil
}
