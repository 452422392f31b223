package service

import (
	"crypto/subtle"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// newToken returns a fresh random token suitable for remember and session
// credentials.
func newToken() string {
	return uuid.NewString()
}

// digest hashes a secret with bcrypt at the given cost. Costs outside
// bcrypt's range fall back to bcrypt.DefaultCost.
func digest(secret string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Authenticated reports whether token matches the stored digest. An empty
// digest or token never matches.
func Authenticated(digest, token string) bool {
	if digest == "" || token == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(token)) == nil
}

// tokensEqual compares two opaque tokens in constant time. Empty values never
// match.
func tokensEqual(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
