// Package cookiesign signs cookie values as compact HS256 JWTs so the value
// can be read back only if it was issued by this server.
package cookiesign

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidSignature = errors.New("cookiesign: invalid signature")

// Signer implements ports.CookieSigner with an HMAC secret.
type Signer struct {
	secret []byte
	issuer string
}

func New(secret, issuer string) (*Signer, error) {
	if secret == "" {
		return nil, errors.New("cookiesign: empty secret")
	}
	return &Signer{secret: []byte(secret), issuer: issuer}, nil
}

// Sign wraps value in a signed token. The token carries no expiry; the
// cookie's own lifetime bounds it.
func (s *Signer) Sign(value string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  value,
		Issuer:   s.issuer,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("cookiesign: sign: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and issuer and returns the original value.
func (s *Signer) Verify(signed string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	tkn, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return "", ErrInvalidSignature
	}
	return claims.Subject, nil
}
