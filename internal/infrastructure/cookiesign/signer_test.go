package cookiesign

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestSigner_RoundTrip(t *testing.T) {
	s, err := New("secret", "sampleapp")
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}
	signed, err := s.Sign("65a1f0c2e4b0a1b2c3d4e5f6")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if signed == "65a1f0c2e4b0a1b2c3d4e5f6" {
		t.Fatalf("expected the value to be wrapped")
	}
	got, err := s.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != "65a1f0c2e4b0a1b2c3d4e5f6" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestSigner_RejectsOtherSecret(t *testing.T) {
	a, _ := New("secret-a", "sampleapp")
	b, _ := New("secret-b", "sampleapp")
	signed, _ := a.Sign("42")
	if _, err := b.Verify(signed); err != ErrInvalidSignature {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestSigner_RejectsOtherIssuer(t *testing.T) {
	a, _ := New("secret", "sampleapp")
	b, _ := New("secret", "elsewhere")
	signed, _ := a.Sign("42")
	if _, err := b.Verify(signed); err != ErrInvalidSignature {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestSigner_RejectsPlainValueAndNoneAlg(t *testing.T) {
	s, _ := New("secret", "")
	if _, err := s.Verify("42"); err != ErrInvalidSignature {
		t.Fatalf("expected ErrInvalidSignature for plain value, got %v", err)
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "42"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("build none token: %v", err)
	}
	if _, err := s.Verify(unsigned); err != ErrInvalidSignature {
		t.Fatalf("expected ErrInvalidSignature for alg=none, got %v", err)
	}
}

func TestNew_EmptySecret(t *testing.T) {
	if _, err := New("", "x"); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}
