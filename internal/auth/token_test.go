package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/elite-arena/apiserver/types"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret")
	user := types.User{ID: 42, Name: "Jo", Email: "jo@x.com"}

	token, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("user id mismatch: got %d want %d", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Fatalf("email mismatch: got %q want %q", claims.Email, user.Email)
	}
	if claims.Name != user.Name {
		t.Fatalf("name mismatch: got %q want %q", claims.Name, user.Name)
	}
}

func TestIssue_FixedSevenDayExpiry(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("secret")
	before := time.Now()

	token, err := issuer.Issue(types.User{ID: 1, Name: "A", Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}

	ttl := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	if ttl != TokenTTL {
		t.Fatalf("ttl mismatch: got %v want %v", ttl, TokenTTL)
	}
	if claims.IssuedAt.Time.Before(before.Add(-time.Minute)) {
		t.Fatalf("issued-at too far in the past: %v", claims.IssuedAt.Time)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewIssuer("right-secret").Issue(types.User{ID: 1, Email: "a@b.com", Name: "A"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := NewIssuer("wrong-secret").Verify(token); err == nil {
		t.Fatalf("expected error for wrong secret, got nil")
	}
}

func TestVerify_Tampered(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("secret")
	token, err := issuer.Issue(types.User{ID: 1, Email: "a@b.com", Name: "A"})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Flip a character in the payload segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := issuer.Verify(tampered); err == nil {
		t.Fatalf("expected error for tampered token, got nil")
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := NewIssuer("k").Verify("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

// TestVerify_ExpiryBoundary covers both sides of the seven-day window by
// signing tokens whose issuance is backdated around the boundary.
func TestVerify_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	secret := "boundary-secret"
	issuer := NewIssuer(secret)

	signAt := func(issuedAt time.Time) string {
		claims := Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(issuedAt),
				ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenTTL)),
			},
			UserID: 7,
			Email:  "jo@x.com",
			Name:   "Jo",
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		if err != nil {
			t.Fatalf("sign error: %v", err)
		}
		return token
	}

	// One second of validity left.
	stillValid := signAt(time.Now().Add(-TokenTTL + time.Second))
	if _, err := issuer.Verify(stillValid); err != nil {
		t.Fatalf("token inside expiry window rejected: %v", err)
	}

	// One second past expiry.
	expired := signAt(time.Now().Add(-TokenTTL - time.Second))
	if _, err := issuer.Verify(expired); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}
