package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/badobtech/backoffice-service/internal/domain"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, expiresAt, err := tm.GenerateToken("eva@badobtech.com", domain.RoleSupervisor)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("expiry not in the future: %v", expiresAt)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if claims.Email != "eva@badobtech.com" {
		t.Errorf("email = %q, want eva@badobtech.com", claims.Email)
	}
	if claims.Role != domain.RoleSupervisor {
		t.Errorf("role = %q, want %q", claims.Role, domain.RoleSupervisor)
	}
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 60)
	verifier := NewTokenManager("secret-b", 60)

	token, _, err := issuer.GenerateToken("eva@badobtech.com", domain.RoleEmployee)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatalf("expected parse failure for token signed with a different secret")
	}
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	claims := &Claims{
		Email: "eva@badobtech.com",
		Role:  domain.RoleEmployee,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "eva@badobtech.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, err := tm.ParseToken(token); err == nil {
		t.Fatalf("expected parse failure for expired token")
	}
}

func TestTokenManager_RejectsUnknownRoleClaim(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	claims := &Claims{
		Email: "eva@badobtech.com",
		Role:  domain.Role("INTERN"),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "eva@badobtech.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	if _, err := tm.ParseToken(token); err == nil {
		t.Fatalf("expected parse failure for role outside the known set")
	}
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	if _, err := tm.ParseToken("not-a-jwt"); err == nil {
		t.Fatalf("expected parse failure for malformed token")
	}
}
