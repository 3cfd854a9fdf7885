package services

import (
	"strings"
	"testing"
	"time"

	"travelapi/internal/domain"
)

func TestLoginReturnsDemoToken(t *testing.T) {
	resp, err := AuthService{}.Login("anyone@example.com", "wrong")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.AccessToken != DemoAccessToken || resp.TokenType != "bearer" {
		t.Fatalf("unexpected token: %+v", resp)
	}
	if resp.AccountID != DemoAccountID || resp.UserID != DemoUserID {
		t.Fatalf("unexpected ids: %+v", resp)
	}
}

func TestAuthenticateDemoToken(t *testing.T) {
	svc := AuthService{}
	for _, header := range []string{
		"Bearer " + DemoAccessToken,
		"bearer demo-anything",
		"BEARER   demo-x ",
	} {
		user, err := svc.Authenticate(header)
		if err != nil {
			t.Fatalf("Authenticate(%q) error: %v", header, err)
		}
		if user.UserID != DemoUserID || user.Email == nil || *user.Email != DemoUserEmail {
			t.Fatalf("unexpected user for %q: %+v", header, user)
		}
	}
}

func TestAuthenticateRejects(t *testing.T) {
	svc := AuthService{}
	cases := []struct {
		header string
		want   string
	}{
		{"", "Missing bearer token"},
		{"Basic abc", "Missing bearer token"},
		{"Bearer", "Missing bearer token"},
		{"Bearer xyz", "Invalid token"},
		{"Bearer ", "Invalid token"},
	}
	for _, tc := range cases {
		_, err := svc.Authenticate(tc.header)
		if !domain.IsUnauthorized(err) || err.Error() != tc.want {
			t.Errorf("Authenticate(%q) = %v, want %q", tc.header, err, tc.want)
		}
	}
}

func TestSignedTokens(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := AuthService{JWTSecret: []byte("test-secret"), TokenTTL: time.Hour, Now: func() time.Time { return now }}

	resp, err := svc.Login("  Mani@Example.com ", "pw")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if strings.HasPrefix(resp.AccessToken, "demo-") || strings.Count(resp.AccessToken, ".") != 2 {
		t.Fatalf("expected a JWT, got %q", resp.AccessToken)
	}

	user, err := svc.Authenticate("Bearer " + resp.AccessToken)
	if err != nil {
		t.Fatalf("Authenticate signed token: %v", err)
	}
	if user.UserID != DemoUserID || user.AccountID != DemoAccountID || user.Email == nil || *user.Email != "mani@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.Authenticate("Bearer " + DemoAccessToken); err != nil {
		t.Fatalf("demo tokens stay valid in signed mode: %v", err)
	}

	later := svc
	later.Now = func() time.Time { return now.Add(2 * time.Hour) }
	if _, err := later.Authenticate("Bearer " + resp.AccessToken); err != ErrInvalidToken {
		t.Fatalf("expired token should be invalid, got %v", err)
	}

	other := AuthService{JWTSecret: []byte("other"), Now: svc.Now}
	if _, err := other.Authenticate("Bearer " + resp.AccessToken); err != ErrInvalidToken {
		t.Fatalf("token signed with another secret should be invalid, got %v", err)
	}

	unsigned := AuthService{}
	if _, err := unsigned.Authenticate("Bearer " + resp.AccessToken); err != ErrInvalidToken {
		t.Fatalf("JWTs are rejected without a configured secret, got %v", err)
	}
}

func TestLoginDefaultsEmailInSignedMode(t *testing.T) {
	svc := AuthService{JWTSecret: []byte("k")}
	resp, err := svc.Login("   ", "")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	user, err := svc.Authenticate("Bearer " + resp.AccessToken)
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if user.Email == nil || *user.Email != "demo@example.com" {
		t.Fatalf("expected default email, got %+v", user.Email)
	}
}
