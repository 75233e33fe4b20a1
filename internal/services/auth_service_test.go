package services

import (
	"errors"
	"testing"

	"stocktrack_backend/internal/repositories"
	"stocktrack_backend/pkg/utils"
)

func registerTestUser(t *testing.T, svc AuthService, username, password string) {
	t.Helper()
	if _, err := svc.Register(RegisterRequest{Username: username, Password: password}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())
	registerTestUser(t, svc, "alice", "sufficiently-long")

	tokens, err := svc.Login(LoginRequest{Username: "alice", Password: "sufficiently-long"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("Expected both tokens issued")
	}
	if tokens.User == nil || tokens.User.Username != "alice" {
		t.Errorf("Expected user attached to token pair, got %+v", tokens.User)
	}

	claims, err := utils.ValidateToken(tokens.AccessToken)
	if err != nil {
		t.Fatalf("Issued access token does not validate: %v", err)
	}
	if claims.Username != "alice" || claims.Role != "staff" {
		t.Errorf("Unexpected claims: %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())
	registerTestUser(t, svc, "alice", "sufficiently-long")

	if _, err := svc.Login(LoginRequest{Username: "alice", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(LoginRequest{Username: "nobody", Password: "whatever"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	if _, err := svc.Register(RegisterRequest{Username: "bob", Password: "short"}); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for short password, got %v", err)
	}
	if _, err := svc.Register(RegisterRequest{Username: "", Password: "long-enough"}); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for empty username, got %v", err)
	}
	if _, err := svc.Register(RegisterRequest{Username: "bob", Password: "long-enough", Role: "root"}); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for unknown role, got %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())
	registerTestUser(t, svc, "alice", "long-enough")

	if _, err := svc.Register(RegisterRequest{Username: "alice", Password: "long-enough"}); !errors.Is(err, repositories.ErrDuplicateKey) {
		t.Errorf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestRefreshRoundTrip(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())
	registerTestUser(t, svc, "alice", "sufficiently-long")

	tokens, err := svc.Login(LoginRequest{Username: "alice", Password: "sufficiently-long"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	refreshed, err := svc.Refresh(tokens.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if refreshed.AccessToken == "" || refreshed.User.Username != "alice" {
		t.Errorf("Unexpected refreshed pair: %+v", refreshed)
	}

	if _, err := svc.Refresh("not-a-token"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for garbage token, got %v", err)
	}
}
