package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"globemart-backend/internal/domain"
	"globemart-backend/internal/repository/memory"
	"globemart-backend/internal/usecase"
	"globemart-backend/pkg/utils"
)

func init() {
	utils.SetSecret("test-signing-secret")
}

func newAuthUsecase(expiry time.Duration) *usecase.AuthUsecase {
	return usecase.NewAuthUsecase(memory.NewUserStore(), expiry)
}

func TestRegisterAndResolveSession(t *testing.T) {
	uc := newAuthUsecase(time.Hour)
	ctx := context.Background()

	user, token, err := uc.Register(ctx, "a@b.com", "pw", "Ada", "Lovelace")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Error("user ID not assigned")
	}
	if token == "" {
		t.Error("no token issued")
	}
	if user.PasswordHash == "pw" {
		t.Error("password stored in plaintext")
	}

	resolved := uc.ResolveSession(ctx, token)
	if resolved == nil {
		t.Fatal("ResolveSession returned nil for a fresh token")
	}
	if resolved.ID != user.ID {
		t.Errorf("resolved ID = %q, want %q", resolved.ID, user.ID)
	}
	if resolved.Email != "a@b.com" {
		t.Errorf("resolved Email = %q, want %q", resolved.Email, "a@b.com")
	}
}

func TestRegisterDuplicateAccount(t *testing.T) {
	uc := newAuthUsecase(time.Hour)
	ctx := context.Background()

	if _, _, err := uc.Register(ctx, "a@b.com", "pw", "", ""); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, _, err := uc.Register(ctx, "a@b.com", "pw2", "", "")
	if !errors.Is(err, domain.ErrDuplicateAccount) {
		t.Errorf("err = %v, want ErrDuplicateAccount", err)
	}

	// Emails are case-insensitive: a different casing is still a duplicate.
	_, _, err = uc.Register(ctx, "A@B.COM", "pw3", "", "")
	if !errors.Is(err, domain.ErrDuplicateAccount) {
		t.Errorf("mixed-case err = %v, want ErrDuplicateAccount", err)
	}
}

func TestLogin(t *testing.T) {
	uc := newAuthUsecase(time.Hour)
	ctx := context.Background()

	if _, _, err := uc.Register(ctx, "a@b.com", "pw", "", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, token, err := uc.Login(ctx, "a@b.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user == nil || token == "" {
		t.Fatal("Login returned no user or token")
	}

	// Case-insensitive email lookup.
	if _, _, err := uc.Login(ctx, "A@b.Com", "pw"); err != nil {
		t.Errorf("mixed-case Login: %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	uc := newAuthUsecase(time.Hour)
	ctx := context.Background()

	if _, _, err := uc.Register(ctx, "a@b.com", "pw", "", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, wrongPassword := uc.Login(ctx, "a@b.com", "wrong")
	_, _, unknownEmail := uc.Login(ctx, "nouser@x.com", "pw")

	if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", wrongPassword)
	}
	if !errors.Is(unknownEmail, domain.ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Errorf("failure messages differ: %q vs %q", wrongPassword, unknownEmail)
	}
}

func TestResolveSessionRejectsBadTokens(t *testing.T) {
	uc := newAuthUsecase(time.Hour)
	ctx := context.Background()

	_, token, err := uc.Register(ctx, "a@b.com", "pw", "", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "malformed", token: "not-a-jwt"},
		{name: "tampered", token: token + "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if user := uc.ResolveSession(ctx, tt.token); user != nil {
				t.Errorf("ResolveSession accepted %s token", tt.name)
			}
		})
	}
}

func TestResolveSessionExpiredToken(t *testing.T) {
	uc := newAuthUsecase(-time.Minute)

	_, token, err := uc.Register(context.Background(), "a@b.com", "pw", "", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user := uc.ResolveSession(context.Background(), token); user != nil {
		t.Error("ResolveSession accepted an expired token")
	}
}
