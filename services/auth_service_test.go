package services

import (
	"context"
	"errors"
	"testing"
)

func TestSignupAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Signup(context.Background(), "alice", "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.PasswordHash == "s3cret" || user.PasswordHash == "" {
		t.Fatalf("password stored without hashing")
	}

	got, err := svc.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("login returned user %d, want %d", got.ID, user.ID)
	}
}

func TestSignup_RejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	if _, err := svc.Signup(context.Background(), "alice", "alice@example.com", "pw"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, err := svc.Signup(context.Background(), "alice", "other@example.com", "pw"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("duplicate username: err = %v, want ErrUsernameTaken", err)
	}
	if _, err := svc.Signup(context.Background(), "alice2", "alice@example.com", "pw"); !errors.Is(err, ErrEmailRegistered) {
		t.Fatalf("duplicate email: err = %v, want ErrEmailRegistered", err)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	if _, err := svc.Signup(context.Background(), "alice", "alice@example.com", "pw"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, err := svc.Login(context.Background(), "alice", "wrong"); !errors.Is(err, ErrInvalidLogin) {
		t.Fatalf("wrong password: err = %v, want ErrInvalidLogin", err)
	}
	if _, err := svc.Login(context.Background(), "nobody", "pw"); !errors.Is(err, ErrInvalidLogin) {
		t.Fatalf("unknown user: err = %v, want ErrInvalidLogin", err)
	}
}
