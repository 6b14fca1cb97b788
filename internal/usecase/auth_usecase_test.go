package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-compass/internal/pkg/jwt"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

func newAuthFixture(users *mockUserRepo, profiles *mockProfileRepo) *Auth {
	return NewAuthUsecase(users, profiles, jwt.NewHMACService("access", "refresh", time.Minute, time.Hour))
}

func TestCurrentUser_IncludesProfileWhenPresent(t *testing.T) {
	userID := uuid.New()
	users := &mockUserRepo{users: map[uuid.UUID]repository.User{
		userID: {ID: userID, Email: "user@example.com", PasswordHash: "hash"},
	}}
	profiles := &mockProfileRepo{profile: repository.UserProfile{
		ID:                  uuid.New(),
		UserID:              userID,
		AgeRange:            "25-34",
		CompletedOnboarding: true,
	}}
	uc := newAuthFixture(users, profiles)

	usr, prof, err := uc.CurrentUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.PasswordHash != "" {
		t.Fatalf("password hash must be stripped")
	}
	if prof == nil {
		t.Fatalf("expected profile to ride along")
	}
	if prof.AgeRange != "25-34" || !prof.CompletedOnboarding {
		t.Fatalf("unexpected profile: %+v", prof)
	}
}

func TestCurrentUser_NoProfileYet(t *testing.T) {
	userID := uuid.New()
	users := &mockUserRepo{users: map[uuid.UUID]repository.User{
		userID: {ID: userID, Email: "user@example.com"},
	}}
	profiles := &mockProfileRepo{getErr: repository.ErrProfileNotFound}
	uc := newAuthFixture(users, profiles)

	usr, prof, err := uc.CurrentUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("missing profile must not be an error, got %v", err)
	}
	if usr.ID != userID {
		t.Fatalf("unexpected user: %+v", usr)
	}
	if prof != nil {
		t.Fatalf("expected nil profile, got %+v", prof)
	}
}

func TestCurrentUser_UnknownUser(t *testing.T) {
	uc := newAuthFixture(&mockUserRepo{}, &mockProfileRepo{})

	_, _, err := uc.CurrentUser(context.Background(), uuid.New())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestCurrentUser_NilUser(t *testing.T) {
	uc := newAuthFixture(&mockUserRepo{}, &mockProfileRepo{})

	_, _, err := uc.CurrentUser(context.Background(), uuid.Nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
