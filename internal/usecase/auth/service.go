package auth

import (
	"context"
	"errors"
	"strings"

	"career-compass/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type LoginInput struct {
	Email    string
	Password string
}

type Service struct {
	users repository.UserRepository
}

func NewService(users repository.UserRepository) *Service {
	return &Service{users: users}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (repository.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return repository.User{}, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return repository.User{}, ErrInvalidInput
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return repository.User{}, ErrInternal
	}
	if exists {
		return repository.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return repository.User{}, ErrInternal
	}

	created, err := s.users.Upsert(ctx, repository.UserUpsert{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return repository.User{}, ErrEmailAlreadyRegistered
		}
		return repository.User{}, ErrInternal
	}
	return sanitizeUser(created), nil
}

// Login verifies credentials and then re-upserts the user row, which
// refreshes updated_at on every successful sign-in.
func (s *Service) Login(ctx context.Context, in LoginInput) (repository.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return repository.User{}, ErrInvalidCredentials
	}

	usr, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.User{}, ErrInvalidCredentials
		}
		return repository.User{}, ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)) != nil {
		return repository.User{}, ErrInvalidCredentials
	}

	refreshed, err := s.users.Upsert(ctx, repository.UserUpsert{
		ID:              usr.ID,
		Email:           usr.Email,
		PasswordHash:    usr.PasswordHash,
		FirstName:       usr.FirstName,
		LastName:        usr.LastName,
		ProfileImageURL: usr.ProfileImageURL,
	})
	if err != nil {
		return repository.User{}, ErrInternal
	}
	return sanitizeUser(refreshed), nil
}

func normalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return ""
	}
	return email
}

func isValidPassword(pw string) bool {
	return len(pw) >= 8
}

func sanitizeUser(u repository.User) repository.User {
	u.PasswordHash = ""
	return u
}
