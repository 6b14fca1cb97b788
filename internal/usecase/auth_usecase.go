package usecase

import (
	"context"
	"errors"

	"career-compass/internal/pkg/jwt"
	"career-compass/internal/repository"
	ucauth "career-compass/internal/usecase/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (repository.User, string, string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (repository.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)

	// CurrentUser returns the user together with their profile, or a nil
	// profile when onboarding has not produced one yet.
	CurrentUser(ctx context.Context, userID uuid.UUID) (repository.User, *ProfileItem, error)
}

type Auth struct {
	authSvc  *ucauth.Service
	users    repository.UserRepository
	profiles repository.ProfileRepository
	jwt      jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, profiles repository.ProfileRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: ucauth.NewService(users), users: users, profiles: profiles, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (repository.User, string, string, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return repository.User{}, "", "", err
	}
	return u.issueTokens(usr)
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (repository.User, string, string, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return repository.User{}, "", "", err
	}
	return u.issueTokens(usr)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", "", ErrInvalidRefreshToken
		}
		return "", "", ErrInternal
	}

	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

func (u *Auth) CurrentUser(ctx context.Context, userID uuid.UUID) (repository.User, *ProfileItem, error) {
	if userID == uuid.Nil {
		return repository.User{}, nil, ErrUnauthorized
	}
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.User{}, nil, ErrUnauthorized
		}
		return repository.User{}, nil, ErrInternal
	}
	usr.PasswordHash = ""

	prof, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return usr, nil, nil
		}
		return repository.User{}, nil, ErrInternal
	}
	item := toProfileItem(prof)
	return usr, &item, nil
}

func (u *Auth) issueTokens(usr repository.User) (repository.User, string, string, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return repository.User{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return repository.User{}, "", "", ErrInternal
	}
	return usr, access, refresh, nil
}
