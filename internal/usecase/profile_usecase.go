package usecase

import (
	"context"
	"errors"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

type SaveProfileInput struct {
	AgeRange        string
	ExperienceLevel string
	EducationLevel  string
	CurrentField    string
	CareerGoals     string
}

type ProfileItem struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	AgeRange            string
	ExperienceLevel     string
	EducationLevel      string
	CurrentField        string
	CareerGoals         string
	CompletedOnboarding bool
}

type ProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (ProfileItem, error)
	Save(ctx context.Context, userID uuid.UUID, in SaveProfileInput) (ProfileItem, error)
}

type Profile struct {
	profiles repository.ProfileRepository
}

func NewProfileUsecase(profiles repository.ProfileRepository) *Profile {
	return &Profile{profiles: profiles}
}

func (u *Profile) Get(ctx context.Context, userID uuid.UUID) (ProfileItem, error) {
	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return ProfileItem{}, ErrProfileNotFound
		}
		return ProfileItem{}, ErrInternal
	}
	return toProfileItem(p), nil
}

// Save is a create-or-replace keyed on userID. No history is kept; repeat
// submissions overwrite the previous answers.
func (u *Profile) Save(ctx context.Context, userID uuid.UUID, in SaveProfileInput) (ProfileItem, error) {
	if userID == uuid.Nil {
		return ProfileItem{}, ErrUnauthorized
	}

	p, err := u.profiles.Upsert(ctx, repository.ProfileUpsert{
		UserID:          userID,
		AgeRange:        in.AgeRange,
		ExperienceLevel: in.ExperienceLevel,
		EducationLevel:  in.EducationLevel,
		CurrentField:    in.CurrentField,
		CareerGoals:     in.CareerGoals,
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return ProfileItem{}, ErrUnauthorized
		}
		if repository.IsUniqueViolation(err) {
			return ProfileItem{}, ErrSaveFailed
		}
		return ProfileItem{}, ErrInternal
	}
	return toProfileItem(p), nil
}

func toProfileItem(p repository.UserProfile) ProfileItem {
	return ProfileItem{
		ID:                  p.ID,
		UserID:              p.UserID,
		AgeRange:            p.AgeRange,
		ExperienceLevel:     p.ExperienceLevel,
		EducationLevel:      p.EducationLevel,
		CurrentField:        p.CurrentField,
		CareerGoals:         p.CareerGoals,
		CompletedOnboarding: p.CompletedOnboarding,
	}
}
