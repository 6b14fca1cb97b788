package usecase

import (
	"context"
	"errors"
	"time"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrSkillNotFound = errors.New("skill not found")
	ErrInvalidLevel  = errors.New("invalid skill level")
)

type UpsertUserSkillInput struct {
	SkillID      uuid.UUID
	CurrentLevel int
	TargetLevel  *int
	IsLearning   bool
}

type UserSkillItem struct {
	ID           uuid.UUID
	SkillID      uuid.UUID
	SkillName    string
	CurrentLevel int
	TargetLevel  *int
	IsLearning   bool
	UpdatedAt    time.Time
}

type UserSkillUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]UserSkillItem, error)

	// Upsert inserts the (user, skill) pair or updates it in place when the
	// pair already exists; a duplicate submission never duplicates the row.
	Upsert(ctx context.Context, userID uuid.UUID, in UpsertUserSkillInput) (UserSkillItem, error)
}

type UserSkill struct {
	repo   repository.UserSkillRepository
	skills repository.SkillRepository
}

func NewUserSkillUsecase(repo repository.UserSkillRepository, skills repository.SkillRepository) *UserSkill {
	return &UserSkill{repo: repo, skills: skills}
}

func (u *UserSkill) List(ctx context.Context, userID uuid.UUID) ([]UserSkillItem, error) {
	items, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]UserSkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, toUserSkillItem(it))
	}
	return out, nil
}

func (u *UserSkill) Upsert(ctx context.Context, userID uuid.UUID, in UpsertUserSkillInput) (UserSkillItem, error) {
	if userID == uuid.Nil {
		return UserSkillItem{}, ErrUnauthorized
	}
	if in.SkillID == uuid.Nil {
		return UserSkillItem{}, ErrInvalidInput
	}
	if !isValidLevel(in.CurrentLevel) {
		return UserSkillItem{}, ErrInvalidLevel
	}
	if in.TargetLevel != nil && !isValidLevel(*in.TargetLevel) {
		return UserSkillItem{}, ErrInvalidLevel
	}

	exists, err := u.skills.ExistsByID(ctx, in.SkillID)
	if err != nil {
		return UserSkillItem{}, ErrInternal
	}
	if !exists {
		return UserSkillItem{}, ErrSkillNotFound
	}

	saved, err := u.repo.Upsert(ctx, repository.UserSkillUpsert{
		UserID:       userID,
		SkillID:      in.SkillID,
		CurrentLevel: in.CurrentLevel,
		TargetLevel:  in.TargetLevel,
		IsLearning:   in.IsLearning,
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return UserSkillItem{}, ErrSkillNotFound
		}
		return UserSkillItem{}, ErrSaveFailed
	}
	return toUserSkillItem(saved), nil
}

func isValidLevel(v int) bool {
	return v >= 1 && v <= 5
}

func toUserSkillItem(us repository.UserSkill) UserSkillItem {
	return UserSkillItem{
		ID:           us.ID,
		SkillID:      us.SkillID,
		SkillName:    us.SkillName,
		CurrentLevel: us.CurrentLevel,
		TargetLevel:  us.TargetLevel,
		IsLearning:   us.IsLearning,
		UpdatedAt:    us.UpdatedAt,
	}
}
