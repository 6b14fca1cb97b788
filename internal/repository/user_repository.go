package repository

import (
	"context"
	"errors"
	"time"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID              uuid.UUID
	Email           string
	PasswordHash    string
	FirstName       string
	LastName        string
	ProfileImageURL string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type UserUpsert struct {
	ID              uuid.UUID
	Email           string
	PasswordHash    string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Upsert(ctx context.Context, u UserUpsert) (User, error)
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, COALESCE(email, ''), password_hash, COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(profile_image_url, ''), created_at, updated_at`

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Upsert inserts the user or, when the id already exists, overwrites the
// mutable fields and refreshes updated_at. Used both at registration and on
// repeat login.
func (r *PostgresUserRepository) Upsert(ctx context.Context, u UserUpsert) (User, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (id, email, password_hash, first_name, last_name, profile_image_url)
		 VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
		 ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			profile_image_url = EXCLUDED.profile_image_url,
			updated_at = now()
		 RETURNING `+userColumns,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.ProfileImageURL,
	)
	return scanUser(row)
}

func scanUser(row database.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.ProfileImageURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return u, nil
}
