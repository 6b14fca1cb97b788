package repository

import (
	"context"
	"encoding/json"
	"time"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

type CareerRecommendation struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CareerPathID uuid.UUID
	MatchScore   float64
	Reasons      []string
	IsBookmarked bool
	CreatedAt    time.Time
}

type RecommendationWithPath struct {
	CareerRecommendation
	CareerPath CareerPath
}

type RecommendationInsert struct {
	UserID       uuid.UUID
	CareerPathID uuid.UUID
	MatchScore   float64
	Reasons      []string
}

type RecommendationRepository interface {
	// InsertIgnore creates the (userID, careerPathID) recommendation unless
	// one already exists, in which case the existing row (score, reasons and
	// bookmark) is left untouched. Returns true when a row was created.
	InsertIgnore(ctx context.Context, rec RecommendationInsert) (bool, error)

	// ListByUser returns recommendation+careerPath pairs sorted by match
	// score descending. Recommendations whose career path has been deleted
	// are excluded by the inner join.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]RecommendationWithPath, error)

	// ToggleBookmark atomically flips is_bookmarked for the pair. Returns
	// false (and no error) when no such recommendation exists.
	ToggleBookmark(ctx context.Context, userID uuid.UUID, careerPathID uuid.UUID) (bool, error)
}

type PostgresRecommendationRepository struct {
	db database.DB
}

func NewPostgresRecommendationRepository(db database.DB) *PostgresRecommendationRepository {
	return &PostgresRecommendationRepository{db: db}
}

func (r *PostgresRecommendationRepository) InsertIgnore(ctx context.Context, rec RecommendationInsert) (bool, error) {
	reasons, err := json.Marshal(rec.Reasons)
	if err != nil {
		return false, err
	}

	rowsAffected, err := r.db.Exec(ctx,
		`INSERT INTO career_recommendations (id, user_id, career_path_id, match_score, reasons)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, career_path_id) DO NOTHING`,
		uuid.New(), rec.UserID, rec.CareerPathID, rec.MatchScore, reasons,
	)
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *PostgresRecommendationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]RecommendationWithPath, error) {
	rows, err := r.db.Query(ctx,
		`SELECT cr.id, cr.user_id, cr.career_path_id, cr.match_score, COALESCE(cr.reasons, '[]'::jsonb), cr.is_bookmarked, cr.created_at,
			cp.id, cp.title, COALESCE(cp.description, ''), COALESCE(cp.salary_min, 0), COALESCE(cp.salary_max, 0),
			COALESCE(cp.demand_level, ''), COALESCE(cp.growth_outlook, ''), COALESCE(cp.required_skills, '[]'::jsonb), cp.created_at
		 FROM career_recommendations cr
		 JOIN career_paths cp ON cp.id = cr.career_path_id
		 WHERE cr.user_id = $1
		 ORDER BY cr.match_score DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RecommendationWithPath, 0)
	for rows.Next() {
		var rec RecommendationWithPath
		var reasons, pathSkills []byte
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.CareerPathID, &rec.MatchScore, &reasons, &rec.IsBookmarked, &rec.CreatedAt,
			&rec.CareerPath.ID, &rec.CareerPath.Title, &rec.CareerPath.Description, &rec.CareerPath.SalaryMin, &rec.CareerPath.SalaryMax,
			&rec.CareerPath.DemandLevel, &rec.CareerPath.GrowthOutlook, &pathSkills, &rec.CareerPath.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(reasons, &rec.Reasons); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(pathSkills, &rec.CareerPath.RequiredSkills); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRecommendationRepository) ToggleBookmark(ctx context.Context, userID uuid.UUID, careerPathID uuid.UUID) (bool, error) {
	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE career_recommendations
		 SET is_bookmarked = NOT is_bookmarked
		 WHERE user_id = $1 AND career_path_id = $2`,
		userID, careerPathID,
	)
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
