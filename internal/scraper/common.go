package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

type courseInput struct {
	Title           string
	Provider        string
	Description     string
	URL             string
	Duration        string
	DifficultyLevel string
	Cost            string
	SkillsCovered   []string
	Rating          float64
}

func createScrapeRun(ctx context.Context, db database.DB, provider string) (uuid.UUID, error) {
	if db == nil {
		return uuid.Nil, fmt.Errorf("nil db")
	}
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return uuid.Nil, fmt.Errorf("empty provider")
	}
	id := uuid.New()
	_, err := db.Exec(ctx,
		`INSERT INTO scrape_runs (id, provider, started_at, status) VALUES ($1, $2, $3, $4)`,
		id, provider, time.Now().UTC(), "running",
	)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func finishScrapeRun(ctx context.Context, db database.DB, runID uuid.UUID, status string, upserted int) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if runID == uuid.Nil {
		return nil
	}
	_, err := db.Exec(ctx,
		`UPDATE scrape_runs SET finished_at = $2, status = $3, courses_upserted = $4 WHERE id = $1`,
		runID, time.Now().UTC(), strings.TrimSpace(status), upserted,
	)
	return err
}

func logScrape(ctx context.Context, db database.DB, runID uuid.UUID, level string, message string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if runID == uuid.Nil {
		return nil
	}
	level = strings.TrimSpace(level)
	if level == "" {
		level = "info"
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil
	}
	_, err := db.Exec(ctx,
		`INSERT INTO scrape_logs (id, scrape_run_id, level, message) VALUES ($1, $2, $3, $4)`,
		uuid.New(), runID, level, message,
	)
	return err
}

// upsertCourse inserts or refreshes a catalog row keyed on (provider, title).
// Re-crawling a provider updates details in place and never duplicates the
// course.
func upsertCourse(ctx context.Context, db database.DB, runID uuid.UUID, in courseInput) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	title := strings.TrimSpace(in.Title)
	provider := strings.TrimSpace(in.Provider)
	if title == "" || provider == "" {
		return fmt.Errorf("empty course title/provider")
	}

	skills := in.SkillsCovered
	if skills == nil {
		skills = []string{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx,
		`INSERT INTO courses (
			id, title, provider, description, url, duration, difficulty_level, cost, skills_covered, rating
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10)
		ON CONFLICT (provider, title) DO UPDATE SET
			description = COALESCE(EXCLUDED.description, courses.description),
			url = COALESCE(EXCLUDED.url, courses.url),
			duration = COALESCE(EXCLUDED.duration, courses.duration),
			difficulty_level = COALESCE(EXCLUDED.difficulty_level, courses.difficulty_level),
			cost = COALESCE(EXCLUDED.cost, courses.cost),
			skills_covered = EXCLUDED.skills_covered,
			rating = COALESCE(EXCLUDED.rating, courses.rating)`,
		uuid.New(),
		title,
		provider,
		nullableText(in.Description),
		nullableText(in.URL),
		nullableText(in.Duration),
		nullableText(in.DifficultyLevel),
		nullableText(in.Cost),
		string(skillsJSON),
		nullableRating(in.Rating),
	)
	if err != nil {
		_ = logScrape(ctx, db, runID, "error", fmt.Sprintf("upsert course provider=%s title=%s: %v", provider, title, err))
		return err
	}
	_ = logScrape(ctx, db, runID, "info", fmt.Sprintf("course upserted provider=%s title=%s", provider, title))
	return nil
}

func nullableText(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}

func nullableRating(r float64) any {
	if r <= 0 {
		return nil
	}
	return r
}

func pickNonEmpty(a, b string) string {
	a = strings.TrimSpace(a)
	if a != "" {
		return a
	}
	return strings.TrimSpace(b)
}

func normalizeURL(u string) string {
	return strings.TrimSpace(u)
}

func hostFromBaseURL(base string, fallback string) string {
	base = strings.TrimSpace(base)
	u, err := url.Parse(base)
	if err != nil {
		return fallback
	}
	host := u.Host
	if host == "" {
		return fallback
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

func httpHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "CareerCompassScraper/0.1",
		"Accept-Language": "en-US,en;q=0.9",
	}
}

func httpGetWithRetry(ctx context.Context, client *http.Client, url string, attempts int) ([]byte, error) {
	if attempts <= 0 {
		attempts = 1
	}
	var body []byte
	var lastErr error
	for i := 0; i < attempts; i++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		for k, v := range httpHeaders() {
			req.Header.Set(k, v)
		}
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(300*(i+1)) * time.Millisecond)
			continue
		}
		func() {
			defer resp.Body.Close()
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				lastErr = fmt.Errorf("status %d", resp.StatusCode)
				return
			}
			b, err := readAllLimit(resp.Body, 5<<20)
			if err != nil {
				lastErr = err
				return
			}
			lastErr = nil
			body = b
		}()
		if lastErr == nil {
			return body, nil
		}
		time.Sleep(time.Duration(300*(i+1)) * time.Millisecond)
	}
	return nil, lastErr
}

func readAllLimit(r io.Reader, max int64) ([]byte, error) {
	lr := &io.LimitedReader{R: r, N: max}
	b, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if lr.N <= 0 {
		return nil, fmt.Errorf("response too large")
	}
	return b, nil
}
