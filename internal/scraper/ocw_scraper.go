package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

const ocwProvider = "MIT OpenCourseWare"

// OCWScraper pulls course metadata from the OpenCourseWare search API. Unlike
// the Class Central crawl this is a plain JSON endpoint, so no HTML parsing
// or browser is involved.
type OCWScraper struct {
	db      database.DB
	client  *http.Client
	apiBase string
}

func NewOCWScraper(db database.DB, baseURL string) *OCWScraper {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = "https://ocw.mit.edu"
	}
	return &OCWScraper{
		db: db,
		client: &http.Client{
			Timeout: 25 * time.Second,
		},
		apiBase: base,
	}
}

type ocwCourse struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Level       string   `json:"level"`
	Topics      []string `json:"topics"`
	Term        string   `json:"term"`
}

type ocwSearchPage struct {
	Results []ocwCourse `json:"results"`
	Next    string      `json:"next"`
}

func (s *OCWScraper) Scrape(ctx context.Context, topics []string, workers int) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("nil scraper/db")
	}
	if len(topics) == 0 {
		topics = []string{"computer-science", "mathematics", "management"}
	}

	runID, _ := createScrapeRun(ctx, s.db, ocwProvider)

	upserted := 0
	pool := NewWorkerPool(workers, workers*2)
	pool.SetRateLimit(4)
	results := pool.Run(ctx)

	for _, topic := range topics {
		courses, err := s.fetchTopic(ctx, topic)
		if err != nil {
			_ = logScrape(ctx, s.db, runID, "error", fmt.Sprintf("ocw topic %s: %v", topic, err))
			continue
		}
		for _, course := range courses {
			course := course
			if strings.TrimSpace(course.Title) == "" {
				continue
			}
			pool.Submit(func(ctx context.Context) error {
				return upsertCourse(ctx, s.db, runID, courseInput{
					Title:           course.Title,
					Provider:        ocwProvider,
					Description:     course.Description,
					URL:             s.absoluteURL(course.URL),
					Duration:        course.Term,
					DifficultyLevel: course.Level,
					Cost:            "Free",
					SkillsCovered:   course.Topics,
				})
			})
		}
	}

	pool.Close()

	var failed int
	for res := range results {
		if res.Err != nil {
			failed++
			_ = logScrape(ctx, s.db, runID, "error", fmt.Sprintf("ocw item: %v", res.Err))
			continue
		}
		upserted++
	}

	status := "finished"
	if upserted == 0 && failed > 0 {
		status = "failed"
	}
	if runID != uuid.Nil {
		_ = finishScrapeRun(context.Background(), s.db, runID, status, upserted)
	}
	return nil
}

func (s *OCWScraper) fetchTopic(ctx context.Context, topic string) ([]ocwCourse, error) {
	url := fmt.Sprintf("%s/api/v0/courses/?topic=%s&limit=50", strings.TrimRight(s.apiBase, "/"), strings.TrimSpace(topic))
	body, err := httpGetWithRetry(ctx, s.client, url, 3)
	if err != nil {
		return nil, err
	}
	var page ocwSearchPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (s *OCWScraper) absoluteURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return ""
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return strings.TrimRight(s.apiBase, "/") + "/" + strings.TrimLeft(u, "/")
}
