package scraper

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"career-compass/internal/database"

	"github.com/google/uuid"
)

type fakeDB struct {
	mu sync.Mutex

	coursesByKey map[string]courseInput
	scrapeRuns   map[uuid.UUID]string
	logLines     int
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		coursesByKey: map[string]courseInput{},
		scrapeRuns:   map[uuid.UUID]string{},
	}
}

func (db *fakeDB) Ping(ctx context.Context) error { return nil }
func (db *fakeDB) Close() error                   { return nil }
func (db *fakeDB) SQLDB() *sql.DB                 { return nil }

func (db *fakeDB) Begin(ctx context.Context) (database.Tx, error) {
	return nil, fmt.Errorf("not implemented")
}

func (db *fakeDB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return nil, fmt.Errorf("not implemented")
}

func (db *fakeDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	panic("unexpected queryrow: " + query)
}

func (db *fakeDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))

	switch {
	case strings.HasPrefix(q, "insert into scrape_runs"):
		runID := args[0].(uuid.UUID)
		db.scrapeRuns[runID] = "running"
		return 1, nil

	case strings.HasPrefix(q, "update scrape_runs"):
		runID := args[0].(uuid.UUID)
		status := args[2].(string)
		db.scrapeRuns[runID] = status
		return 1, nil

	case strings.HasPrefix(q, "insert into scrape_logs"):
		db.logLines++
		return 1, nil

	case strings.HasPrefix(q, "insert into courses"):
		// args: id, title, provider, description, url, duration,
		// difficulty_level, cost, skills_covered, rating
		in := courseInput{
			Title:    args[1].(string),
			Provider: args[2].(string),
		}
		if v := args[3]; v != nil {
			in.Description = v.(string)
		}
		if v := args[4]; v != nil {
			in.URL = v.(string)
		}
		if v := args[7]; v != nil {
			in.Cost = v.(string)
		}
		if v := args[9]; v != nil {
			in.Rating = v.(float64)
		}
		key := in.Provider + "|" + in.Title
		db.coursesByKey[key] = in
		return 1, nil

	default:
		return 0, nil
	}
}

func (db *fakeDB) runStatuses() []string {
	db.mu.Lock()
	defer db.mu.Unlock()
	out := make([]string, 0, len(db.scrapeRuns))
	for _, s := range db.scrapeRuns {
		out = append(out, s)
	}
	return out
}

func TestOCWScraper_SuccessAndIdempotent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v0/courses/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"results": [{
				"title": "Introduction to Algorithms",
				"description": "Design and analysis of algorithms.",
				"url": "/courses/6-006-introduction-to-algorithms",
				"level": "Undergraduate",
				"topics": ["Computer Science", "Algorithms"],
				"term": "Fall 2024"
			}],
			"next": ""
		}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	db := newFakeDB()
	s := NewOCWScraper(db, server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Scrape(ctx, []string{"computer-science"}, 2); err != nil {
		t.Fatalf("scrape error: %v", err)
	}
	if err := s.Scrape(ctx, []string{"computer-science"}, 2); err != nil {
		t.Fatalf("scrape error (2nd): %v", err)
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	if got := len(db.coursesByKey); got != 1 {
		t.Fatalf("expected 1 course upserted, got %d", got)
	}
	course, ok := db.coursesByKey[ocwProvider+"|Introduction to Algorithms"]
	if !ok {
		t.Fatalf("course missing, have %v", db.coursesByKey)
	}
	if course.Cost != "Free" {
		t.Fatalf("expected Free cost, got %q", course.Cost)
	}
	if !strings.HasPrefix(course.URL, server.URL) {
		t.Fatalf("relative url not absolutized: %q", course.URL)
	}
}

func TestOCWScraper_TopicErrorFinishesRun(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	db := newFakeDB()
	s := NewOCWScraper(db, server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.Scrape(ctx, []string{"mathematics"}, 1); err != nil {
		t.Fatalf("scrape error: %v", err)
	}
	if len(db.coursesByKey) != 0 {
		t.Fatalf("expected no courses")
	}
	statuses := db.runStatuses()
	if len(statuses) != 1 || statuses[0] != "finished" {
		t.Fatalf("unexpected run statuses: %v", statuses)
	}
	if db.logLines == 0 {
		t.Fatalf("expected the topic failure to be logged")
	}
}

func TestClassCentralScraper_SuccessAndIdempotent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/subject/programming", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<a href="/course/go-for-everybody">Go for Everybody</a>
			<a href="/course/go-for-everybody">Go for Everybody (duplicate link)</a>
			<a href="/about">About</a>
		</body></html>`))
	})
	mux.HandleFunc("/course/go-for-everybody", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head>
			<meta name="description" content="Learn Go from zero.">
		</head><body>
			<h1>Go for Everybody</h1>
			<span data-field="duration">6 weeks</span>
			<span data-field="level">Beginner</span>
			<span data-field="cost">Free</span>
			<a href="/subject/programming">Programming</a>
			<span itemprop="ratingValue" content="4.7"></span>
		</body></html>`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	db := newFakeDB()
	s := NewClassCentralScraper(db, server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.Scrape(ctx, []string{"programming"}, 2); err != nil {
		t.Fatalf("scrape error: %v", err)
	}
	if err := s.Scrape(ctx, []string{"programming"}, 2); err != nil {
		t.Fatalf("scrape error (2nd): %v", err)
	}

	db.mu.Lock()
	if got := len(db.coursesByKey); got != 1 {
		db.mu.Unlock()
		t.Fatalf("expected 1 course upserted, got %d", got)
	}
	course, ok := db.coursesByKey[classCentralProvider+"|Go for Everybody"]
	if !ok {
		db.mu.Unlock()
		t.Fatalf("course missing, have %v", db.coursesByKey)
	}
	db.mu.Unlock()
	if course.Description != "Learn Go from zero." {
		t.Fatalf("unexpected description %q", course.Description)
	}
	if course.Rating != 4.7 {
		t.Fatalf("unexpected rating %v", course.Rating)
	}
	statuses := db.runStatuses()
	for _, status := range statuses {
		if status != "finished" {
			t.Fatalf("unexpected run status %q", status)
		}
	}
}

func TestParseRating(t *testing.T) {
	cases := map[string]float64{
		"4.7":      4.7,
		"":         0,
		"garbage":  0,
		"9.9":      0,
		"0":        0,
		"5.0":      5,
		" 3.25 \n": 3.25,
	}
	for in, want := range cases {
		if got := parseRating(in); got != want {
			t.Fatalf("parseRating(%q) = %v, want %v", in, got, want)
		}
	}
}
