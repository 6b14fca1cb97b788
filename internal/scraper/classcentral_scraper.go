package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"career-compass/internal/database"

	"github.com/gocolly/colly/v2"
	"github.com/google/uuid"
)

const classCentralProvider = "Class Central"

type ClassCentralScraper struct {
	db          database.DB
	baseURL     string
	allowedHost string
	headless    bool
}

func NewClassCentralScraper(db database.DB, baseURL string) *ClassCentralScraper {
	s := &ClassCentralScraper{db: db, baseURL: strings.TrimSpace(baseURL)}
	if s.baseURL == "" {
		s.baseURL = "https://www.classcentral.com"
	}
	s.allowedHost = hostFromBaseURL(s.baseURL, "www.classcentral.com")
	return s
}

// WithHeadlessFallback enables the browser-based listing fetch for pages the
// plain crawl cannot read because they render course cards client side.
func (s *ClassCentralScraper) WithHeadlessFallback(on bool) *ClassCentralScraper {
	s.headless = on
	return s
}

type classCentralListItem struct {
	Title string
	Link  string
}

func (s *ClassCentralScraper) Scrape(ctx context.Context, subjects []string, workers int) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("nil scraper/db")
	}
	if len(subjects) == 0 {
		subjects = []string{"programming-and-software-development", "data-science", "business"}
	}

	runID, _ := createScrapeRun(ctx, s.db, classCentralProvider)

	upserted := 0
	pool := NewWorkerPool(workers, workers*2)
	pool.SetRateLimit(2)
	results := pool.Run(ctx)

	for _, subject := range subjects {
		listURL := fmt.Sprintf("%s/subject/%s", strings.TrimRight(s.baseURL, "/"), strings.TrimSpace(subject))
		items, err := s.scrapeListingPage(ctx, listURL)
		if err != nil && s.headless {
			items, err = s.fetchListingHeadless(ctx, listURL, 30)
		}
		if err != nil {
			_ = logScrape(ctx, s.db, runID, "error", fmt.Sprintf("classcentral subject %s: %v", subject, err))
			continue
		}
		for _, it := range items {
			it := it
			if strings.TrimSpace(it.Link) == "" {
				continue
			}
			pool.Submit(func(ctx context.Context) error {
				detail, err := s.scrapeDetailPage(ctx, it.Link)
				if err != nil {
					return err
				}
				return upsertCourse(ctx, s.db, runID, courseInput{
					Title:           pickNonEmpty(detail.title, it.Title),
					Provider:        classCentralProvider,
					Description:     detail.description,
					URL:             normalizeURL(it.Link),
					Duration:        detail.duration,
					DifficultyLevel: detail.level,
					Cost:            detail.cost,
					SkillsCovered:   detail.subjects,
					Rating:          detail.rating,
				})
			})
		}
	}

	pool.Close()

	var failed int
	for res := range results {
		if res.Err != nil {
			failed++
			_ = logScrape(ctx, s.db, runID, "error", fmt.Sprintf("classcentral item: %v", res.Err))
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

func (s *ClassCentralScraper) scrapeListingPage(ctx context.Context, listURL string) ([]classCentralListItem, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*" + s.allowedHost + "*", Parallelism: 2, RandomDelay: 750 * time.Millisecond, Delay: 400 * time.Millisecond})

	items := make([]classCentralListItem, 0)

	c.OnHTML("a", func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.Attr("href"))
		if href == "" {
			return
		}
		if !strings.Contains(href, "/course/") {
			return
		}
		abs := e.Request.AbsoluteURL(href)
		if abs == "" {
			return
		}
		items = append(items, classCentralListItem{
			Title: strings.TrimSpace(e.Text),
			Link:  abs,
		})
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(listURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}

	dedup := map[string]struct{}{}
	out := make([]classCentralListItem, 0, len(items))
	for _, it := range items {
		u := normalizeURL(it.Link)
		if u == "" {
			continue
		}
		if _, ok := dedup[u]; ok {
			continue
		}
		dedup[u] = struct{}{}
		out = append(out, classCentralListItem{Title: it.Title, Link: u})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no course urls found")
	}
	return out, nil
}

type classCentralDetail struct {
	title       string
	description string
	duration    string
	level       string
	cost        string
	subjects    []string
	rating      float64
}

func (s *ClassCentralScraper) scrapeDetailPage(ctx context.Context, courseURL string) (classCentralDetail, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*" + s.allowedHost + "*", Parallelism: 2, RandomDelay: 850 * time.Millisecond, Delay: 450 * time.Millisecond})

	var out classCentralDetail
	var reqErr error

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if out.title == "" {
			out.title = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML(`meta[name="description"]`, func(e *colly.HTMLElement) {
		if out.description == "" {
			out.description = strings.TrimSpace(e.Attr("content"))
		}
	})

	c.OnHTML(`[data-field]`, func(e *colly.HTMLElement) {
		val := strings.TrimSpace(e.Text)
		if val == "" {
			return
		}
		switch strings.TrimSpace(e.Attr("data-field")) {
		case "duration":
			out.duration = val
		case "level":
			out.level = val
		case "cost", "pricing":
			out.cost = val
		}
	})

	c.OnHTML(`a[href*="/subject/"]`, func(e *colly.HTMLElement) {
		subj := strings.TrimSpace(e.Text)
		if subj == "" {
			return
		}
		for _, existing := range out.subjects {
			if strings.EqualFold(existing, subj) {
				return
			}
		}
		out.subjects = append(out.subjects, subj)
	})

	c.OnHTML(`[itemprop="ratingValue"]`, func(e *colly.HTMLElement) {
		out.rating = parseRating(pickNonEmpty(e.Attr("content"), e.Text))
	})

	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return classCentralDetail{}, ctx.Err()
	}
	if err := c.Visit(courseURL); err != nil {
		return classCentralDetail{}, err
	}
	c.Wait()
	if reqErr != nil {
		return classCentralDetail{}, reqErr
	}
	return out, nil
}

func parseRating(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	var v float64
	if _, err := fmt.Sscanf(s, "%f", &v); err != nil {
		return 0
	}
	if v < 0 || v > 5 {
		return 0
	}
	return v
}
