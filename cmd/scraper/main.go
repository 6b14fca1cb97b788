package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"career-compass/internal/app"
	"career-compass/internal/config"
	"career-compass/internal/database/migration"
	"career-compass/internal/scraper"
	"career-compass/migrations"
)

const scrapeLockTTL = 30 * time.Minute

func main() {
	providers := flag.String("providers", "classcentral,ocw", "comma-separated course providers to crawl")
	subjects := flag.String("subjects", "", "comma-separated subject/topic slugs (provider defaults when empty)")
	workers := flag.Int("workers", 4, "concurrent fetch workers per provider")
	headless := flag.Bool("headless", false, "enable browser fallback for client-rendered listings")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	if err := (migration.Runner{FS: migrations.Files}).Run(migCtx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Minute)
	defer cancel()

	subjectList := splitList(*subjects)

	ran := 0
	for _, provider := range splitList(*providers) {
		lockKey := "scraper:lock:" + provider
		if ok, err := c.Cache.SetIfNotExists(ctx, lockKey, "1", scrapeLockTTL); err == nil && !ok {
			log.Printf("provider %s: another crawl holds the lock, skipping", provider)
			continue
		}

		switch provider {
		case "classcentral":
			s := scraper.NewClassCentralScraper(c.DB, cfg.Scraper.ClassCentralBaseURL).WithHeadlessFallback(*headless)
			if err := s.Scrape(ctx, subjectList, *workers); err != nil {
				log.Printf("classcentral scrape failed: %v", err)
			} else {
				ran++
			}
		case "ocw":
			s := scraper.NewOCWScraper(c.DB, cfg.Scraper.OCWBaseURL)
			if err := s.Scrape(ctx, subjectList, *workers); err != nil {
				log.Printf("ocw scrape failed: %v", err)
			} else {
				ran++
			}
		default:
			log.Printf("unknown provider %q, skipping", provider)
		}

		_ = c.Cache.Delete(ctx, lockKey)
	}

	if ran > 0 {
		// New catalog rows make the cached course listings stale.
		_ = c.Cache.DeleteByPattern(ctx, "catalog:courses:*")
	}
	log.Printf("scrape complete providers_ran=%d", ran)
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
