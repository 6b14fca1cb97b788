package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// fetchListingHeadless renders the listing in a headless browser and pulls
// course links out of the DOM. Used when the plain crawl sees an empty page
// because the cards are injected client side.
func (s *ClassCentralScraper) fetchListingHeadless(ctx context.Context, listURL string, limit int) ([]classCentralListItem, error) {
	if s == nil {
		return nil, fmt.Errorf("nil scraper")
	}
	if limit <= 0 {
		limit = 30
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 25*time.Second)
	defer reqCancel()

	var hrefs []string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(listURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(`Array.from(document.querySelectorAll('a[href]'))
			.map(a => a.getAttribute('href'))
			.filter(h => h && h.includes('/course/'))`, &hrefs),
	)
	if err != nil {
		return nil, err
	}

	base := strings.TrimRight(s.baseURL, "/")
	seen := map[string]struct{}{}
	out := make([]classCentralListItem, 0, limit)

	for _, h := range hrefs {
		if len(out) >= limit {
			break
		}
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if strings.HasPrefix(h, "/") {
			h = base + h
		} else if !strings.HasPrefix(h, "http://") && !strings.HasPrefix(h, "https://") {
			h = base + "/" + h
		}
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, classCentralListItem{Link: h})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no course urls found (headless)")
	}
	return out, nil
}
