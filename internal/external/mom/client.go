package mom

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/wonny/fxcip/internal/calendar"
	"github.com/wonny/fxcip/pkg/httputil"
	"github.com/wonny/fxcip/pkg/logger"
	"github.com/wonny/fxcip/pkg/redis"
)

// cacheTTL keeps a fetched holiday page for a week; the published calendar
// changes at most a few times a year.
const cacheTTL = 7 * 24 * time.Hour

// Client fetches Singapore public holidays from the Ministry of Manpower
// website. It feeds the holiday store, never the calculation itself.
// ⭐ SSOT: MOM 휴일 데이터 호출은 이 클라이언트에서만
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	cache      *redis.Cache
	baseURL    string
}

// NewClient creates a new MOM client. The cache may be backed by a
// disabled redis client, in which case every fetch goes to the site.
func NewClient(httpClient *httputil.Client, log *logger.Logger, cache *redis.Cache, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log,
		cache:      cache,
		baseURL:    baseURL,
	}
}

// FetchYear fetches the Singapore public-holiday set for one year.
func (c *Client) FetchYear(ctx context.Context, year int) (calendar.Set, error) {
	set := calendar.Set{Market: calendar.SG, Year: year}
	cacheKey := fmt.Sprintf("holidays:sg:%d", year)

	var cached []string
	if found, err := c.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		dates, err := parseDateList(cached, year)
		if err == nil {
			set.Dates = dates
			c.logger.WithFields(map[string]interface{}{
				"year":  year,
				"count": len(dates),
			}).Debug("Holiday cache hit")
			return set, nil
		}
	}

	html, err := c.fetchHTML(ctx, fmt.Sprintf("/employment-practices/public-holidays?year=%d", year))
	if err != nil {
		return set, err
	}

	dates, err := parseHolidayHTML(html, year)
	if err != nil {
		return set, err
	}
	set.Dates = dates

	var serialized []string
	for _, d := range dates {
		serialized = append(serialized, d.Format("2006-01-02"))
	}
	if err := c.cache.Set(ctx, cacheKey, serialized, cacheTTL); err != nil {
		c.logger.WithError(err).Warn("Holiday cache write failed")
	}

	c.logger.WithFields(map[string]interface{}{
		"year":  year,
		"count": len(dates),
	}).Info("Fetched SG public holidays")
	return set, nil
}

// fetchHTML fetches a page from the MOM site
func (c *Client) fetchHTML(ctx context.Context, path string) (string, error) {
	fullURL := c.baseURL + path

	resp, err := c.httpClient.Get(ctx, fullURL)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}

// parseHolidayHTML parses the MOM public-holidays table. Rows carry the
// date in the first cell ("1 Jan 2026") and the holiday name in another;
// anything that does not parse as a date in the requested year is skipped.
func parseHolidayHTML(html string, year int) ([]time.Time, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse holiday page: %w", err)
	}

	seen := make(map[string]struct{})
	var dates []time.Time

	doc.Find("table tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		dateText := strings.TrimSpace(cells.Eq(0).Text())
		d, err := parseMOMDate(dateText, year)
		if err != nil {
			return
		}

		key := d.Format("2006-01-02")
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		dates = append(dates, d)
	})

	if len(dates) == 0 {
		return nil, fmt.Errorf("no holidays found on page for year %d", year)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

// parseMOMDate parses the MOM date formats ("1 Jan 2026", "1 January 2026").
func parseMOMDate(text string, year int) (time.Time, error) {
	for _, layout := range []string{"2 Jan 2006", "2 January 2006"} {
		if d, err := time.Parse(layout, text); err == nil {
			if d.Year() != year {
				return time.Time{}, fmt.Errorf("date %s outside year %d", text, year)
			}
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", text)
}

func parseDateList(values []string, year int) ([]time.Time, error) {
	var dates []time.Time
	for _, v := range values {
		d, err := time.Parse("2006-01-02", v)
		if err != nil || d.Year() != year {
			return nil, fmt.Errorf("invalid cached date %q", v)
		}
		dates = append(dates, d)
	}
	return dates, nil
}
