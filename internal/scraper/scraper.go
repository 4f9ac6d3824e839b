package scraper

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/mhuber/bvv-alert/internal/config"
	"github.com/mhuber/bvv-alert/internal/tournament"
)

const (
	// BaseURL is the BVV beach tournament listing. The year is appended
	// as a path segment.
	BaseURL   = "https://volleyball.bayern/beach/turniere"
	UserAgent = "bvv-alert/1.0 (github.com/mhuber/bvv-alert)"
	Timeout   = 30 * time.Second

	// classBoxSelector matches one tournament class box on the page.
	// The class label sits in the box's h3, the rows in its tbody.
	classBoxSelector = "div.bvv_rangliste.bvv_ranglistebox"
)

// Scraper fetches and parses the BVV beach tournament page.
type Scraper struct {
	client *http.Client
	url    string
}

// New creates a Scraper for the given year's tournament page.
func New(year int) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: fmt.Sprintf("%s/%d/", BaseURL, year),
	}
}

// URL returns the page URL this scraper fetches.
func (s *Scraper) URL() string {
	return s.url
}

// FetchRows fetches the tournament page and returns the raw rows of all
// tournament classes selected in cfg. A fetch failure is fatal for the
// run: the caller must not touch the stored snapshot.
func (s *Scraper) FetchRows(cfg *config.Config) ([]tournament.RawRow, error) {
	req, err := http.NewRequest("GET", s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return s.parseRows(resp.Body, cfg)
}

// parseRows extracts raw tournament rows from the page HTML.
func (s *Scraper) parseRows(r io.Reader, cfg *config.Config) ([]tournament.RawRow, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	rows := make([]tournament.RawRow, 0)

	doc.Find(classBoxSelector).Each(func(i int, box *goquery.Selection) {
		className := strings.TrimSpace(box.Find("h3").First().Text())
		if !cfg.HasClass(className) {
			return
		}

		box.Find("tbody tr").Each(func(j int, tr *goquery.Selection) {
			cells := tr.Find("td")

			// Cell layout on the BVV page: 0 date, 1 spacer, 2 location,
			// 3 playing style, 4 number of teams.
			if cells.Length() < 5 {
				return
			}

			rows = append(rows, tournament.RawRow{
				Class:         className,
				Date:          cells.Eq(0).Text(),
				Location:      cells.Eq(2).Text(),
				PlayingStyle:  cells.Eq(3).Text(),
				NumberOfTeams: cells.Eq(4).Text(),
			})
		})
	})

	return rows, nil
}
