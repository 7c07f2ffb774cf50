// Package wikipedia reads page summaries and search results from the
// Wikipedia REST and action APIs.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/topiclog/internal/config"
	"github.com/heartmarshall/topiclog/internal/provider"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// Client is an HTTP client for the knowledge source. It never retries.
type Client struct {
	summaryURL string
	searchURL  string
	userAgent  string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from ResolverConfig. The HTTP client timeout is
// the per-stage timeout.
func NewClient(cfg config.ResolverConfig, logger *slog.Logger) *Client {
	return &Client{
		summaryURL: strings.TrimRight(cfg.SummaryURL, "/"),
		searchURL:  cfg.SearchURL,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.StageTimeout},
		log:        logger.With("adapter", "wikipedia"),
	}
}

// Summary fetches the page summary for title.
// Returns nil, nil if the page does not exist (HTTP 404).
func (c *Client) Summary(ctx context.Context, title string) (*provider.Summary, error) {
	reqURL := c.summaryURL + "/" + url.PathEscape(title)

	c.log.DebugContext(ctx, "wikipedia summary request", slog.String("title", title))

	body, status, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("wikipedia: summary request: %w", err)
	}

	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("wikipedia: summary: unexpected status %d", status)
	}

	var resp summaryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("wikipedia: summary: decode json: %w", err)
	}

	summary := &provider.Summary{
		Title:   resp.Title,
		Extract: resp.Extract,
	}
	if resp.Thumbnail != nil && resp.Thumbnail.Source != "" {
		src := resp.Thumbnail.Source
		summary.Thumbnail = &src
	}
	if resp.OriginalImage != nil && resp.OriginalImage.Source != "" {
		src := resp.OriginalImage.Source
		summary.ImageURL = &src
	}

	c.log.DebugContext(ctx, "wikipedia summary response",
		slog.String("title", title),
		slog.Int("extract_len", len(summary.Extract)),
	)

	return summary, nil
}

// Search returns page titles matching query, best match first.
// Returns an empty slice when nothing matches.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("format", "json")
	params.Set("srlimit", "1")

	c.log.DebugContext(ctx, "wikipedia search request", slog.String("query", query))

	body, status, err := c.get(ctx, c.searchURL+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("wikipedia: search request: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("wikipedia: search: unexpected status %d", status)
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("wikipedia: search: decode json: %w", err)
	}

	titles := []string{}
	if resp.Query != nil {
		for _, hit := range resp.Query.Search {
			if hit.Title != "" {
				titles = append(titles, hit.Title)
			}
		}
	}

	c.log.DebugContext(ctx, "wikipedia search response",
		slog.String("query", query),
		slog.Int("hits", len(titles)),
	)

	return titles, nil
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read body: %w", err)
	}

	return body, resp.StatusCode, nil
}
