package youtube

import (
	"context"
	"fmt"
	"io"
	"moviecatalog/catalog/internal/gateway"
	"moviecatalog/pkg/limiter"
	"moviecatalog/pkg/logging"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// DefaultBaseURL is the public video site.
const DefaultBaseURL = "https://www.youtube.com"

// maxPageSize bounds how much of a results page is scanned.
const maxPageSize = 4 << 20

var videoID = regexp.MustCompile(`"videoId":"([A-Za-z0-9_-]{11})"`)

// Gateway defines a trailer lookup over the video site's search results page.
type Gateway struct {
	baseURL string
	client  *http.Client
	limiter *limiter.Limiter
	logger  *zap.Logger
}

// New creates a new trailer gateway. Calls are paced by l.
func New(baseURL string, client *http.Client, l *limiter.Limiter, logger *zap.Logger) *Gateway {
	logger = logger.With(
		zap.String(logging.FieldComponent, "trailer-gateway"),
		zap.String(logging.FieldType, "youtube"),
	)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Gateway{baseURL: strings.TrimRight(baseURL, "/"), client: client, limiter: l, logger: logger}
}

func searchQuery(title string, year int) string {
	q := title
	if year > 0 {
		q += " " + strconv.Itoa(year)
	}
	return q + " trailer"
}

// SearchURL returns a link to the results page for the trailer search.
func (g *Gateway) SearchURL(title string, year int) string {
	return g.baseURL + "/results?search_query=" + url.QueryEscape(searchQuery(title, year))
}

// WatchURL returns the watch link of a video.
func (g *Gateway) WatchURL(id string) string {
	return g.baseURL + "/watch?v=" + id
}

// Find returns the watch link of the first video on the results page, or
// gateway.ErrNotFound when the page lists none.
func (g *Gateway) Find(ctx context.Context, title string, year int) (string, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	u := g.SearchURL(title, year)
	g.logger.Debug("Searching trailer", zap.String("url", u))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("non-2xx status code: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return "", err
	}
	m := videoID.FindSubmatch(body)
	if m == nil {
		return "", gateway.ErrNotFound
	}
	return g.WatchURL(string(m[1])), nil
}
