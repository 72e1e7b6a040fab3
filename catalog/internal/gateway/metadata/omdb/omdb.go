package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"moviecatalog/catalog/internal/gateway"
	"moviecatalog/catalog/pkg/model"
	"moviecatalog/pkg/limiter"
	"moviecatalog/pkg/logging"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// DefaultBaseURL is the public OMDb endpoint.
const DefaultBaseURL = "https://www.omdbapi.com/"

const notAvailable = "N/A"

// Gateway defines an OMDb-style movie metadata HTTP gateway.
type Gateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *limiter.Limiter
	logger  *zap.Logger
}

// New creates a new metadata gateway. Calls are paced by l.
func New(baseURL, apiKey string, client *http.Client, l *limiter.Limiter, logger *zap.Logger) *Gateway {
	logger = logger.With(
		zap.String(logging.FieldComponent, "metadata-gateway"),
		zap.String(logging.FieldType, "omdb"),
	)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Gateway{baseURL: baseURL, apiKey: apiKey, client: client, limiter: l, logger: logger}
}

// LookupByExternalID gets metadata by an IMDb id such as "tt0114369".
func (g *Gateway) LookupByExternalID(ctx context.Context, id string) (*model.Metadata, error) {
	return g.get(ctx, url.Values{"i": {id}, "plot": {"full"}})
}

// LookupByTitleYear gets metadata by exact title. A zero year matches any year.
func (g *Gateway) LookupByTitleYear(ctx context.Context, title string, year int) (*model.Metadata, error) {
	values := url.Values{"t": {title}, "plot": {"full"}}
	if year > 0 {
		values.Set("y", strconv.Itoa(year))
	}
	return g.get(ctx, values)
}

type response struct {
	Response     string `json:"Response"`
	Error        string `json:"Error"`
	Title        string `json:"Title"`
	Year         string `json:"Year"`
	Genre        string `json:"Genre"`
	ImdbRating   string `json:"imdbRating"`
	Plot         string `json:"Plot"`
	Runtime      string `json:"Runtime"`
	ImdbID       string `json:"imdbID"`
	Director     string `json:"Director"`
	Actors       string `json:"Actors"`
	Type         string `json:"Type"`
	TotalSeasons string `json:"totalSeasons"`
}

func (g *Gateway) get(ctx context.Context, values url.Values) (*model.Metadata, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	g.logger.Debug("Calling metadata provider", zap.String("query", values.Encode()))
	if g.apiKey != "" {
		values.Set("apikey", g.apiKey)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = values.Encode()
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, gateway.ErrNotFound
	} else if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("non-2xx status code: %d", resp.StatusCode)
	}
	var v response
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return nil, err
	}
	if !strings.EqualFold(v.Response, "true") {
		if isNotFound(v.Error) {
			return nil, gateway.ErrNotFound
		}
		return nil, fmt.Errorf("metadata provider error: %s", v.Error)
	}
	return v.metadata(), nil
}

func isNotFound(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "not found") || strings.Contains(msg, "incorrect imdb id")
}

func (v *response) metadata() *model.Metadata {
	m := &model.Metadata{
		Title:    clean(v.Title),
		Genre:    clean(v.Genre),
		Plot:     clean(v.Plot),
		Runtime:  clean(v.Runtime),
		ImdbID:   clean(v.ImdbID),
		Director: clean(v.Director),
	}
	if y, ok := model.FirstInt(v.Year); ok {
		m.Year = model.Int(y)
	}
	if r, err := strconv.ParseFloat(v.ImdbRating, 64); err == nil {
		m.Rating = model.F(r)
	}
	if strings.EqualFold(v.Type, "series") {
		if n, ok := model.FirstInt(v.TotalSeasons); ok && n > 0 {
			m.Runtime = Seasons(n)
		}
	}
	for _, a := range strings.Split(clean(v.Actors), ",") {
		if a = strings.TrimSpace(a); a != "" {
			m.Cast = append(m.Cast, a)
		}
	}
	return m
}

// Seasons formats a season count the way runtimes of shows are stored.
func Seasons(n int) string {
	if n == 1 {
		return "1 Season"
	}
	return fmt.Sprintf("%d Seasons", n)
}

func clean(s string) string {
	s = strings.TrimSpace(s)
	if s == notAvailable {
		return ""
	}
	return s
}
