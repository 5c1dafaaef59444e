package radarr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"seedbox-mover/core/reconcile"

	"go.uber.org/zap"
)

// HTTPDoer describes the HTTP client used by APISource.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// movie is the subset of GET /api/v3/movie this package reads.
type movie struct {
	Title      string     `json:"title"`
	Path       string     `json:"path"`
	HasFile    bool       `json:"hasFile"`
	Downloaded bool       `json:"downloaded"`
	MovieFile  *movieFile `json:"movieFile"`
}

type movieFile struct {
	RelativePath string    `json:"relativePath"`
	SceneName    string    `json:"sceneName"`
	Size         int64     `json:"size"`
	DateAdded    time.Time `json:"dateAdded"`
}

// APISource reads the Radarr library over its v3 REST API.
type APISource struct {
	baseURL string
	apiKey  string
	client  HTTPDoer
	logger  *zap.Logger
}

// NewAPISource creates an API-backed media source.
func NewAPISource(cfg Config, logger *zap.Logger) (*APISource, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return NewAPISourceWithClient(cfg, &http.Client{Timeout: time.Duration(timeout) * time.Second}, logger)
}

// NewAPISourceWithClient creates an API-backed media source using client.
func NewAPISourceWithClient(cfg Config, client HTTPDoer, logger *zap.Logger) (*APISource, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	apiKey := strings.TrimSpace(cfg.ApiKey)
	if baseURL == "" {
		return nil, fmt.Errorf("radarr url is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("radarr api key is required")
	}
	return &APISource{baseURL: baseURL, apiKey: apiKey, client: client, logger: logger}, nil
}

// Name implements reconcile.MediaSource.
func (s *APISource) Name() string {
	return "radarr"
}

// ListAll implements reconcile.MediaSource.
func (s *APISource) ListAll(ctx context.Context) (reconcile.MediaIndex, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/v3/movie", nil)
	if err != nil {
		return nil, fmt.Errorf("build radarr request: %w", err)
	}
	req.Header.Set("X-Api-Key", s.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list radarr movies: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("radarr returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var movies []movie
	if err := json.NewDecoder(resp.Body).Decode(&movies); err != nil {
		return nil, fmt.Errorf("decode radarr movies: %w", err)
	}

	index := indexMovies(movies)
	s.logger.Debug("Listed movies", zap.Int("movies", len(movies)), zap.Int("indexed", len(index)))
	return index, nil
}

// indexMovies keys downloaded movies by scene name. Later duplicates replace earlier ones.
func indexMovies(movies []movie) reconcile.MediaIndex {
	index := make(reconcile.MediaIndex, len(movies))
	for _, m := range movies {
		if !(m.HasFile || m.Downloaded) || m.MovieFile == nil || m.MovieFile.SceneName == "" {
			continue
		}
		index[m.MovieFile.SceneName] = reconcile.MediaRecord{
			Name:     m.MovieFile.SceneName,
			Title:    m.Title,
			Filename: m.MovieFile.RelativePath,
			BasePath: m.Path,
			Size:     m.MovieFile.Size,
			Added:    m.MovieFile.DateAdded,
		}
	}
	return index
}
