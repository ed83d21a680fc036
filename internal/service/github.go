package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/devlink-app/devlink/internal/domain"
)

const defaultGithubBaseURL = "https://api.github.com"

// GithubService proxies the repository listing for a profile's GitHub
// handle. Plain unauthenticated pass-through, no caching.
type GithubService struct {
	client  *http.Client
	baseURL string
}

// NewGithubService creates a GithubService. A nil client gets a default
// with a request timeout.
func NewGithubService(client *http.Client) *GithubService {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &GithubService{client: client, baseURL: defaultGithubBaseURL}
}

// NewGithubServiceWithBaseURL is for tests pointing at a stub server.
func NewGithubServiceWithBaseURL(client *http.Client, baseURL string) *GithubService {
	svc := NewGithubService(client)
	svc.baseURL = baseURL
	return svc
}

// GithubRepo is the subset of the upstream repo fields clients render.
type GithubRepo struct {
	Name            string `json:"name"`
	HTMLURL         string `json:"html_url"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
	WatchersCount   int    `json:"watchers_count"`
	ForksCount      int    `json:"forks_count"`
}

// ListRepos returns the user's five most recently created public repos.
// Any upstream failure surfaces as ErrNotFound; the endpoint answers 404
// whether the GitHub account is missing or the call failed.
func (s *GithubService) ListRepos(ctx context.Context, username string) ([]GithubRepo, error) {
	reqURL := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc", s.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "devlink")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call github: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrNotFound
	}

	var repos []GithubRepo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("decode github response: %w", err)
	}
	return repos, nil
}
