// Package github fetches a user's public event stream from the GitHub REST
// API and normalizes it into activities.
// Docs: https://docs.github.com/en/rest/activity/events
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/activity"
	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/config"
)

type Client struct {
	baseURL  string
	username string
	token    string
	perPage  int
	client   *http.Client
}

// NewClient builds a GitHub source from configuration. Username and token
// are both required; the events endpoint rejects unauthenticated callers
// after a handful of requests.
func NewClient(cfg config.GitHubConfig) (*Client, error) {
	if strings.TrimSpace(cfg.Username) == "" {
		return nil, errors.New("github: username required")
	}
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, errors.New("github: token required")
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	perPage := cfg.PerPage
	if perPage <= 0 {
		perPage = 30
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: strings.TrimSpace(cfg.Username),
		token:    strings.TrimSpace(cfg.Token),
		perPage:  perPage,
		client:   &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *Client) Name() string { return string(activity.SourceGitHub) }

// Fetch returns the user's recent events, newest first as GitHub serves
// them. Events without a usable timestamp are dropped with a warning.
func (c *Client) Fetch(ctx context.Context) ([]activity.Activity, error) {
	endpoint := fmt.Sprintf("%s/users/%s/events", c.baseURL, url.PathEscape(c.username))
	q := url.Values{"per_page": {strconv.Itoa(c.perPage)}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("github: events status %d", resp.StatusCode)
	}
	var raw []Event
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}
	items := make([]activity.Activity, 0, len(raw))
	for _, e := range raw {
		act, ok := Normalize(e)
		if !ok {
			slog.Warn("github: skipping event without usable timestamp", "id", e.ID, "type", e.Type)
			continue
		}
		items = append(items, act)
	}
	return items, nil
}
