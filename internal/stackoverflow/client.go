// Package stackoverflow fetches a user's questions and answers from the
// Stack Exchange API and normalizes them into activities.
// Docs: https://api.stackexchange.com/docs
package stackoverflow

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
	userID   int64
	key      string
	site     string
	pageSize int
	client   *http.Client
}

// NewClient builds a Stack Overflow source from configuration. UserID is
// required; Key is an optional quota key.
func NewClient(cfg config.StackOverflowConfig) (*Client, error) {
	if cfg.UserID <= 0 {
		return nil, errors.New("stackoverflow: user_id required")
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = "https://api.stackexchange.com"
	}
	site := strings.TrimSpace(cfg.Site)
	if site == "" {
		site = "stackoverflow"
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 30
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		userID:   cfg.UserID,
		key:      strings.TrimSpace(cfg.Key),
		site:     site,
		pageSize: pageSize,
		client:   &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *Client) Name() string { return string(activity.SourceStackOverflow) }

// apiResponse is the Stack Exchange common wrapper.
type apiResponse struct {
	Items          []Post `json:"items"`
	HasMore        bool   `json:"has_more"`
	QuotaRemaining int    `json:"quota_remaining"`
}

// Fetch loads the user's questions and answers concurrently and returns the
// normalized union. Either sub-call failing fails the whole fetch; a half
// view of a user's activity would read as if the other half disappeared.
func (c *Client) Fetch(ctx context.Context) ([]activity.Activity, error) {
	type subResult struct {
		kind  string
		posts []Post
		err   error
	}
	endpoints := []string{"questions", "answers"}
	ch := make(chan subResult, len(endpoints))
	for _, endpoint := range endpoints {
		endpoint := endpoint
		go func() {
			posts, err := c.fetchPosts(ctx, endpoint)
			ch <- subResult{kind: strings.TrimSuffix(endpoint, "s"), posts: posts, err: err}
		}()
	}

	items := make([]activity.Activity, 0, 2*c.pageSize)
	for range endpoints {
		r := <-ch
		if r.err != nil {
			return nil, r.err
		}
		for _, p := range r.posts {
			act, ok := Normalize(c.site, r.kind, p)
			if !ok {
				slog.Warn("stackoverflow: skipping post without creation date", "kind", r.kind, "question_id", p.QuestionID, "answer_id", p.AnswerID)
				continue
			}
			items = append(items, act)
		}
	}
	return items, nil
}

// fetchPosts loads one list endpoint (questions or answers).
func (c *Client) fetchPosts(ctx context.Context, endpoint string) ([]Post, error) {
	path := fmt.Sprintf("%s/2.3/users/%d/%s", c.baseURL, c.userID, url.PathEscape(endpoint))
	q := url.Values{
		"site":     {c.site},
		"order":    {"desc"},
		"sort":     {"creation"},
		"pagesize": {strconv.Itoa(c.pageSize)},
	}
	if c.key != "" {
		q.Set("key", c.key)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("stackoverflow: %s status %d", endpoint, resp.StatusCode)
	}
	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Items, nil
}
