// Package github is a minimal issues-API client: exactly the three calls the
// artifact stage needs, nothing else.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.github.com"

type Client struct {
	hc      *http.Client
	baseURL string
	token   string
}

func NewClient(token string) *Client {
	return &Client{
		hc:      &http.Client{Timeout: 30 * time.Second},
		baseURL: defaultBaseURL,
		token:   token,
	}
}

// WithBaseURL points the client at a different API root (GitHub Enterprise,
// test servers).
func (c *Client) WithBaseURL(url string) *Client {
	c.baseURL = strings.TrimRight(url, "/")
	return c
}

type Issue struct {
	Number int    `json:"number"`
	Body   string `json:"body"`
}

type Comment struct {
	ID   int64  `json:"id"`
	Body string `json:"body"`
}

// Issue fetches one issue by number. repo is "owner/name".
func (c *Client) Issue(ctx context.Context, repo string, number int) (Issue, error) {
	var out Issue
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/repos/%s/issues/%d", c.baseURL, repo, number), nil, &out)
	return out, err
}

// ListComments returns up to 100 comments on the issue, oldest first. The
// idempotency marker is expected within that window; the stage posts once
// per trigger.
func (c *Client) ListComments(ctx context.Context, repo string, number int) ([]Comment, error) {
	var out []Comment
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/repos/%s/issues/%d/comments?per_page=100", c.baseURL, repo, number), nil, &out)
	return out, err
}

// CreateComment posts one reply on the issue.
func (c *Client) CreateComment(ctx context.Context, repo string, number int, body string) error {
	payload := map[string]string{"body": body}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("%s/repos/%s/issues/%d/comments", c.baseURL, repo, number), payload, nil)
}

func (c *Client) do(ctx context.Context, method, url string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	req.Header.Set("User-Agent", "jobdigest-artifacts")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("github %s %s: %w", method, url, err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("github %s %s: status %d: %s", method, url, res.StatusCode, snippet)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
