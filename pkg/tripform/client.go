package tripform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError carries the message the service returned for a failed request.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Error: %s", e.Message)
}

// Client submits drafts to the trip service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient talks to the service at baseURL. A nil httpClient gets a client
// with a 30 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) Create(ctx context.Context, d *Draft) (*Post, error) {
	if d.Mode != ModeCreate {
		return nil, fmt.Errorf("draft is not a create draft")
	}
	body, contentType, err := d.Encode()
	if err != nil {
		return nil, err
	}

	var post Post
	if err := c.do(ctx, http.MethodPost, "/api/create-post", body, contentType, http.StatusCreated, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) Update(ctx context.Context, d *Draft) (*Post, error) {
	if d.Mode != ModeEdit {
		return nil, fmt.Errorf("draft is not an edit draft")
	}
	body, contentType, err := d.Encode()
	if err != nil {
		return nil, err
	}

	var resp struct {
		Message string `json:"message"`
		Post    Post   `json:"post"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/update-post", body, contentType, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return &resp.Post, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	payload, err := json.Marshal(map[string]string{"id": id})
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/api/delete-post", bytes.NewReader(payload), "application/json", http.StatusOK, nil)
}

func (c *Client) List(ctx context.Context) ([]Post, error) {
	var posts []Post
	if err := c.do(ctx, http.MethodGet, "/api/posts", nil, "", http.StatusOK, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) Get(ctx context.Context, slug string) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodGet, "/api/posts/"+url.PathEscape(slug), nil, "", http.StatusOK, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, want int, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach trip service: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != want {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &msg) == nil && msg.Message != "" {
			apiErr.Message = msg.Message
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
