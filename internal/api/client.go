package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/teamops-io/personnel-cli/internal/debug"
	perrors "github.com/teamops-io/personnel-cli/pkg/errors"
)

// BasePath is the path prefix all personnel-management endpoints live under.
// Login is the one endpoint mounted outside it.
const BasePath = "/personnel-management"

const userAgent = "TeamOps CLI, v0.0.1"

// Client represents the personnel-management API client
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Config holds the configuration for connecting to the personnel API
type Config struct {
	Address string
	Token   string
	Debug   bool
}

// NewClient creates a new personnel API client with the provided configuration
func NewClient(config *Config) (*Client, error) {
	if config.Address == "" {
		return nil, fmt.Errorf("%w: API address not configured", perrors.ErrConfigurationError)
	}

	// No client-enforced timeout; callers bound requests through context.
	httpClient := &http.Client{}
	if config.Debug {
		httpClient.Transport = &debug.Transport{Base: http.DefaultTransport}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    config.Address,
		token:      config.Token,
	}, nil
}

// Token returns the bearer credential the client attaches to requests.
func (c *Client) Token() string {
	return c.token
}

// SetToken replaces the bearer credential for subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// do issues a request and returns the response status and body. The bearer
// credential is attached uniformly on every call when present. A 401 maps to
// ErrSessionExpired regardless of endpoint.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return resp.StatusCode, body, perrors.ErrSessionExpired
	}

	return resp.StatusCode, body, nil
}

// get issues a GET and fails on non-2xx statuses with the server-provided
// message when one is present.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	status, body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, errorFromBody(status, body)
	}
	return body, nil
}

// write issues a mutating request and returns the server's confirmation
// message. Error envelopes are decoded with `error` preferred over `message`.
func (c *Client) write(ctx context.Context, method, path string, payload interface{}) (string, error) {
	status, body, err := c.do(ctx, method, path, payload)
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", errorFromBody(status, body)
	}

	var ack struct {
		Message string `json:"message"`
	}
	// Some write endpoints answer with an empty body; that still counts as
	// an acknowledgment.
	_ = json.Unmarshal(body, &ack)
	return ack.Message, nil
}
