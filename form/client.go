package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultSubmitError = "Failed to send quote request"

// Client submits collected form data to the quote endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient substitutes the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client for the given base URL, e.g. "https://ticktockplumbing.com".
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:   baseURL + "/api/send-quote",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// submitResponse mirrors the server's response envelope.
type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// SubmitError is returned when the server answers with a failure status.
// It carries the server-provided message so the caller can log it; the
// controller never shows it to the end user.
type SubmitError struct {
	StatusCode int
	Message    string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("quote submission failed (%d): %s", e.StatusCode, e.Message)
}

// SendQuote issues one POST with the collected fields as a JSON body.
// The response body is decoded regardless of HTTP status; a non-success
// status yields a SubmitError carrying the server message or a default.
func (c *Client) SendQuote(ctx context.Context, data map[string]string) (string, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to encode form data: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach quote endpoint: %w", err)
	}
	defer resp.Body.Close()

	var decoded submitResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&decoded); decodeErr != nil && resp.StatusCode < 300 {
		return "", fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	if resp.StatusCode >= 300 {
		message := decoded.Error
		if message == "" {
			message = defaultSubmitError
		}
		return "", &SubmitError{StatusCode: resp.StatusCode, Message: message}
	}

	return decoded.Message, nil
}
