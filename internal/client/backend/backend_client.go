package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/TWRT/taskdeck/internal/client"
	"github.com/google/uuid"
)

// Client talks to the TaskDeck REST backend. Every resource call is a
// single HTTP request carrying a bearer token; auth endpoints are the
// exception and send credentials instead.
type Client struct {
	baseUrl    string
	token      string
	tokens     client.TokenSource
	httpClient *http.Client
}

// NewClient builds a backend client. token may be empty, in which case
// each request falls back to the TokenSource (the stored session).
func NewClient(baseUrl, token string, tokens client.TokenSource) *Client {
	return &Client{
		baseUrl:    strings.TrimRight(baseUrl, "/"),
		token:      token,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError is a failure reported by the backend. Message holds the
// server's own error text when the body carried one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func (c *Client) bearerToken() (string, error) {
	if c.token != "" {
		return c.token, nil
	}
	if c.tokens != nil {
		return c.tokens.Token()
	}
	return "", fmt.Errorf("no bearer token configured (backend)")
}

func (c *Client) newRequest(method, path string, reqBody any) (*http.Request, error) {
	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("marshal request body (backend): %w", err)
		}
		body = bytes.NewBuffer(b)
	}

	req, err := http.NewRequest(method, c.baseUrl+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request (backend): %w", err)
	}

	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	return req, nil
}

// do performs one authenticated request. A 204 or empty body resolves
// without touching out; callers pass a nil out when no payload is
// expected.
func (c *Client) do(method, path string, reqBody, out any) error {
	req, err := c.newRequest(method, path, reqBody)
	if err != nil {
		return err
	}

	token, err := c.bearerToken()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s (backend): %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return apiError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body (backend): %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse response (backend): %w", err)
	}
	return nil
}

// apiError normalizes a non-2xx response: prefer the server's JSON
// error field, otherwise synthesize a message from the status and raw
// body.
func apiError(resp *http.Response) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read error body (backend): %w", err)
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return &APIError{Status: resp.StatusCode, Message: body.Error}
	}

	msg := fmt.Sprintf("request failed with status %d", resp.StatusCode)
	if text := strings.TrimSpace(string(raw)); text != "" {
		msg += ": " + text
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
