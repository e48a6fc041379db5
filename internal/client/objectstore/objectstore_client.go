package objectstore

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client moves raw bytes to and from object storage through signed
// URLs. The application backend is not involved in these transfers.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		// Large uploads over slow links need far more headroom than an
		// API round trip.
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}
}

// Put uploads body to a signed URL. Any non-2xx response fails the
// whole upload; the caller must not register the attachment.
func (c *Client) Put(signedURL, contentType string, body io.Reader, size int64) error {
	req, err := http.NewRequest(http.MethodPut, signedURL, body)
	if err != nil {
		return fmt.Errorf("build request (storage): %w", err)
	}
	req.ContentLength = size
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload object (storage): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		msg := fmt.Sprintf("storage upload failed with status %d", resp.StatusCode)
		if text := strings.TrimSpace(string(raw)); text != "" {
			msg += ": " + text
		}
		return fmt.Errorf("%s", msg)
	}
	return nil
}

// Get opens a signed download URL. The caller owns the returned body.
func (c *Client) Get(signedURL string) (io.ReadCloser, int64, error) {
	resp, err := c.httpClient.Get(signedURL)
	if err != nil {
		return nil, 0, fmt.Errorf("download object (storage): %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, 0, fmt.Errorf("storage download failed with status %d", resp.StatusCode)
	}
	return resp.Body, resp.ContentLength, nil
}
