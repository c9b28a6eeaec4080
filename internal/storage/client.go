package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"festhub/pkg/utils"
)

// Client uploads objects to the hosted storage service and derives their
// public URLs. Only payment screenshots and certificate PDFs go through
// it; uploads either fully complete or the dependent record insert never
// happens.
type Client struct {
	BaseURL string
	Bucket  string
	HTTP    *http.Client
}

func NewClient(cfg utils.StorageConfig) *Client {
	return &Client{
		BaseURL: strings.TrimRight(cfg.BaseURL, "/"),
		Bucket:  cfg.Bucket,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload stores the object under the given path and returns its public
// URL.
func (c *Client) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	if c.BaseURL == "" {
		return "", fmt.Errorf("storage not configured (FESTHUB_STORAGE_URL)")
	}

	url := fmt.Sprintf("%s/object/%s/%s", c.BaseURL, c.Bucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("storage: build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage: upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("storage: status %d: %s", resp.StatusCode, string(body))
	}

	return c.PublicURL(path), nil
}

func (c *Client) PublicURL(path string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.BaseURL, c.Bucket, path)
}
