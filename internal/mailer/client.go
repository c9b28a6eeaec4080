package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"festhub/pkg/utils"
)

// Client posts messages to the transactional-email provider's send
// endpoint (Resend-compatible API).
type Client struct {
	APIKey  string
	BaseURL string
	From    string
	HTTP    *http.Client
}

func NewClient(cfg utils.MailConfig) *Client {
	return &Client{
		APIKey:  cfg.APIKey,
		BaseURL: strings.TrimRight(cfg.BaseURL, "/"),
		From:    cfg.From,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

type sendReq struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

type sendResp struct {
	ID string `json:"id"`
}

// Send delivers one message and returns the provider's email id. A
// missing API key is reported like any other provider failure so the
// handler can surface it in-band.
func (c *Client) Send(ctx context.Context, to, subject, html, text string) (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("FESTHUB_RESEND_API_KEY not configured")
	}

	body, err := json.Marshal(sendReq{
		From:    c.From,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		return "", fmt.Errorf("mailer: marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("mailer: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("mailer: request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("mailer: status %d: %s", resp.StatusCode, string(raw))
	}

	var out sendResp
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("mailer: decode: %w", err)
	}
	return out.ID, nil
}
