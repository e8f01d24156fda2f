// Package sms wraps the Fast2SMS bulk API. One HTTP POST per Send call,
// exactly one attempt; retry and queue decisions belong to the caller.
package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/glofwatch/glof-alerts/internal/config"
)

type Result struct {
	OK     bool
	Detail string
}

type Client struct {
	apiKey   string
	senderID string
	route    string
	baseURL  string
	http     *http.Client
}

func NewClient(cfg config.SMSConfig) *Client {
	return &Client{
		apiKey:   cfg.APIKey,
		senderID: cfg.SenderID,
		route:    cfg.Route,
		baseURL:  cfg.BaseURL,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type bulkResponse struct {
	Return  bool            `json:"return"`
	Message json.RawMessage `json:"message"`
}

// NormalizeNumber strips the +91 country-code prefix, dashes, and spaces
// from a phone number: "+91 98765-43210" becomes "9876543210".
func NormalizeNumber(num string) string {
	num = strings.ReplaceAll(num, "+91", "")
	num = strings.ReplaceAll(num, "-", "")
	num = strings.ReplaceAll(num, " ", "")
	return num
}

// Send posts one bulk SMS to all numbers. Transport errors and non-2xx
// statuses are reported via Result, never returned as errors.
func (c *Client) Send(ctx context.Context, phoneNumbers []string, message string) Result {
	clean := make([]string, 0, len(phoneNumbers))
	for _, num := range phoneNumbers {
		clean = append(clean, NormalizeNumber(num))
	}

	form := url.Values{}
	form.Set("authorization", c.apiKey)
	form.Set("sender_id", c.senderID)
	form.Set("message", message)
	form.Set("language", "english")
	form.Set("route", c.route)
	form.Set("numbers", strings.Join(clean, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Result{OK: false, Detail: fmt.Sprintf("creating request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("authorization", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Error("SMS request failed", "error", err)
		return Result{OK: false, Detail: err.Error()}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Error("SMS provider rejected request", "status", resp.StatusCode, "body", string(body))
		return Result{OK: false, Detail: fmt.Sprintf("unexpected status code: %d - status: %s", resp.StatusCode, resp.Status)}
	}

	var data bulkResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return Result{OK: false, Detail: fmt.Sprintf("decoding response: %v", err)}
	}
	if !data.Return {
		return Result{OK: false, Detail: fmt.Sprintf("provider error: %s", string(data.Message))}
	}

	slog.Info("SMS sent", "recipients", len(clean))
	return Result{OK: true, Detail: string(data.Message)}
}
