// Package weather proxies current-conditions lookups to OpenWeather for the
// dashboard.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/glofwatch/glof-alerts/internal/config"
)

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.WeatherConfig) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Current fetches current weather at the given coordinates and returns the
// provider's JSON payload as-is for the dashboard to render.
func (c *Client) Current(ctx context.Context, lat, lon string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("lat", lat)
	q.Set("lon", lon)
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error while doing request: %w", err)
	}
	defer resp.Body.Close()

	var payload json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("error decoding resp.Body: %w", err)
	}
	return payload, nil
}
