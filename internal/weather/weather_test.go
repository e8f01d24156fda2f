package weather

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glofwatch/glof-alerts/internal/config"
)

func TestCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("lat") != "33.7" || r.URL.Query().Get("lon") != "78.9" {
			t.Errorf("coordinates not forwarded: %s", r.URL.RawQuery)
		}
		if r.URL.Query().Get("appid") != "k" {
			t.Errorf("api key missing from query")
		}
		if r.URL.Query().Get("units") != "metric" {
			t.Errorf("units should be metric")
		}
		w.Write([]byte(`{"main": {"temp": -2.5}}`))
	}))
	defer srv.Close()

	c := NewClient(config.WeatherConfig{APIKey: "k", BaseURL: srv.URL, Timeout: 2 * time.Second})
	payload, err := c.Current(context.Background(), "33.7", "78.9")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}

	var parsed struct {
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
	}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		t.Fatalf("payload not valid JSON: %v", err)
	}
	if parsed.Main.Temp != -2.5 {
		t.Errorf("temp = %v", parsed.Main.Temp)
	}
}

func TestCurrent_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(config.WeatherConfig{APIKey: "k", BaseURL: srv.URL, Timeout: time.Second})
	if _, err := c.Current(context.Background(), "1", "2"); err == nil {
		t.Error("expected error when provider is unreachable")
	}
}
