package offline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glofwatch/glof-alerts/internal/config"
)

func monitorConfig(url string) config.ConnectivityConfig {
	return config.ConnectivityConfig{
		ProbeURL:     url,
		ProbeTimeout: 2 * time.Second,
		Interval:     time.Minute,
	}
}

func TestMonitor_AssumesOnlineByDefault(t *testing.T) {
	m := NewMonitor(monitorConfig("http://example.invalid"))
	if !m.Online() {
		t.Error("monitor should assume online before the first probe")
	}
}

func TestMonitor_CheckOnline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	m := NewMonitor(monitorConfig(srv.URL))
	if !m.Check(context.Background()) {
		t.Error("reachable probe should report online")
	}
	if !m.Online() {
		t.Error("cached state should be online after a successful probe")
	}
}

func TestMonitor_CheckOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	m := NewMonitor(monitorConfig(srv.URL))
	if m.Check(context.Background()) {
		t.Error("unreachable probe should report offline")
	}
	if m.Online() {
		t.Error("cached state should be offline after a failed probe")
	}
}

func TestMonitor_NonSuccessStatusIsOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	m := NewMonitor(monitorConfig(srv.URL))
	if m.Check(context.Background()) {
		t.Error("non-2xx probe should report offline")
	}
}

func TestMonitor_RunStopsOnCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	m := NewMonitor(monitorConfig(srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}
