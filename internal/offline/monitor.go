package offline

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/glofwatch/glof-alerts/internal/config"
)

// Monitor probes internet reachability and caches the result so dispatch
// code can gate on the flag without re-probing on every send.
type Monitor struct {
	probeURL string
	interval time.Duration
	http     *http.Client
	online   atomic.Bool
}

func NewMonitor(cfg config.ConnectivityConfig) *Monitor {
	m := &Monitor{
		probeURL: cfg.ProbeURL,
		interval: cfg.Interval,
		http: &http.Client{
			Timeout: cfg.ProbeTimeout,
		},
	}
	m.online.Store(true) // assume online until a probe says otherwise
	return m
}

// Online returns the cached connectivity state.
func (m *Monitor) Online() bool {
	return m.online.Load()
}

// Check issues one reachability probe and updates the cached state.
// Any failure, including a non-2xx status, counts as offline.
func (m *Monitor) Check(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.probeURL, nil)
	if err != nil {
		m.online.Store(false)
		return false
	}

	resp, err := m.http.Do(req)
	if err != nil {
		if m.online.Swap(false) {
			slog.Warn("connectivity lost", "probe", m.probeURL, "error", err)
		}
		return false
	}
	resp.Body.Close()

	ok := resp.StatusCode >= 200 && resp.StatusCode <= 299
	was := m.online.Swap(ok)
	if was && !ok {
		slog.Warn("connectivity lost", "probe", m.probeURL, "status", resp.StatusCode)
	} else if !was && ok {
		slog.Info("connectivity restored", "probe", m.probeURL)
	}
	return ok
}

// Run re-probes on a fixed interval until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	slog.Info("starting connectivity monitor", "probe", m.probeURL, "interval", m.interval)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Check(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("connectivity monitor shutting down")
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}
