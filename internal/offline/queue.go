// Package offline holds alerts that could not be delivered while
// connectivity was down, and tracks the cached online/offline state.
package offline

import (
	"log/slog"
	"sync"

	"github.com/glofwatch/glof-alerts/internal/models"
)

// Queue is a FIFO of undelivered alerts. Enqueue and DrainAll are safe to
// call from concurrent request handlers; DrainAll empties atomically so no
// alert is lost or duplicated when the two overlap.
type Queue struct {
	mu     sync.Mutex
	alerts []*models.Alert
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Enqueue(a *models.Alert) {
	q.mu.Lock()
	q.alerts = append(q.alerts, a)
	q.mu.Unlock()

	slog.Info("alert queued offline", "id", a.ID, "lake", a.GlacialLake)
}

// DrainAll empties the queue and returns its contents in enqueue order.
func (q *Queue) DrainAll() []*models.Alert {
	q.mu.Lock()
	drained := q.alerts
	q.alerts = nil
	q.mu.Unlock()

	return drained
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.alerts)
}
