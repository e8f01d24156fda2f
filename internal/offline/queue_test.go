package offline

import (
	"fmt"
	"sync"
	"testing"

	"go.uber.org/goleak"

	"github.com/glofwatch/glof-alerts/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestQueue_FIFODrain(t *testing.T) {
	q := NewQueue()

	for i := 0; i < 5; i++ {
		q.Enqueue(&models.Alert{ID: fmt.Sprintf("alert_%d", i)})
	}

	if q.Len() != 5 {
		t.Fatalf("Len = %d, want 5", q.Len())
	}

	drained := q.DrainAll()
	if len(drained) != 5 {
		t.Fatalf("drained %d alerts, want 5", len(drained))
	}
	for i, a := range drained {
		if a.ID != fmt.Sprintf("alert_%d", i) {
			t.Errorf("position %d: got %s, want alert_%d", i, a.ID, i)
		}
	}

	if q.Len() != 0 {
		t.Errorf("queue should be empty after drain, Len = %d", q.Len())
	}
	if got := q.DrainAll(); len(got) != 0 {
		t.Errorf("second drain should return nothing, got %d", len(got))
	}
}

func TestQueue_ConcurrentEnqueueDrain(t *testing.T) {
	q := NewQueue()

	const producers = 8
	const perProducer = 50

	var wg sync.WaitGroup
	drained := make(chan []*models.Alert, producers)

	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Enqueue(&models.Alert{ID: fmt.Sprintf("p%d_%d", p, i)})
			}
		}(p)
	}

	// Drain concurrently with the producers.
	wg.Add(1)
	go func() {
		defer wg.Done()
		var all []*models.Alert
		for i := 0; i < 20; i++ {
			all = append(all, q.DrainAll()...)
		}
		drained <- all
	}()

	wg.Wait()

	total := len(<-drained) + len(q.DrainAll())
	if total != producers*perProducer {
		t.Errorf("alerts lost or duplicated: got %d, want %d", total, producers*perProducer)
	}
}
