package cleanup

import (
	"context"
	"log"
	"time"
)

type ResultPruner interface {
	DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Worker struct {
	Results   ResultPruner
	Retention time.Duration
	now       func() time.Time
}

func NewWorker(results ResultPruner, retention time.Duration) *Worker {
	return &Worker{Results: results, Retention: retention, now: time.Now}
}

// Start runs a cleanup straight away and then every interval until ctx is done
func (w *Worker) Start(ctx context.Context, interval time.Duration) {
	w.RunOnce(ctx)

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.RunOnce(ctx)
			}
		}
	}()
	log.Println("[CLEANUP] Background worker started")
}

// RunOnce deletes stored results that finished before the retention window
func (w *Worker) RunOnce(ctx context.Context) int64 {
	if w.Retention <= 0 {
		return 0
	}

	log.Println("[CLEANUP] Starting scheduled cleanup task...")

	cutoff := w.now().Add(-w.Retention)
	deletedCount, err := w.Results.DeleteFinishedBefore(ctx, cutoff)
	if err != nil {
		log.Printf("[CLEANUP] Error cleaning up game results: %v", err)
		return 0
	}
	if deletedCount > 0 {
		log.Printf("[CLEANUP] Removed %d expired game results from database", deletedCount)
	}
	return deletedCount
}
