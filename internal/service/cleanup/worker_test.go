package cleanup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakePruner struct {
	mu      sync.Mutex
	cutoffs []time.Time
	deleted int64
	err     error
}

func (f *fakePruner) DeleteFinishedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.deleted, f.err
}

func (f *fakePruner) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cutoffs)
}

func TestRunOnceUsesRetentionWindow(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	pruner := &fakePruner{deleted: 4}
	w := NewWorker(pruner, 30*24*time.Hour)
	w.now = func() time.Time { return now }

	assert.Equal(t, int64(4), w.RunOnce(context.Background()))
	if assert.Len(t, pruner.cutoffs, 1) {
		assert.True(t, pruner.cutoffs[0].Equal(now.AddDate(0, 0, -30)))
	}
}

func TestRunOnceDisabled(t *testing.T) {
	pruner := &fakePruner{}
	w := NewWorker(pruner, 0)

	assert.Zero(t, w.RunOnce(context.Background()))
	assert.Zero(t, pruner.calls())
}

func TestRunOnceError(t *testing.T) {
	pruner := &fakePruner{deleted: 9, err: errors.New("boom")}
	w := NewWorker(pruner, time.Hour)

	assert.Zero(t, w.RunOnce(context.Background()))
	assert.Equal(t, 1, pruner.calls())
}

func TestStartRepeatsUntilCancelled(t *testing.T) {
	pruner := &fakePruner{}
	w := NewWorker(pruner, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx, 10*time.Millisecond)

	assert.Eventually(t, func() bool { return pruner.calls() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	time.Sleep(30 * time.Millisecond)
	settled := pruner.calls()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, pruner.calls())
}
