package batch

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ttbcheck/labelverify/constants"
	"github.com/ttbcheck/labelverify/internal/entity"
)

// memBatchStore simulates the persistence side: each processed item bumps
// the counter, and the batch flips to completed once all labels are counted.
type memBatchStore struct {
	mu        sync.Mutex
	id        uuid.UUID
	total     int
	processed int
	labels    []entity.BatchLabel
}

func newMemBatchStore(total int) *memBatchStore {
	s := &memBatchStore{id: uuid.New(), total: total}
	for i := 0; i < total; i++ {
		s.labels = append(s.labels, entity.BatchLabel{
			ID:     uuid.New(),
			Status: constants.LabelStatusPending,
		})
	}
	return s
}

func (s *memBatchStore) markProcessed(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processed++
	for i := range s.labels {
		if s.labels[i].ID == id {
			s.labels[i].Status = constants.LabelStatusPendingReview
		}
	}
}

func (s *memBatchStore) Snapshot(ctx context.Context, batchID uuid.UUID) (*entity.BatchSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := constants.BatchStatusProcessing
	if s.processed >= s.total {
		st = constants.BatchStatusCompleted
	}
	snap := &entity.BatchSnapshot{
		Batch: entity.Batch{
			ID:             s.id,
			Status:         st,
			TotalLabels:    s.total,
			ProcessedCount: s.processed,
		},
	}
	snap.Labels = append(snap.Labels, s.labels...)
	return snap, nil
}

func (s *memBatchStore) initialSnapshot() *entity.BatchSnapshot {
	snap, _ := s.Snapshot(context.Background(), s.id)
	snap.Status = constants.BatchStatusPending
	return snap
}

func TestController_EndToEnd(t *testing.T) {
	store := newMemBatchStore(5)

	process := func(ctx context.Context, id uuid.UUID) error {
		time.Sleep(2 * time.Millisecond)
		store.markProcessed(id)
		return nil
	}

	var refreshes atomic.Int32
	c := NewController(
		NewLimiter(testLogger(), WithConcurrency(2)),
		NewPoller(store, testLogger(), WithInterval(5*time.Millisecond)),
		process,
		func() { refreshes.Add(1) },
		testLogger(),
	)

	if c.State() != StateIdle {
		t.Fatalf("state before start = %s, want idle", c.State())
	}
	if !c.Start(context.Background(), store.initialSnapshot()) {
		t.Fatal("first Start returned false")
	}

	select {
	case <-c.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("controller did not reach terminal state in time")
	}

	if got := c.State(); got != StateCompleted {
		t.Fatalf("state = %s, want completed", got)
	}
	if got := refreshes.Load(); got != 1 {
		t.Fatalf("refresh invoked %d times, want exactly once", got)
	}
	snap, _ := store.Snapshot(context.Background(), store.id)
	if snap.ProcessedCount != 5 {
		t.Fatalf("processed = %d, want 5", snap.ProcessedCount)
	}
}

func TestController_StartIsOneShot(t *testing.T) {
	store := newMemBatchStore(3)

	var launches atomic.Int32
	process := func(ctx context.Context, id uuid.UUID) error {
		launches.Add(1)
		store.markProcessed(id)
		return nil
	}

	c := NewController(
		NewLimiter(testLogger(), WithConcurrency(2)),
		NewPoller(store, testLogger(), WithInterval(5*time.Millisecond)),
		process,
		nil,
		testLogger(),
	)

	snap := store.initialSnapshot()
	if !c.Start(context.Background(), snap) {
		t.Fatal("first Start returned false")
	}
	if c.Start(context.Background(), snap) {
		t.Fatal("second Start returned true, want one-shot guard to reject it")
	}

	select {
	case <-c.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("controller did not finish in time")
	}

	if got := launches.Load(); got != 3 {
		t.Fatalf("items launched %d times, want 3 (no double submission)", got)
	}
}

func TestController_FailedBatchSetsFailedState(t *testing.T) {
	store := newMemBatchStore(2)

	failedSource := snapshotFunc(func(ctx context.Context, batchID uuid.UUID) (*entity.BatchSnapshot, error) {
		return &entity.BatchSnapshot{Batch: entity.Batch{
			ID:     store.id,
			Status: constants.BatchStatusFailed,
		}}, nil
	})

	var refreshes atomic.Int32
	c := NewController(
		NewLimiter(testLogger()),
		NewPoller(failedSource, testLogger(), WithInterval(5*time.Millisecond)),
		func(ctx context.Context, id uuid.UUID) error { return nil },
		func() { refreshes.Add(1) },
		testLogger(),
	)

	c.Start(context.Background(), store.initialSnapshot())

	select {
	case <-c.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("controller did not finish in time")
	}

	if got := c.State(); got != StateFailed {
		t.Fatalf("state = %s, want failed", got)
	}
	if got := refreshes.Load(); got != 1 {
		t.Fatalf("refresh invoked %d times, want exactly once", got)
	}
}

type snapshotFunc func(ctx context.Context, batchID uuid.UUID) (*entity.BatchSnapshot, error)

func (f snapshotFunc) Snapshot(ctx context.Context, batchID uuid.UUID) (*entity.BatchSnapshot, error) {
	return f(ctx, batchID)
}
