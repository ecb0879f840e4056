package batch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ttbcheck/labelverify/constants"
	"github.com/ttbcheck/labelverify/internal/entity"
)

// scriptedSource returns one scripted response per fetch, repeating the last.
type scriptedSource struct {
	mu      sync.Mutex
	script  []func() (*entity.BatchSnapshot, error)
	fetches int
}

func (s *scriptedSource) Snapshot(ctx context.Context, batchID uuid.UUID) (*entity.BatchSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.fetches
	if i >= len(s.script) {
		i = len(s.script) - 1
	}
	s.fetches++
	return s.script[i]()
}

func snapWithStatus(id uuid.UUID, st constants.BatchStatus, processed int) *entity.BatchSnapshot {
	return &entity.BatchSnapshot{
		Batch: entity.Batch{
			ID:             id,
			Status:         st,
			TotalLabels:    5,
			ProcessedCount: processed,
		},
	}
}

func TestPoller_RetriesFailedFetchThenStopsOnTerminal(t *testing.T) {
	batchID := uuid.New()
	source := &scriptedSource{script: []func() (*entity.BatchSnapshot, error){
		func() (*entity.BatchSnapshot, error) { return nil, errors.New("storage flake") },
		func() (*entity.BatchSnapshot, error) {
			return snapWithStatus(batchID, constants.BatchStatusProcessing, 3), nil
		},
		func() (*entity.BatchSnapshot, error) {
			return snapWithStatus(batchID, constants.BatchStatusCompleted, 5), nil
		},
	}}

	var updates int
	p := NewPoller(source, testLogger(),
		WithInterval(5*time.Millisecond),
		WithUpdateFunc(func(*entity.BatchSnapshot) { updates++ }),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	final, err := p.Run(ctx, batchID)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if final.Status != constants.BatchStatusCompleted {
		t.Fatalf("final status = %s, want completed", final.Status)
	}
	if final.ProcessedCount != 5 {
		t.Fatalf("final processed = %d, want 5", final.ProcessedCount)
	}
	// the failed first fetch must not have produced an update
	if updates != 2 {
		t.Fatalf("updates = %d, want 2 (one non-terminal, one terminal)", updates)
	}
	if source.fetches != 3 {
		t.Fatalf("fetches = %d, want 3", source.fetches)
	}
}

func TestPoller_StopsOnCancel(t *testing.T) {
	batchID := uuid.New()
	source := &scriptedSource{script: []func() (*entity.BatchSnapshot, error){
		func() (*entity.BatchSnapshot, error) {
			return snapWithStatus(batchID, constants.BatchStatusProcessing, 0), nil
		},
	}}

	p := NewPoller(source, testLogger(), WithInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(25 * time.Millisecond)
		cancel()
	}()

	snap, err := p.Run(ctx, batchID)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if snap != nil {
		t.Fatalf("snapshot = %+v, want nil on cancellation", snap)
	}
}

func TestPoller_FailedBatchIsTerminal(t *testing.T) {
	batchID := uuid.New()
	source := &scriptedSource{script: []func() (*entity.BatchSnapshot, error){
		func() (*entity.BatchSnapshot, error) {
			return snapWithStatus(batchID, constants.BatchStatusFailed, 2), nil
		},
	}}

	p := NewPoller(source, testLogger(), WithInterval(5*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	final, err := p.Run(ctx, batchID)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if final.Status != constants.BatchStatusFailed {
		t.Fatalf("final status = %s, want failed", final.Status)
	}
}
