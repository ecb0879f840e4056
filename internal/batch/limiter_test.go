package batch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func makeIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func TestDrain_BoundedConcurrency(t *testing.T) {
	ids := makeIDs(10)

	var inFlight, maxInFlight atomic.Int32
	var mu sync.Mutex
	seen := make(map[uuid.UUID]int)

	process := func(ctx context.Context, id uuid.UUID) error {
		cur := inFlight.Add(1)
		for {
			prev := maxInFlight.Load()
			if cur <= prev || maxInFlight.CompareAndSwap(prev, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)

		mu.Lock()
		seen[id]++
		mu.Unlock()
		return nil
	}

	l := NewLimiter(testLogger(), WithConcurrency(2))
	res := l.Drain(context.Background(), ids, process)

	if got := maxInFlight.Load(); got > 2 {
		t.Fatalf("max in-flight = %d, want <= 2", got)
	}
	if res.Processed != 10 || res.Failed != 0 {
		t.Fatalf("result = %+v, want 10 processed, 0 failed", res)
	}
	for _, id := range ids {
		if seen[id] != 1 {
			t.Fatalf("label %s processed %d times, want exactly once", id, seen[id])
		}
	}
}

func TestDrain_FailuresDoNotHalt(t *testing.T) {
	ids := makeIDs(10)
	failing := map[uuid.UUID]bool{ids[1]: true, ids[4]: true, ids[7]: true}

	var mu sync.Mutex
	attempts := make(map[uuid.UUID]int)
	failures := make(map[uuid.UUID]int)

	process := func(ctx context.Context, id uuid.UUID) error {
		mu.Lock()
		attempts[id]++
		mu.Unlock()
		if failing[id] {
			mu.Lock()
			failures[id]++
			mu.Unlock()
			return errors.New("analyzer unavailable")
		}
		return nil
	}

	l := NewLimiter(testLogger(), WithConcurrency(2))
	res := l.Drain(context.Background(), ids, process)

	if res.Processed != 7 || res.Failed != 3 {
		t.Fatalf("result = %+v, want 7 processed, 3 failed", res)
	}
	if len(res.FailedIDs) != 3 {
		t.Fatalf("failed IDs = %v, want 3 entries", res.FailedIDs)
	}
	for _, id := range ids {
		if attempts[id] != 1 {
			t.Fatalf("label %s attempted %d times, want exactly once", id, attempts[id])
		}
	}
	for id := range failing {
		if failures[id] != 1 {
			t.Fatalf("label %s failure reported %d times, want exactly once", id, failures[id])
		}
	}
}

func TestDrain_PanicIsAbsorbed(t *testing.T) {
	ids := makeIDs(3)
	process := func(ctx context.Context, id uuid.UUID) error {
		if id == ids[1] {
			panic("analyzer blew up")
		}
		return nil
	}

	l := NewLimiter(testLogger(), WithConcurrency(2))
	res := l.Drain(context.Background(), ids, process)

	if res.Processed != 2 || res.Failed != 1 {
		t.Fatalf("result = %+v, want 2 processed, 1 failed", res)
	}
}

func TestDrain_EmptyQueue(t *testing.T) {
	l := NewLimiter(testLogger())
	res := l.Drain(context.Background(), nil, func(ctx context.Context, id uuid.UUID) error {
		t.Fatal("process should not be called")
		return nil
	})
	if res.Processed != 0 || res.Failed != 0 {
		t.Fatalf("result = %+v, want zero tallies", res)
	}
}
