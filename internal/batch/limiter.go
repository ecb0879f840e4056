// Package batch drives a submitted batch of labels to completion: a
// bounded-concurrency drain pushes every pending label through analysis
// while a poller watches the aggregate record until it reaches a terminal
// state.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/ttbcheck/labelverify/constants"
)

// ItemFunc processes one label and signals failure via error. Failures are
// absorbed by the drain; they never abort the remaining items.
type ItemFunc func(ctx context.Context, labelID uuid.UUID) error

// Limiter drains a queue of label IDs through a fixed number of concurrent
// in-flight operations.
type Limiter struct {
	logger      *slog.Logger
	concurrency int
}

type LimiterOption func(*Limiter)

func WithConcurrency(n int) LimiterOption {
	return func(l *Limiter) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

func NewLimiter(logger *slog.Logger, opts ...LimiterOption) *Limiter {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Limiter{
		logger:      logger,
		concurrency: constants.DefaultBatchConcurrency,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// DrainResult tallies a completed drain. Processed + Failed == len(ids).
type DrainResult struct {
	Processed int
	Failed    int
	FailedIDs []uuid.UUID
}

// Drain runs every ID through process with at most the configured number of
// operations in flight, then returns once all have completed. Items start in
// queue order but may complete out of order. A per-item failure (error or
// panic) is logged and tallied; it does not halt the drain.
func (l *Limiter) Drain(ctx context.Context, ids []uuid.UUID, process ItemFunc) DrainResult {
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		res DrainResult
	)
	queue := make(chan uuid.UUID)

	for i := 0; i < l.concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for id := range queue {
				err := l.runOne(ctx, process, id)
				mu.Lock()
				if err != nil {
					res.Failed++
					res.FailedIDs = append(res.FailedIDs, id)
				} else {
					res.Processed++
				}
				mu.Unlock()
				if err != nil {
					l.logger.Error("label processing failed", "worker_id", workerID, "label_id", id, "error", err)
				} else {
					l.logger.Info("label processed", "worker_id", workerID, "label_id", id)
				}
			}
		}(i + 1)
	}

	for _, id := range ids {
		queue <- id
	}
	close(queue)
	wg.Wait()

	return res
}

// runOne isolates a single item so a panic inside process is reported as a
// failure instead of killing the drain.
func (l *Limiter) runOne(ctx context.Context, process ItemFunc, id uuid.UUID) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while processing label: %v", r)
		}
	}()
	return process(ctx, id)
}
