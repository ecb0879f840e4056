package batch

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ttbcheck/labelverify/constants"
	"github.com/ttbcheck/labelverify/internal/entity"
)

// SnapshotSource re-reads the aggregate batch record plus its per-label
// status projection. Fetches are idempotent reads.
type SnapshotSource interface {
	Snapshot(ctx context.Context, batchID uuid.UUID) (*entity.BatchSnapshot, error)
}

// Poller re-fetches a batch snapshot on a fixed interval until the batch
// reaches a terminal state. Fetches are strictly sequential: the next tick
// is not consumed until the previous fetch returned.
type Poller struct {
	source   SnapshotSource
	interval time.Duration
	logger   *slog.Logger
	onUpdate func(*entity.BatchSnapshot)
}

type PollerOption func(*Poller)

func WithInterval(d time.Duration) PollerOption {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithUpdateFunc registers a callback invoked after every successful fetch,
// terminal or not, so the consumer can keep displayed counters fresh.
func WithUpdateFunc(f func(*entity.BatchSnapshot)) PollerOption {
	return func(p *Poller) { p.onUpdate = f }
}

func NewPoller(source SnapshotSource, logger *slog.Logger, opts ...PollerOption) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Poller{
		source:   source,
		interval: constants.DefaultPollInterval,
		logger:   logger,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Run polls until the batch is terminal or ctx is cancelled. A failed fetch
// is logged and retried on the next tick. Returns the terminal snapshot, or
// ctx.Err() on cancellation (view teardown), with the ticker stopped either
// way.
func (p *Poller) Run(ctx context.Context, batchID uuid.UUID) (*entity.BatchSnapshot, error) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("batch polling cancelled", "batch_id", batchID)
			return nil, ctx.Err()
		case <-ticker.C:
			snap, err := p.source.Snapshot(ctx, batchID)
			if err != nil {
				p.logger.Warn("batch poll failed; retrying next tick", "batch_id", batchID, "error", err)
				continue
			}
			if p.onUpdate != nil {
				p.onUpdate(snap)
			}
			if snap.Status.IsTerminal() {
				p.logger.Info("batch reached terminal state",
					"batch_id", batchID,
					"status", snap.Status,
					"processed", snap.ProcessedCount,
					"total", snap.TotalLabels,
				)
				return snap, nil
			}
		}
	}
}
