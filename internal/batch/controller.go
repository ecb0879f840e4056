package batch

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/ttbcheck/labelverify/constants"
	"github.com/ttbcheck/labelverify/internal/entity"
)

// State is the view-level lifecycle of a batch being processed.
type State string

const (
	StateIdle       State = "idle"
	StateProcessing State = "processing"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
)

// Controller composes the drain and the poller into the observable lifecycle
// of a batch upload: it starts processing exactly once, polls until the
// batch is terminal, then signals the host to reload authoritative state.
type Controller struct {
	limiter *Limiter
	poller  *Poller
	process ItemFunc
	refresh func()
	logger  *slog.Logger

	started atomic.Bool
	done    chan struct{}

	mu    sync.Mutex
	state State
}

// NewController wires a controller. refresh is invoked exactly once, after
// the poller observes a terminal state; it may be nil.
func NewController(limiter *Limiter, poller *Poller, process ItemFunc, refresh func(), logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		limiter: limiter,
		poller:  poller,
		process: process,
		refresh: refresh,
		logger:  logger,
		done:    make(chan struct{}),
		state:   StateIdle,
	}
}

// Start launches the drain over the snapshot's pending labels and the poller
// over its batch. A second call within the same controller lifetime is a
// no-op returning false: re-triggering would double-submit analysis jobs.
func (c *Controller) Start(ctx context.Context, snap *entity.BatchSnapshot) bool {
	if !c.started.CompareAndSwap(false, true) {
		c.logger.Warn("batch processing already started", "batch_id", snap.ID)
		return false
	}
	c.setState(StateProcessing)

	pending := snap.PendingLabelIDs()
	c.logger.Info("starting batch processing",
		"batch_id", snap.ID,
		"pending", len(pending),
		"total", snap.TotalLabels,
	)

	go func() {
		res := c.limiter.Drain(ctx, pending, c.process)
		// the poller, not the drain, decides when the batch is terminal:
		// storage may not have observed the last outcome yet
		c.logger.Info("batch drain finished",
			"batch_id", snap.ID,
			"processed", res.Processed,
			"failed", res.Failed,
		)
	}()

	go func() {
		defer close(c.done)
		final, err := c.poller.Run(ctx, snap.ID)
		if err != nil {
			c.logger.Warn("polling ended before terminal state", "batch_id", snap.ID, "error", err)
			return
		}
		if final.Status == constants.BatchStatusFailed {
			c.setState(StateFailed)
		} else {
			c.setState(StateCompleted)
		}
		if c.refresh != nil {
			c.refresh()
		}
	}()

	return true
}

// Done is closed once polling has ended, whether terminal or cancelled.
func (c *Controller) Done() <-chan struct{} { return c.done }

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}
