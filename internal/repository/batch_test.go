package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/ttbcheck/labelverify/constants"
	"github.com/ttbcheck/labelverify/gen/ent"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	client, err := OpenSQLiteInMemory(context.Background(), testLogger())
	if err != nil {
		t.Fatalf("open in-memory database: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// Two workers finishing the last two labels of a batch at the same time must
// still land the batch on completed: neither increment may hide the other's
// from the completion check.
func TestRecordItemOutcomeConcurrentCompletion(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	batches := NewBatchRepository(client, testLogger())
	applicants := NewApplicantRepository(client, testLogger())

	app, err := applicants.GetOrCreateByEmail(ctx, "Ridge Cellars", "submissions@ridgecellars.example", "Ridge Cellars LLC")
	assert.Equal(t, err, nil)

	for i := 0; i < 50; i++ {
		b, err := batches.Create(ctx, &CreateBatchRequest{
			ApplicantID: app.ID,
			Name:        fmt.Sprintf("spring-release-%d", i),
			TotalLabels: 2,
		})
		assert.Equal(t, err, nil)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for j := 0; j < 2; j++ {
			wg.Add(1)
			go func(j int) {
				defer wg.Done()
				errs[j] = batches.RecordItemOutcome(ctx, b.ID)
			}(j)
		}
		wg.Wait()
		for j, err := range errs {
			if err != nil {
				t.Fatalf("round %d worker %d: %v", i, j, err)
			}
		}

		final, err := batches.GetByID(ctx, b.ID)
		assert.Equal(t, err, nil)
		if final.Status != constants.BatchStatusCompleted {
			t.Fatalf("round %d: batch stuck in %q with %d/%d processed",
				i, final.Status, final.ProcessedCount, final.TotalLabels)
		}
		assert.Equal(t, final.ProcessedCount, 2)
	}
}

// Counters on a terminal batch are frozen: late outcomes are ignored, not
// counted past the total.
func TestRecordItemOutcomeFrozenAfterCompletion(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	batches := NewBatchRepository(client, testLogger())
	applicants := NewApplicantRepository(client, testLogger())

	app, err := applicants.GetOrCreateByEmail(ctx, "Ridge Cellars", "submissions@ridgecellars.example", "Ridge Cellars LLC")
	assert.Equal(t, err, nil)

	b, err := batches.Create(ctx, &CreateBatchRequest{
		ApplicantID: app.ID,
		Name:        "single-label",
		TotalLabels: 1,
	})
	assert.Equal(t, err, nil)

	assert.Equal(t, batches.RecordItemOutcome(ctx, b.ID), nil)
	assert.Equal(t, batches.RecordItemOutcome(ctx, b.ID), nil)

	final, err := batches.GetByID(ctx, b.ID)
	assert.Equal(t, err, nil)
	assert.Equal(t, final.Status, constants.BatchStatusCompleted)
	assert.Equal(t, final.ProcessedCount, 1)
}
