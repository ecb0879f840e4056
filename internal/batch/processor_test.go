package batch

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/ttbcheck/labelverify/constants"
	"github.com/ttbcheck/labelverify/internal/analysis"
	"github.com/ttbcheck/labelverify/internal/entity"
)

type fakeLabelStore struct {
	mu                sync.Mutex
	labels            map[uuid.UUID]*entity.Label
	analyses          map[uuid.UUID]analysis.LabelFields
	failures          map[uuid.UUID]string
	markProcessingErr error
}

func newFakeLabelStore() *fakeLabelStore {
	return &fakeLabelStore{
		labels:   make(map[uuid.UUID]*entity.Label),
		analyses: make(map[uuid.UUID]analysis.LabelFields),
		failures: make(map[uuid.UUID]string),
	}
}

func (s *fakeLabelStore) add(batchID uuid.UUID) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.labels[id] = &entity.Label{
		ID:        id,
		BatchID:   &batchID,
		ImagePath: "/labels/" + id.String() + ".png",
		Status:    constants.LabelStatusPending,
	}
	return id
}

func (s *fakeLabelStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Label, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.labels[id]
	if !ok {
		return nil, errors.New("label not found")
	}
	cp := *l
	return &cp, nil
}

func (s *fakeLabelStore) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.markProcessingErr != nil {
		return s.markProcessingErr
	}
	s.labels[id].Status = constants.LabelStatusProcessing
	return nil
}

func (s *fakeLabelStore) RecordAnalysis(ctx context.Context, id uuid.UUID, fields analysis.LabelFields, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses[id] = fields
	s.labels[id].Status = constants.LabelStatusPendingReview
	return nil
}

func (s *fakeLabelStore) RecordFailure(ctx context.Context, id uuid.UUID, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[id] = message
	s.labels[id].Status = constants.LabelStatusPending
	return nil
}

type countingBatchStore struct {
	mu       sync.Mutex
	outcomes map[uuid.UUID]int
}

func (s *countingBatchStore) RecordItemOutcome(ctx context.Context, batchID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.outcomes == nil {
		s.outcomes = make(map[uuid.UUID]int)
	}
	s.outcomes[batchID]++
	return nil
}

type stubAnalyzer struct {
	fields analysis.LabelFields
	err    error
}

func (a *stubAnalyzer) AnalyzeLabel(ctx context.Context, req analysis.AnalyzeRequest) (analysis.LabelFields, []byte, error) {
	if a.err != nil {
		return analysis.LabelFields{}, nil, a.err
	}
	return a.fields, []byte(`{}`), nil
}

func TestProcessLabel_Success(t *testing.T) {
	labels := newFakeLabelStore()
	batches := &countingBatchStore{}
	batchID := uuid.New()
	labelID := labels.add(batchID)

	p := NewItemProcessor(labels, batches, &stubAnalyzer{fields: analysis.LabelFields{
		BrandName:       "Old Harbor",
		BeverageType:    "Wine",
		ModelConfidence: 0.9,
	}}, testLogger())

	if err := p.ProcessLabel(context.Background(), labelID); err != nil {
		t.Fatalf("ProcessLabel returned error: %v", err)
	}
	if got := labels.analyses[labelID].BrandName; got != "Old Harbor" {
		t.Fatalf("recorded brand = %q, want %q", got, "Old Harbor")
	}
	if labels.labels[labelID].Status != constants.LabelStatusPendingReview {
		t.Fatalf("status = %s, want pending_review", labels.labels[labelID].Status)
	}
	if batches.outcomes[batchID] != 1 {
		t.Fatalf("batch outcomes = %d, want 1", batches.outcomes[batchID])
	}
}

func TestProcessLabel_AnalyzerFailureIsRecorded(t *testing.T) {
	labels := newFakeLabelStore()
	batches := &countingBatchStore{}
	batchID := uuid.New()
	labelID := labels.add(batchID)

	p := NewItemProcessor(labels, batches, &stubAnalyzer{err: errors.New("model timeout")}, testLogger())

	err := p.ProcessLabel(context.Background(), labelID)
	if err == nil {
		t.Fatal("expected failure signal, got nil")
	}
	if msg := labels.failures[labelID]; !strings.Contains(msg, "model timeout") {
		t.Fatalf("recorded failure message = %q, want it to carry the cause", msg)
	}
	// the label stays in a non-terminal status, visible for later attention
	if labels.labels[labelID].Status.IsTerminal() {
		t.Fatalf("status = %s, want non-terminal", labels.labels[labelID].Status)
	}
	// a failed attempt still counts toward batch completion
	if batches.outcomes[batchID] != 1 {
		t.Fatalf("batch outcomes = %d, want 1", batches.outcomes[batchID])
	}
}

func TestProcessLabel_MarkProcessingFailureStillCounts(t *testing.T) {
	labels := newFakeLabelStore()
	labels.markProcessingErr = errors.New("database gone away")
	batches := &countingBatchStore{}
	batchID := uuid.New()
	labelID := labels.add(batchID)

	p := NewItemProcessor(labels, batches, &stubAnalyzer{}, testLogger())

	err := p.ProcessLabel(context.Background(), labelID)
	if err == nil {
		t.Fatal("expected failure signal, got nil")
	}
	// the attempt must count toward completion even when the label never
	// reached the analyzer, otherwise the batch can never finish
	if batches.outcomes[batchID] != 1 {
		t.Fatalf("batch outcomes = %d, want 1", batches.outcomes[batchID])
	}
}

func TestProcessLabel_UnknownLabel(t *testing.T) {
	p := NewItemProcessor(newFakeLabelStore(), &countingBatchStore{}, &stubAnalyzer{}, testLogger())
	if err := p.ProcessLabel(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected error for unknown label")
	}
}
