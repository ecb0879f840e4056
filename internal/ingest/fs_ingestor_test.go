package ingest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/google/uuid"

	"github.com/ttbcheck/labelverify/constants"
	"github.com/ttbcheck/labelverify/internal/entity"
	"github.com/ttbcheck/labelverify/internal/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeApplicants struct {
	known uuid.UUID
}

func (f *fakeApplicants) GetByID(_ context.Context, id uuid.UUID) (*entity.Applicant, error) {
	if id != f.known {
		return nil, errors.New("applicant not found")
	}
	return &entity.Applicant{ID: id, Name: "Test", Email: "test@example.com"}, nil
}

func (f *fakeApplicants) GetOrCreateByEmail(context.Context, string, string, string) (*entity.Applicant, error) {
	return nil, errors.New("not used")
}

type fakeBatches struct {
	repository.BatchRepository
	created   *repository.CreateBatchRequest
	outcomes  int
	failedMsg string
}

func (f *fakeBatches) Create(_ context.Context, req *repository.CreateBatchRequest) (*entity.Batch, error) {
	f.created = req
	return &entity.Batch{
		ID:          uuid.New(),
		ApplicantID: req.ApplicantID,
		Name:        req.Name,
		Status:      constants.BatchStatusPending,
		TotalLabels: req.TotalLabels,
		CreatedAt:   time.Now(),
	}, nil
}

func (f *fakeBatches) RecordItemOutcome(context.Context, uuid.UUID) error {
	f.outcomes++
	return nil
}

func (f *fakeBatches) MarkFailed(_ context.Context, _ uuid.UUID, message string) error {
	f.failedMsg = message
	return nil
}

type fakeLabels struct {
	repository.LabelRepository
	created []*repository.CreateLabelRequest
	failOn  string
	failAll bool
}

func (f *fakeLabels) CreatePending(_ context.Context, req *repository.CreateLabelRequest) (*entity.Label, error) {
	if f.failAll {
		return nil, errors.New("boom")
	}
	if f.failOn != "" && filepath.Base(req.ImagePath) == f.failOn {
		return nil, errors.New("boom")
	}
	f.created = append(f.created, req)
	return &entity.Label{
		ID:        uuid.New(),
		BatchID:   req.BatchID,
		ImagePath: req.ImagePath,
		Status:    constants.LabelStatusPending,
	}, nil
}

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestIngestDirectoryRegistersMatchingImages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "front.png")
	writeFile(t, dir, "back.JPG")
	writeFile(t, dir, "notes.txt")
	writeFile(t, dir, ".hidden.png")

	applicants := &fakeApplicants{known: uuid.New()}
	batches := &fakeBatches{}
	labels := &fakeLabels{}
	ing := NewFSIngestor(applicants, batches, labels, testLogger())

	b, results, stats, err := ing.IngestDirectory(context.Background(), applicants.known, dir, "spring-release", true)
	assert.Equal(t, err, nil)
	assert.Equal(t, b.Name, "spring-release")
	assert.Equal(t, batches.created.TotalLabels, 2)
	assert.Equal(t, len(labels.created), 2)
	assert.Equal(t, len(results), 2)
	assert.Equal(t, stats.Matched, uint32(2))
	assert.Equal(t, stats.Succeeded, uint32(2))
	assert.Equal(t, stats.Failed, uint32(0))

	for _, req := range labels.created {
		assert.Equal(t, *req.BatchID, b.ID)
		assert.Equal(t, *req.ApplicantID, applicants.known)
	}
}

func TestIngestDirectoryDefaultsBatchName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "label.jpeg")

	applicants := &fakeApplicants{known: uuid.New()}
	ing := NewFSIngestor(applicants, &fakeBatches{}, &fakeLabels{}, testLogger())

	b, _, _, err := ing.IngestDirectory(context.Background(), applicants.known, dir, "", true)
	assert.Equal(t, err, nil)
	assert.Equal(t, b.Name, filepath.Base(dir))
}

func TestIngestDirectoryCountsLostSlots(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.png")
	writeFile(t, dir, "bad.png")

	applicants := &fakeApplicants{known: uuid.New()}
	batches := &fakeBatches{}
	labels := &fakeLabels{failOn: "bad.png"}
	ing := NewFSIngestor(applicants, batches, labels, testLogger())

	_, results, stats, err := ing.IngestDirectory(context.Background(), applicants.known, dir, "", true)
	assert.Equal(t, err, nil)
	assert.Equal(t, stats.Succeeded, uint32(1))
	assert.Equal(t, stats.Failed, uint32(1))
	// the lost slot is counted as an attempted item so the batch can complete
	assert.Equal(t, batches.outcomes, 1)

	failed := 0
	for _, r := range results {
		if r.Err != "" {
			failed++
		}
	}
	assert.Equal(t, failed, 1)
}

func TestIngestDirectoryFailsBatchWhenNothingRegisters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.png")
	writeFile(t, dir, "two.png")

	applicants := &fakeApplicants{known: uuid.New()}
	batches := &fakeBatches{}
	labels := &fakeLabels{failAll: true}
	ing := NewFSIngestor(applicants, batches, labels, testLogger())

	_, _, stats, err := ing.IngestDirectory(context.Background(), applicants.known, dir, "", true)
	assert.NotEqual(t, err, nil)
	assert.Equal(t, stats.Succeeded, uint32(0))
	assert.Equal(t, stats.Failed, uint32(2))
	// a batch with zero registered labels can never complete; it is failed
	// outright and no empty slots are counted against it
	assert.NotEqual(t, batches.failedMsg, "")
	assert.Equal(t, batches.outcomes, 0)
}

func TestIngestDirectoryRejectsUnknownApplicant(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "label.png")

	ing := NewFSIngestor(&fakeApplicants{known: uuid.New()}, &fakeBatches{}, &fakeLabels{}, testLogger())
	_, _, _, err := ing.IngestDirectory(context.Background(), uuid.New(), dir, "", true)
	assert.NotEqual(t, err, nil)
}

func TestIngestDirectoryEmptyDir(t *testing.T) {
	applicants := &fakeApplicants{known: uuid.New()}
	ing := NewFSIngestor(applicants, &fakeBatches{}, &fakeLabels{}, testLogger())
	_, _, _, err := ing.IngestDirectory(context.Background(), applicants.known, t.TempDir(), "", true)
	assert.NotEqual(t, err, nil)
}
