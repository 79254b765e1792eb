package utils

import (
	"testing"
	"time"

	"smokey-backend/dtos"
	"smokey-backend/models"

	"github.com/google/uuid"
)

func newTestStore() *JobStore {
	return &JobStore{
		jobs: make(map[uuid.UUID]*dtos.SyncJob),
	}
}

func TestCreateJob(t *testing.T) {
	store := newTestStore()
	job := store.CreateJob("loc1", "org1")

	if job == nil {
		t.Fatal("expected job, got nil")
	}
	if job.Status != dtos.JobStatusPending {
		t.Errorf("expected status %q, got %q", dtos.JobStatusPending, job.Status)
	}
	if job.LocationID != "loc1" {
		t.Errorf("expected location loc1, got %q", job.LocationID)
	}
	if job.OrgID != "org1" {
		t.Errorf("expected org org1, got %q", job.OrgID)
	}
	if job.Result != nil {
		t.Error("expected nil result on a fresh job")
	}
	if job.ID == uuid.Nil {
		t.Error("expected non-nil job ID")
	}
}

func TestGetJobExists(t *testing.T) {
	store := newTestStore()
	job := store.CreateJob("loc1", "")

	found, ok := store.GetJob(job.ID)
	if !ok {
		t.Fatal("expected to find job")
	}
	if found.ID != job.ID {
		t.Errorf("expected job ID %s, got %s", job.ID, found.ID)
	}
}

func TestGetJobNotFound(t *testing.T) {
	store := newTestStore()

	if _, ok := store.GetJob(uuid.New()); ok {
		t.Fatal("expected job not found")
	}
}

func TestSetProcessing(t *testing.T) {
	store := newTestStore()
	job := store.CreateJob("loc1", "")

	store.SetProcessing(job.ID)

	found, _ := store.GetJob(job.ID)
	if found.Status != dtos.JobStatusProcessing {
		t.Errorf("expected status %q, got %q", dtos.JobStatusProcessing, found.Status)
	}
}

func TestCompleteJobSuccess(t *testing.T) {
	store := newTestStore()
	job := store.CreateJob("loc1", "")

	store.CompleteJob(job.ID, models.SyncResult{Success: true, Count: 12, Provider: "dutchie"})

	completed, _ := store.GetJob(job.ID)
	if completed.Status != dtos.JobStatusCompleted {
		t.Errorf("expected status %q, got %q", dtos.JobStatusCompleted, completed.Status)
	}
	if completed.Result == nil || completed.Result.Count != 12 {
		t.Errorf("unexpected result: %+v", completed.Result)
	}
	if completed.CompletedAt == nil {
		t.Fatal("expected CompletedAt to be set")
	}
}

func TestCompleteJobFailure(t *testing.T) {
	store := newTestStore()
	job := store.CreateJob("loc1", "")

	store.CompleteJob(job.ID, models.SyncResult{Success: false, Error: "Location not found"})

	failed, _ := store.GetJob(job.ID)
	if failed.Status != dtos.JobStatusFailed {
		t.Errorf("expected status %q, got %q", dtos.JobStatusFailed, failed.Status)
	}
	if failed.Result == nil || failed.Result.Error != "Location not found" {
		t.Errorf("unexpected result: %+v", failed.Result)
	}
}

func TestCleanupOldJobs(t *testing.T) {
	store := newTestStore()
	job := store.CreateJob("loc1", "")

	store.CompleteJob(job.ID, models.SyncResult{Success: true})
	twoHoursAgo := time.Now().Add(-2 * time.Hour)
	store.mu.Lock()
	store.jobs[job.ID].CompletedAt = &twoHoursAgo
	store.mu.Unlock()

	store.CleanupOldJobs()

	if _, ok := store.GetJob(job.ID); ok {
		t.Fatal("expected old completed job to be cleaned up")
	}
}

func TestCleanupKeepsRecentJobs(t *testing.T) {
	store := newTestStore()
	job := store.CreateJob("loc1", "")

	store.CompleteJob(job.ID, models.SyncResult{Success: true})

	store.CleanupOldJobs()

	if _, ok := store.GetJob(job.ID); !ok {
		t.Fatal("expected recent completed job to be kept")
	}
}
