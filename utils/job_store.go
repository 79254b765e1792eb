package utils

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"smokey-backend/dtos"
	"smokey-backend/models"
)

// JobStore tracks background sync jobs in memory.
type JobStore struct {
	jobs map[uuid.UUID]*dtos.SyncJob
	mu   sync.RWMutex
}

// Global job store instance
var Store = &JobStore{
	jobs: make(map[uuid.UUID]*dtos.SyncJob),
}

// CleanupOldJobs removes completed/failed jobs older than 1 hour.
func (js *JobStore) CleanupOldJobs() {
	js.mu.Lock()
	defer js.mu.Unlock()

	cutoff := time.Now().Add(-1 * time.Hour)
	for id, job := range js.jobs {
		if job.CompletedAt != nil && job.CompletedAt.Before(cutoff) {
			delete(js.jobs, id)
		} else if job.StartedAt.Before(cutoff) && (job.Status == dtos.JobStatusCompleted || job.Status == dtos.JobStatusFailed) {
			delete(js.jobs, id)
		}
	}
}

// CreateJob registers a new pending sync job for a location.
func (js *JobStore) CreateJob(locationID, orgID string) *dtos.SyncJob {
	// Clean up old jobs on each new creation
	js.CleanupOldJobs()

	js.mu.Lock()
	defer js.mu.Unlock()

	job := &dtos.SyncJob{
		ID:         uuid.New(),
		Status:     dtos.JobStatusPending,
		LocationID: locationID,
		OrgID:      orgID,
		StartedAt:  time.Now(),
	}

	js.jobs[job.ID] = job
	return job
}

// GetJob retrieves a job by ID.
func (js *JobStore) GetJob(id uuid.UUID) (*dtos.SyncJob, bool) {
	js.mu.RLock()
	defer js.mu.RUnlock()

	job, exists := js.jobs[id]
	return job, exists
}

// SetProcessing marks a job as running.
func (js *JobStore) SetProcessing(id uuid.UUID) {
	js.mu.Lock()
	defer js.mu.Unlock()

	if job, exists := js.jobs[id]; exists {
		job.Status = dtos.JobStatusProcessing
	}
}

// CompleteJob stores the run result and final status.
func (js *JobStore) CompleteJob(id uuid.UUID, result models.SyncResult) {
	js.mu.Lock()
	defer js.mu.Unlock()

	job, exists := js.jobs[id]
	if !exists {
		return
	}

	job.Result = &result
	if result.Success {
		job.Status = dtos.JobStatusCompleted
	} else {
		job.Status = dtos.JobStatusFailed
	}
	now := time.Now()
	job.CompletedAt = &now
}
