package dtos

import (
	"time"

	"github.com/google/uuid"

	"smokey-backend/models"
)

// SyncJob tracks one background menu sync run.
type SyncJob struct {
	ID          uuid.UUID          `json:"id"`
	Status      string             `json:"status"` // pending, processing, completed, failed
	LocationID  string             `json:"location_id"`
	OrgID       string             `json:"org_id,omitempty"`
	Result      *models.SyncResult `json:"result,omitempty"`
	StartedAt   time.Time          `json:"started_at"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
}

// Job status constants.
const (
	JobStatusPending    = "pending"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)
