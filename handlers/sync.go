package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"smokey-backend/dtos"
	"smokey-backend/sync"
	"smokey-backend/utils"
)

type SyncHandler struct {
	Engine *sync.Engine
}

// SyncMenu runs a sync for the caller's location and returns the typed
// result. The result object itself carries success/failure; HTTP status only
// reflects whether the request was well-formed.
func (h *SyncHandler) SyncMenu(c *gin.Context) {
	var req dtos.SyncMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}
	if req.LocationID == "" && req.OrgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location_id or org_id is required"})
		return
	}

	result := h.Engine.SyncMenu(c.Request.Context(), req.LocationID, req.OrgID)
	c.JSON(http.StatusOK, result)
}

// StartSyncJob kicks off a sync in the background and returns a job id the
// caller can poll, for menus too large to sync within a request deadline.
func (h *SyncHandler) StartSyncJob(c *gin.Context) {
	var req dtos.SyncMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}
	if req.LocationID == "" && req.OrgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location_id or org_id is required"})
		return
	}

	job := utils.Store.CreateJob(req.LocationID, req.OrgID)

	go func() {
		utils.Store.SetProcessing(job.ID)
		// Detached from the request context: once started, a run completes or
		// fails outright rather than being aborted partway.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		result := h.Engine.SyncMenu(ctx, req.LocationID, req.OrgID)
		utils.Store.CompleteJob(job.ID, result)
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"job_id": job.ID.String(),
		"status": job.Status,
	})
}

// GetSyncJob returns the status (and result, when finished) of a sync job.
func (h *SyncHandler) GetSyncJob(c *gin.Context) {
	id := c.Param("id")
	jobUUID, err := uuid.Parse(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	job, exists := utils.Store.GetJob(jobUUID)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	c.JSON(http.StatusOK, job)
}
