package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smokey-backend/models"
	"smokey-backend/sync"
)

// CatalogReader is the read surface the dashboard endpoints need; the
// Firestore repository implements it.
type CatalogReader interface {
	GetLocation(ctx context.Context, id string) (*models.Location, error)
	MenuItems(ctx context.Context, locationID string) ([]models.MenuItem, error)
}

type MenuHandler struct {
	Repo CatalogReader
}

// GetMenu returns the operational catalog for a location.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	locationID := c.Query("location_id")
	if locationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location_id is required"})
		return
	}

	items, err := h.Repo.MenuItems(c.Request.Context(), locationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// GetSyncStatus returns the last-sync metadata stored on a location.
func (h *MenuHandler) GetSyncStatus(c *gin.Context) {
	id := c.Param("id")

	loc, err := h.Repo.GetLocation(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sync.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch location"})
		return
	}

	if loc.POS == nil {
		c.JSON(http.StatusOK, gin.H{"configured": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"configured":       true,
		"provider":         loc.POS.Provider,
		"status":           loc.POS.Status,
		"synced_at":        loc.POS.SyncedAt,
		"last_sync_status": loc.POS.LastSyncStatus,
		"last_sync_count":  loc.POS.LastSyncCount,
	})
}
