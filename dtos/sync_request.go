package dtos

// SyncMenuRequest identifies which location to sync. Either field alone is
// enough; the engine resolves the canonical location from whichever is given.
type SyncMenuRequest struct {
	LocationID string `json:"location_id"`
	OrgID      string `json:"org_id"`
}
