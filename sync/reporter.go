package sync

import "context"

// reportStatus writes the authoritative run summary onto the location's POS
// config. The count is the adapter's own item count, not one derived from
// the local catalog, so operators can see a discrepancy instead of having it
// silently reconciled away.
func (e *Engine) reportStatus(ctx context.Context, locationID string, count int, status string) error {
	return e.Repo.UpdateLocation(ctx, locationID, map[string]any{
		"posConfig.syncedAt":       e.now(),
		"posConfig.lastSyncStatus": status,
		"posConfig.lastSyncCount":  count,
	})
}
