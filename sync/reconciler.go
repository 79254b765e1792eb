package sync

import (
	"context"
	"log"
)

// reconcileStale enforces the POS as exclusive source of truth for a
// location: every persisted record whose identity was not confirmed by the
// current snapshot is deleted, including records with no POS provenance at
// all (manual entries, aggregator imports). Deletes are batched under the
// same per-batch ceiling as upserts. The returned count is the number of
// records actually removed, which on a mid-sweep failure is less than the
// stale set size.
func (e *Engine) reconcileStale(ctx context.Context, locationID, orgID string, seen map[string]bool) (int, error) {
	refs, err := e.Repo.QueryMenuItems(ctx, locationID)
	if err != nil {
		return 0, err
	}

	var staleIDs []string
	for _, ref := range refs {
		if ref.ExternalID == "" || !seen[ref.ExternalID] {
			staleIDs = append(staleIDs, ref.ID)
		}
	}
	if len(staleIDs) == 0 {
		return 0, nil
	}

	ops := make([]WriteOp, 0, len(staleIDs))
	for _, id := range staleIDs {
		ops = append(ops, WriteOp{Collection: MenuItemsCollection, DocID: id, Delete: true})
	}

	removed, err := e.commitChunked(ctx, ops)
	if err != nil {
		return removed, err
	}

	// The public view mirrors the catalog lifecycle; sweep it too so stale
	// items do not linger on customer-facing surfaces. Best-effort, like the
	// public-view upsert.
	if orgID != "" {
		viewOps := make([]WriteOp, 0, len(staleIDs))
		for _, id := range staleIDs {
			viewOps = append(viewOps, WriteOp{Collection: PublicMenuCollection(orgID), DocID: id, Delete: true})
		}
		if _, err := e.commitChunked(ctx, viewOps); err != nil {
			log.Printf("Public view cleanup failed for org %s: %v", orgID, err)
		}
	}

	return removed, nil
}
