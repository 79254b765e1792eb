package sync

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"smokey-backend/models"
	"smokey-backend/pos"
)

// Engine runs one POS-to-catalog sync per invocation. It performs no
// internal fan-out: batches commit sequentially, and callers are expected to
// serialize runs per location (the scheduler does one pass per tick).
type Engine struct {
	Repo Repository

	// Connect builds the provider client; tests swap it for a fake.
	Connect func(cfg *models.POSConfig) (pos.Client, error)

	// Now stamps syncedAt fields; tests pin it.
	Now func() time.Time
}

func NewEngine(repo Repository) *Engine {
	return &Engine{
		Repo:    repo,
		Connect: pos.Connect,
		Now:     time.Now,
	}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func fail(provider, message string) models.SyncResult {
	return models.SyncResult{Success: false, Provider: provider, Error: message}
}

// SyncMenu pulls the location's live menu from its POS and makes both
// catalog destinations match it: resolve location, validate config, fetch,
// map, upsert, reconcile stale, report status. Config and adapter failures
// return before any write, so they are always safe to retry; failures after
// the primary upsert began return a "Partially synced" result.
func (e *Engine) SyncMenu(ctx context.Context, locationID, orgID string) (result models.SyncResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Sync panic for location %q: %v", locationID, r)
			result = fail("", fmt.Sprintf("Sync failed unexpectedly: %v", r))
		}
	}()

	locID, loc, err := e.resolveLocation(ctx, locationID, orgID)
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			return fail("", "Location not found")
		}
		return fail("", fmt.Sprintf("Failed to load location: %v", err))
	}

	cfg := loc.POS
	if cfg == nil || cfg.Provider == "" {
		return fail("", "No POS provider configured for this location")
	}

	// The public view is keyed by the location's own organization mapping;
	// the caller's org reference is only a fallback for older location docs.
	org := loc.OrgID
	if org == "" {
		org = orgID
	}

	client, err := e.Connect(cfg)
	if err != nil {
		if errors.Is(err, pos.ErrUnsupportedProvider) {
			return fail(cfg.Provider, fmt.Sprintf("POS provider %q is not supported", cfg.Provider))
		}
		return fail(cfg.Provider, fmt.Sprintf("%s connection failed: %v", pos.DisplayName(cfg.Provider), err))
	}

	items, err := client.FetchMenu(ctx)
	if err != nil {
		return fail(cfg.Provider, fmt.Sprintf("%s Sync Failed: %v", pos.DisplayName(cfg.Provider), err))
	}

	// An empty snapshot means nothing to sync, never "delete everything":
	// a transient partial response must not trigger the reconciler.
	if len(items) == 0 {
		return models.SyncResult{Success: true, Count: 0, Provider: cfg.Provider}
	}

	records := make([]mappedRecord, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		// A malformed item is skipped, not written, but it was still returned
		// by the POS this run, so it must not count as stale below.
		if item.ExternalID != "" {
			seen[item.ExternalID] = true
		}
		docID, fields, err := MapItem(locID, item)
		if err != nil {
			log.Printf("Skipping malformed %s item: %v", cfg.Provider, err)
			continue
		}
		records = append(records, mappedRecord{docID: docID, fields: fields})
	}

	written, err := e.upsertAll(ctx, records, org)
	if err != nil {
		return models.SyncResult{
			Success:  false,
			Count:    written,
			Provider: cfg.Provider,
			Error:    fmt.Sprintf("Partially synced: %d of %d items written: %v", written, len(records), err),
		}
	}

	removed, err := e.reconcileStale(ctx, locID, org, seen)
	if err != nil {
		return models.SyncResult{
			Success:  false,
			Count:    written,
			Removed:  removed,
			Provider: cfg.Provider,
			Error:    fmt.Sprintf("Partially synced: menu updated but stale cleanup stopped after %d removals: %v", removed, err),
		}
	}

	if err := e.reportStatus(ctx, locID, len(items), models.SyncStatusSuccess); err != nil {
		log.Printf("Failed to write sync status for location %s: %v", locID, err)
	}

	log.Printf("Synced %d items for location %s via %s (%d stale removed)", written, locID, cfg.Provider, removed)
	return models.SyncResult{
		Success:  true,
		Count:    written,
		Removed:  removed,
		Provider: cfg.Provider,
	}
}
