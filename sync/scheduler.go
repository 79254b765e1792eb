package sync

import (
	"context"
	"log"
	"time"

	"smokey-backend/models"
)

// Scheduler periodically re-syncs every location with an active POS
// connection. Locations are processed one at a time within a tick, which is
// what keeps concurrent runs for the same location from interleaving upsert
// and reconcile phases.
type Scheduler struct {
	Engine   *Engine
	Interval time.Duration
}

func NewScheduler(engine *Engine, interval time.Duration) *Scheduler {
	return &Scheduler{Engine: engine, Interval: interval}
}

// Run blocks until ctx is cancelled, sweeping once per interval.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	log.Printf("Menu sync scheduler started (every %s)", s.Interval)
	for {
		select {
		case <-ctx.Done():
			log.Println("Menu sync scheduler stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one sync for every active-POS location, serially.
func (s *Scheduler) Sweep(ctx context.Context) {
	docs, err := s.Engine.Repo.QueryLocationsByField(ctx, "posConfig.status", models.POSStatusActive)
	if err != nil {
		log.Printf("Scheduled sweep: failed to list active locations: %v", err)
		return
	}

	for _, doc := range docs {
		if ctx.Err() != nil {
			return
		}
		res := s.Engine.SyncMenu(ctx, doc.ID, doc.Location.OrgID)
		if !res.Success {
			log.Printf("Scheduled sync failed for location %s: %s", doc.ID, res.Error)
		}
	}
}
