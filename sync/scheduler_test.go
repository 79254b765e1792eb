package sync

import (
	"context"
	"testing"

	"smokey-backend/models"
	"smokey-backend/pos"
)

func TestSweepSyncsActiveLocationsOnly(t *testing.T) {
	repo := newFakeRepo()
	seedLocation(repo, "loc1", "org1")
	seedLocation(repo, "loc2", "org2")
	repo.locations["loc3"] = models.Location{
		OrgID: "org3",
		POS: &models.POSConfig{
			Provider: pos.ProviderDutchie,
			APIKey:   "key",
			Status:   models.POSStatusInactive,
		},
	}

	engine := newTestEngine(repo, &fakeClient{items: []pos.Item{posItem("ext1", "Blue Dream 3.5g", 35)}})
	scheduler := NewScheduler(engine, 0)

	scheduler.Sweep(context.Background())

	docs := repo.docs(MenuItemsCollection)
	if _, ok := docs["loc1_ext1"]; !ok {
		t.Error("active location loc1 was not synced")
	}
	if _, ok := docs["loc2_ext1"]; !ok {
		t.Error("active location loc2 was not synced")
	}
	if _, ok := docs["loc3_ext1"]; ok {
		t.Error("inactive location loc3 should not be synced")
	}
}

func TestSweepStopsOnCancelledContext(t *testing.T) {
	repo := newFakeRepo()
	seedLocation(repo, "loc1", "org1")
	engine := newTestEngine(repo, &fakeClient{items: []pos.Item{posItem("ext1", "Blue Dream 3.5g", 35)}})
	scheduler := NewScheduler(engine, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	scheduler.Sweep(ctx)

	if len(repo.docs(MenuItemsCollection)) != 0 {
		t.Error("cancelled sweep should not write")
	}
}
