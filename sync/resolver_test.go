package sync

import (
	"context"
	"errors"
	"testing"

	"smokey-backend/models"
)

func TestResolveLocationByID(t *testing.T) {
	repo := newFakeRepo()
	seedLocation(repo, "loc1", "org1")
	engine := newTestEngine(repo, nil)

	id, loc, err := engine.resolveLocation(context.Background(), "loc1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "loc1" {
		t.Errorf("expected id loc1, got %q", id)
	}
	if loc.OrgID != "org1" {
		t.Errorf("expected org1, got %q", loc.OrgID)
	}
}

func TestResolveLocationByOrgID(t *testing.T) {
	repo := newFakeRepo()
	seedLocation(repo, "loc1", "org1")
	engine := newTestEngine(repo, nil)

	id, _, err := engine.resolveLocation(context.Background(), "", "org1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "loc1" {
		t.Errorf("expected id loc1, got %q", id)
	}
}

func TestResolveLocationByLegacyBrandID(t *testing.T) {
	repo := newFakeRepo()
	repo.locations["loc1"] = models.Location{
		BrandID: "brand1",
		POS:     &models.POSConfig{Provider: "dutchie", APIKey: "key"},
	}
	engine := newTestEngine(repo, nil)

	id, _, err := engine.resolveLocation(context.Background(), "", "brand1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "loc1" {
		t.Errorf("expected id loc1, got %q", id)
	}
}

func TestResolveLocationNotFound(t *testing.T) {
	repo := newFakeRepo()
	engine := newTestEngine(repo, nil)

	_, _, err := engine.resolveLocation(context.Background(), "missing", "")
	if !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("expected ErrLocationNotFound, got %v", err)
	}
}
