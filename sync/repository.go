package sync

import (
	"context"
	"errors"

	"smokey-backend/models"
)

// Firestore collection paths owned by the engine.
const (
	LocationsCollection = "locations"
	MenuItemsCollection = "menu_items"
)

// ErrNotFound is returned by repository reads for a missing document.
var ErrNotFound = errors.New("document not found")

// WriteOp is one batched write: a merge-upsert when Delete is false, a
// document delete otherwise. The engine chunks ops before committing, so a
// single CommitBatch call never exceeds the store's per-batch limit.
type WriteOp struct {
	Collection string
	DocID      string
	Fields     map[string]any
	Delete     bool
}

// LocationDoc pairs a location document with its id.
type LocationDoc struct {
	ID       string
	Location models.Location
}

// MenuItemRef is the slice of a catalog record the reconciler needs: identity
// plus provenance.
type MenuItemRef struct {
	ID         string
	ExternalID string
	Source     string
}

// Repository is the thin persistence surface the engine runs against. The
// Firestore implementation lives in the firebase package; tests use an
// in-memory fake with the same merge semantics.
type Repository interface {
	GetLocation(ctx context.Context, id string) (*models.Location, error)
	QueryLocationsByField(ctx context.Context, field, value string) ([]LocationDoc, error)
	QueryMenuItems(ctx context.Context, locationID string) ([]MenuItemRef, error)
	CommitBatch(ctx context.Context, ops []WriteOp) error
	UpdateLocation(ctx context.Context, id string, fields map[string]any) error
}

// PublicMenuCollection returns the tenant public-view collection path for an
// organization.
func PublicMenuCollection(orgID string) string {
	return "organizations/" + orgID + "/public_menu"
}
