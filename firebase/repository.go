package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"smokey-backend/models"
	"smokey-backend/sync"
)

// Repository is the Firestore implementation of sync.Repository plus the
// read-side queries the dashboard endpoints use.
type Repository struct {
	client *firestore.Client
}

func NewRepository(ctx context.Context) (*Repository, error) {
	if App == nil {
		return nil, fmt.Errorf("firebase app not initialized")
	}
	client, err := App.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	return &Repository{client: client}, nil
}

func (r *Repository) Close() error {
	return r.client.Close()
}

func (r *Repository) GetLocation(ctx context.Context, id string) (*models.Location, error) {
	snap, err := r.client.Collection(sync.LocationsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, sync.ErrNotFound
		}
		return nil, err
	}

	var loc models.Location
	if err := snap.DataTo(&loc); err != nil {
		return nil, fmt.Errorf("malformed location document %s: %w", id, err)
	}
	return &loc, nil
}

func (r *Repository) QueryLocationsByField(ctx context.Context, field, value string) ([]sync.LocationDoc, error) {
	iter := r.client.Collection(sync.LocationsCollection).Where(field, "==", value).Documents(ctx)
	defer iter.Stop()

	var docs []sync.LocationDoc
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var loc models.Location
		if err := snap.DataTo(&loc); err != nil {
			return nil, fmt.Errorf("malformed location document %s: %w", snap.Ref.ID, err)
		}
		docs = append(docs, sync.LocationDoc{ID: snap.Ref.ID, Location: loc})
	}
	return docs, nil
}

func (r *Repository) QueryMenuItems(ctx context.Context, locationID string) ([]sync.MenuItemRef, error) {
	// Reconciliation only needs identity and provenance, not full documents.
	iter := r.client.Collection(sync.MenuItemsCollection).
		Where("locationId", "==", locationID).
		Select("externalId", "source").
		Documents(ctx)
	defer iter.Stop()

	var refs []sync.MenuItemRef
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		data := snap.Data()
		ref := sync.MenuItemRef{ID: snap.Ref.ID}
		if ext, ok := data["externalId"].(string); ok {
			ref.ExternalID = ext
		}
		if src, ok := data["source"].(string); ok {
			ref.Source = src
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (r *Repository) CommitBatch(ctx context.Context, ops []sync.WriteOp) error {
	batch := r.client.Batch()
	for _, op := range ops {
		ref := r.client.Collection(op.Collection).Doc(op.DocID)
		if op.Delete {
			batch.Delete(ref)
		} else {
			batch.Set(ref, op.Fields, firestore.MergeAll)
		}
	}
	_, err := batch.Commit(ctx)
	return err
}

func (r *Repository) UpdateLocation(ctx context.Context, id string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	_, err := r.client.Collection(sync.LocationsCollection).Doc(id).Update(ctx, updates)
	return err
}

// MenuItems returns the full operational catalog for a location, for the
// dashboard read endpoints.
func (r *Repository) MenuItems(ctx context.Context, locationID string) ([]models.MenuItem, error) {
	iter := r.client.Collection(sync.MenuItemsCollection).
		Where("locationId", "==", locationID).
		Documents(ctx)
	defer iter.Stop()

	var items []models.MenuItem
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var item models.MenuItem
		if err := snap.DataTo(&item); err != nil {
			return nil, fmt.Errorf("malformed menu item %s: %w", snap.Ref.ID, err)
		}
		item.ID = snap.Ref.ID
		items = append(items, item)
	}
	return items, nil
}
