package sync

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"smokey-backend/models"
)

// fakeRepo is an in-memory Repository with real merge-upsert semantics, so
// engine tests exercise the same "omit vs null" behavior the store has.
type fakeRepo struct {
	locations   map[string]models.Location
	collections map[string]map[string]map[string]any

	commits []int // op count of every successful commit, in order

	failOnCommitNum      int    // fail the Nth commit (1-based), 0 = never
	failCollectionPrefix string // fail any commit touching this collection
	commitCount          int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		locations:   make(map[string]models.Location),
		collections: make(map[string]map[string]map[string]any),
	}
}

func (f *fakeRepo) docs(collection string) map[string]map[string]any {
	if f.collections[collection] == nil {
		f.collections[collection] = make(map[string]map[string]any)
	}
	return f.collections[collection]
}

// seed places a document directly, bypassing batch accounting.
func (f *fakeRepo) seed(collection, docID string, fields map[string]any) {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	f.docs(collection)[docID] = copied
}

func (f *fakeRepo) GetLocation(_ context.Context, id string) (*models.Location, error) {
	loc, ok := f.locations[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := loc
	return &copied, nil
}

func (f *fakeRepo) QueryLocationsByField(_ context.Context, field, value string) ([]LocationDoc, error) {
	var ids []string
	for id := range f.locations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var docs []LocationDoc
	for _, id := range ids {
		loc := f.locations[id]
		match := false
		switch field {
		case "orgId":
			match = loc.OrgID == value
		case "brandId":
			match = loc.BrandID == value
		case "posConfig.status":
			match = loc.POS != nil && loc.POS.Status == value
		}
		if match {
			docs = append(docs, LocationDoc{ID: id, Location: loc})
		}
	}
	return docs, nil
}

func (f *fakeRepo) QueryMenuItems(_ context.Context, locationID string) ([]MenuItemRef, error) {
	var ids []string
	for id, fields := range f.docs(MenuItemsCollection) {
		if fields["locationId"] == locationID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	var refs []MenuItemRef
	for _, id := range ids {
		fields := f.docs(MenuItemsCollection)[id]
		ref := MenuItemRef{ID: id}
		if ext, ok := fields["externalId"].(string); ok {
			ref.ExternalID = ext
		}
		if src, ok := fields["source"].(string); ok {
			ref.Source = src
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (f *fakeRepo) CommitBatch(_ context.Context, ops []WriteOp) error {
	f.commitCount++
	if len(ops) > maxBatchOps {
		return fmt.Errorf("batch of %d exceeds the %d-op limit", len(ops), maxBatchOps)
	}
	if f.failOnCommitNum > 0 && f.commitCount == f.failOnCommitNum {
		return errors.New("simulated commit failure")
	}
	if f.failCollectionPrefix != "" {
		for _, op := range ops {
			if strings.HasPrefix(op.Collection, f.failCollectionPrefix) {
				return errors.New("simulated commit failure")
			}
		}
	}

	for _, op := range ops {
		docs := f.docs(op.Collection)
		if op.Delete {
			delete(docs, op.DocID)
			continue
		}
		existing, ok := docs[op.DocID]
		if !ok {
			existing = make(map[string]any)
			docs[op.DocID] = existing
		}
		for k, v := range op.Fields {
			existing[k] = v
		}
	}

	f.commits = append(f.commits, len(ops))
	return nil
}

func (f *fakeRepo) UpdateLocation(_ context.Context, id string, fields map[string]any) error {
	loc, ok := f.locations[id]
	if !ok {
		return ErrNotFound
	}
	if loc.POS == nil {
		loc.POS = &models.POSConfig{}
	}
	for path, value := range fields {
		switch path {
		case "posConfig.syncedAt":
			loc.POS.SyncedAt = value.(time.Time)
		case "posConfig.lastSyncStatus":
			loc.POS.LastSyncStatus = value.(string)
		case "posConfig.lastSyncCount":
			loc.POS.LastSyncCount = value.(int)
		default:
			return fmt.Errorf("unexpected update path %q", path)
		}
	}
	f.locations[id] = loc
	return nil
}
