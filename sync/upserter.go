package sync

import (
	"context"
	"log"
)

// maxBatchOps is Firestore's hard ceiling on operations per committed batch.
const maxBatchOps = 500

// mappedRecord is one catalog record ready to write.
type mappedRecord struct {
	docID  string
	fields map[string]any
}

// commitChunked commits ops in batches of at most maxBatchOps, including the
// trailing partial batch. It returns how many ops were actually committed, so
// a mid-run failure reports the achieved count rather than the intended one.
func (e *Engine) commitChunked(ctx context.Context, ops []WriteOp) (int, error) {
	committed := 0
	for start := 0; start < len(ops); start += maxBatchOps {
		end := start + maxBatchOps
		if end > len(ops) {
			end = len(ops)
		}
		if err := e.Repo.CommitBatch(ctx, ops[start:end]); err != nil {
			return committed, err
		}
		committed += end - start
	}
	return committed, nil
}

// upsertAll merge-upserts the mapped records into the operational catalog
// and, when an organization resolved, into that org's public view. The
// operational write is authoritative and its failure fails the run; the
// public-view write is a best-effort projection whose failure is only logged.
func (e *Engine) upsertAll(ctx context.Context, records []mappedRecord, orgID string) (int, error) {
	now := e.now()

	ops := make([]WriteOp, 0, len(records))
	for _, rec := range records {
		rec.fields["syncedAt"] = now
		ops = append(ops, WriteOp{
			Collection: MenuItemsCollection,
			DocID:      rec.docID,
			Fields:     rec.fields,
		})
	}

	written, err := e.commitChunked(ctx, ops)
	if err != nil {
		return written, err
	}

	if orgID != "" {
		viewOps := make([]WriteOp, 0, len(records))
		for _, rec := range records {
			viewOps = append(viewOps, WriteOp{
				Collection: PublicMenuCollection(orgID),
				DocID:      rec.docID,
				Fields:     ProjectPublicView(rec.fields),
			})
		}
		if _, err := e.commitChunked(ctx, viewOps); err != nil {
			log.Printf("Public view write failed for org %s: %v (operational catalog unaffected)", orgID, err)
		}
	}

	return written, nil
}
