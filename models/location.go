package models

import "time"

// POS config status values.
const (
	POSStatusActive   = "active"
	POSStatusInactive = "inactive"
	POSStatusError    = "error"
)

// Last-sync status values written back onto the location.
const (
	SyncStatusSuccess = "success"
	SyncStatusPartial = "partial"
	SyncStatusError   = "error"
)

// Location is one physical dispensary site. It is read by the sync engine and
// mutated only through the status write-back at the end of a run; admin
// configuration happens out of band in the dashboard.
type Location struct {
	Name    string     `firestore:"name,omitempty" json:"name"`
	OrgID   string     `firestore:"orgId,omitempty" json:"org_id,omitempty"`
	BrandID string     `firestore:"brandId,omitempty" json:"brand_id,omitempty"` // legacy field, pre-dates organizations
	Address string     `firestore:"address,omitempty" json:"address,omitempty"`
	POS     *POSConfig `firestore:"posConfig,omitempty" json:"pos_config,omitempty"`
}

// POSConfig holds the point-of-sale connection for a location plus the
// metadata of the last sync run.
type POSConfig struct {
	Provider      string `firestore:"provider" json:"provider"`
	APIKey        string `firestore:"apiKey" json:"-"`
	RetailerID    string `firestore:"retailerId,omitempty" json:"retailer_id,omitempty"`
	SourceOfTruth bool   `firestore:"sourceOfTruth" json:"source_of_truth"`
	Status        string `firestore:"status" json:"status"`

	SyncedAt       time.Time `firestore:"syncedAt,omitempty" json:"synced_at,omitempty"`
	LastSyncStatus string    `firestore:"lastSyncStatus,omitempty" json:"last_sync_status,omitempty"`
	LastSyncCount  int       `firestore:"lastSyncCount" json:"last_sync_count"`
}
