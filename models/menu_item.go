package models

import "time"

// Source tags on a catalog record.
const (
	SourcePOS       = "pos"
	SourceCannmenus = "cannmenus"
	SourceManual    = "manual"
	SourceNone      = "none"
)

// MenuItem is the operational catalog record, keyed by the deterministic
// "{locationId}_{externalId}" document id. Sync writes are merge-upserts built
// as field maps so that fields a POS does not report are left untouched; this
// struct is the read-side shape used by the dashboard endpoints.
type MenuItem struct {
	ID          string  `firestore:"-" json:"id"`
	Name        string  `firestore:"name" json:"name"`
	BrandName   string  `firestore:"brandName,omitempty" json:"brand_name,omitempty"`
	LocationID  string  `firestore:"locationId" json:"location_id"`
	Category    string  `firestore:"category" json:"category"`
	Description string  `firestore:"description,omitempty" json:"description,omitempty"`
	ImageURL    string  `firestore:"imageUrl,omitempty" json:"image_url,omitempty"`
	Price       float64 `firestore:"price" json:"price"`
	Currency    string  `firestore:"currency,omitempty" json:"currency,omitempty"`

	THCPercent *float64 `firestore:"thcPercent,omitempty" json:"thc_percent,omitempty"`
	CBDPercent *float64 `firestore:"cbdPercent,omitempty" json:"cbd_percent,omitempty"`
	THCMg      *float64 `firestore:"thcMg,omitempty" json:"thc_mg,omitempty"`
	CBDMg      *float64 `firestore:"cbdMg,omitempty" json:"cbd_mg,omitempty"`

	Quantity *int `firestore:"quantity,omitempty" json:"quantity,omitempty"`
	InStock  bool `firestore:"inStock" json:"in_stock"`

	// Cost fields are human-editable in the dashboard; a sync only touches
	// them when the POS actually reports them.
	Cost      *float64 `firestore:"cost,omitempty" json:"cost,omitempty"`
	BatchCost *float64 `firestore:"batchCost,omitempty" json:"batch_cost,omitempty"`

	SKU            string `firestore:"sku,omitempty" json:"sku,omitempty"`
	Strain         string `firestore:"strain,omitempty" json:"strain,omitempty"`
	UnitOfMeasure  string `firestore:"unitOfMeasure,omitempty" json:"unit_of_measure,omitempty"`
	OnHand         *int   `firestore:"onHand,omitempty" json:"on_hand,omitempty"`
	PackageDate    string `firestore:"packageDate,omitempty" json:"package_date,omitempty"`
	ExpirationDate string `firestore:"expirationDate,omitempty" json:"expiration_date,omitempty"`
	BatchID        string `firestore:"batchId,omitempty" json:"batch_id,omitempty"`
	BatchStatus    string `firestore:"batchStatus,omitempty" json:"batch_status,omitempty"`
	MetrcTag       string `firestore:"metrcTag,omitempty" json:"metrc_tag,omitempty"`
	AreaName       string `firestore:"areaName,omitempty" json:"area_name,omitempty"`

	Source     string    `firestore:"source" json:"source"`
	ExternalID string    `firestore:"externalId,omitempty" json:"external_id,omitempty"`
	SyncedAt   time.Time `firestore:"syncedAt,omitempty" json:"synced_at,omitempty"`
}
