package sync

import (
	"fmt"
	"strings"

	"smokey-backend/models"
	"smokey-backend/pos"
)

// stockPhotoDomain serves generic stock photography that some POS systems
// attach as placeholder art. Those URLs must never reach the customer-facing
// public view; only genuine product images pass through.
const stockPhotoDomain = "images.unsplash.com"

// MapItem converts one normalized POS item into the merge-upsert payload for
// the operational catalog. The payload is a field map rather than a struct:
// every optional field contributes a key only when the POS actually reported
// it, so a merge write cannot clobber values an operator entered by hand.
// Items missing a required field return an error and are skipped upstream.
func MapItem(locationID string, item pos.Item) (string, map[string]any, error) {
	if item.Name == "" {
		return "", nil, fmt.Errorf("item %q has no name", item.ExternalID)
	}
	if item.Price == nil {
		return "", nil, fmt.Errorf("item %q (%s) has no price", item.ExternalID, item.Name)
	}

	key, err := NewItemKey(locationID, item.ExternalID)
	if err != nil {
		return "", nil, err
	}

	fields := map[string]any{
		"name":       item.Name,
		"locationId": locationID,
		"category":   NormalizeCategory(item.Category),
		"price":      *item.Price,
		"currency":   "USD",
		"source":     models.SourcePOS,
		"externalId": item.ExternalID,
	}

	if item.Brand != "" {
		fields["brandName"] = item.Brand
	}
	if item.ImageURL != "" {
		fields["imageUrl"] = item.ImageURL
	}
	if item.THCPercent != nil {
		fields["thcPercent"] = *item.THCPercent
	}
	if item.CBDPercent != nil {
		fields["cbdPercent"] = *item.CBDPercent
	}
	if item.THCMg != nil {
		fields["thcMg"] = *item.THCMg
	}
	if item.CBDMg != nil {
		fields["cbdMg"] = *item.CBDMg
	}
	if item.Stock != nil {
		fields["quantity"] = *item.Stock
		fields["inStock"] = *item.Stock > 0
	}
	if item.Cost != nil {
		fields["cost"] = *item.Cost
	}
	if item.BatchCost != nil {
		fields["batchCost"] = *item.BatchCost
	}
	if item.SKU != "" {
		fields["sku"] = item.SKU
	}
	if item.Strain != "" {
		fields["strain"] = item.Strain
	}
	if item.UnitOfMeasure != "" {
		fields["unitOfMeasure"] = item.UnitOfMeasure
	}
	if item.OnHand != nil {
		fields["onHand"] = *item.OnHand
	}
	if item.PackageDate != "" {
		fields["packageDate"] = item.PackageDate
	}
	if item.ExpirationDate != "" {
		fields["expirationDate"] = item.ExpirationDate
	}
	if item.BatchID != "" {
		fields["batchId"] = item.BatchID
	}
	if item.BatchStatus != "" {
		fields["batchStatus"] = item.BatchStatus
	}
	if item.MetrcTag != "" {
		fields["metrcTag"] = item.MetrcTag
	}
	if item.AreaName != "" {
		fields["areaName"] = item.AreaName
	}

	return key.DocID(), fields, nil
}

// publicViewFields is the strict subset of catalog fields exposed to
// customer-facing surfaces.
var publicViewFields = map[string]bool{
	"name":       true,
	"brandName":  true,
	"locationId": true,
	"category":   true,
	"price":      true,
	"currency":   true,
	"thcPercent": true,
	"cbdPercent": true,
	"quantity":   true,
	"inStock":    true,
	"imageUrl":   true,
	"source":     true,
	"externalId": true,
	"syncedAt":   true,
}

// ProjectPublicView derives the tenant public-view payload from an
// operational payload. Stock-photo URLs are blanked here and only here: the
// operational catalog keeps whatever the POS sent.
func ProjectPublicView(fields map[string]any) map[string]any {
	projected := make(map[string]any, len(publicViewFields))
	for k, v := range fields {
		if !publicViewFields[k] {
			continue
		}
		projected[k] = v
	}
	if url, ok := projected["imageUrl"].(string); ok && strings.Contains(url, stockPhotoDomain) {
		projected["imageUrl"] = ""
	}
	return projected
}
