package sync

import (
	"fmt"
	"strings"
)

// keySeparator joins the two halves of an item's document id. External ids
// are opaque vendor tokens and location ids are Firestore auto-ids; neither
// may contain the separator, and NewItemKey enforces that instead of trusting
// the caller.
const keySeparator = "_"

// ItemKey is the deterministic identity of a catalog record across systems:
// the same (location, external id) pair always yields the same document id in
// both the operational catalog and the tenant public view.
type ItemKey struct {
	LocationID string
	ExternalID string
}

func NewItemKey(locationID, externalID string) (ItemKey, error) {
	if locationID == "" || externalID == "" {
		return ItemKey{}, fmt.Errorf("item key requires both location id and external id")
	}
	if strings.Contains(locationID, keySeparator) {
		return ItemKey{}, fmt.Errorf("location id %q contains reserved separator %q", locationID, keySeparator)
	}
	if strings.Contains(externalID, keySeparator) {
		return ItemKey{}, fmt.Errorf("external id %q contains reserved separator %q", externalID, keySeparator)
	}
	return ItemKey{LocationID: locationID, ExternalID: externalID}, nil
}

// DocID is the stable serialization used as the Firestore document id.
func (k ItemKey) DocID() string {
	return k.LocationID + keySeparator + k.ExternalID
}
