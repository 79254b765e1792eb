package pos

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"smokey-backend/models"
)

// Supported providers.
const (
	ProviderDutchie = "dutchie"
	ProviderTreez   = "treez"
)

// ErrUnsupportedProvider is returned by Connect for a provider this service
// has no adapter for.
var ErrUnsupportedProvider = errors.New("unsupported POS provider")

// Item is the normalized inventory item every adapter returns. ExternalID and
// Name are required; pointer fields distinguish "POS did not report this"
// from a zero value, which the mapper relies on for merge preservation.
type Item struct {
	ExternalID string `json:"externalId"`
	Name       string `json:"name"`
	Brand      string `json:"brand,omitempty"`
	Category   string `json:"category,omitempty"`
	Price      *float64 `json:"price,omitempty"`

	THCPercent *float64 `json:"thcPercent,omitempty"`
	CBDPercent *float64 `json:"cbdPercent,omitempty"`
	THCMg      *float64 `json:"thcMg,omitempty"`
	CBDMg      *float64 `json:"cbdMg,omitempty"`

	Stock    *int   `json:"stock,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`

	Cost           *float64 `json:"cost,omitempty"`
	BatchCost      *float64 `json:"batchCost,omitempty"`
	SKU            string   `json:"sku,omitempty"`
	Strain         string   `json:"strain,omitempty"`
	UnitOfMeasure  string   `json:"unitOfMeasure,omitempty"`
	OnHand         *int     `json:"onHand,omitempty"`
	PackageDate    string   `json:"packageDate,omitempty"`
	ExpirationDate string   `json:"expirationDate,omitempty"`
	BatchID        string   `json:"batchId,omitempty"`
	BatchStatus    string   `json:"batchStatus,omitempty"`
	MetrcTag       string   `json:"metrcTag,omitempty"`
	AreaName       string   `json:"areaName,omitempty"`
}

// Client fetches a point-in-time menu snapshot from one provider.
type Client interface {
	FetchMenu(ctx context.Context) ([]Item, error)
}

var displayNames = map[string]string{
	ProviderDutchie: "Dutchie",
	ProviderTreez:   "Treez",
}

// DisplayName returns the operator-facing provider name used in error
// messages ("Dutchie Sync Failed: ...").
func DisplayName(provider string) string {
	if name, ok := displayNames[provider]; ok {
		return name
	}
	return provider
}

// Connect builds an adapter client from a location's stored POS config.
func Connect(cfg *models.POSConfig) (Client, error) {
	if cfg == nil || cfg.Provider == "" {
		return nil, errors.New("no POS provider configured")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s: missing API key", cfg.Provider)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}

	switch cfg.Provider {
	case ProviderDutchie:
		return NewDutchieClient(cfg.APIKey, cfg.RetailerID, httpClient), nil
	case ProviderTreez:
		return NewTreezClient(cfg.APIKey, cfg.RetailerID, httpClient), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, cfg.Provider)
	}
}
