package pos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const treezBaseURL = "https://api.treez.io/v2.0/dispensary"

// TreezClient fetches product and sellable-quantity data from the Treez REST
// API. The retailer id in the POS config is the Treez dispensary short name.
type TreezClient struct {
	apiKey     string
	dispensary string
	baseURL    string
	http       *http.Client
}

func NewTreezClient(apiKey, dispensary string, httpClient *http.Client) *TreezClient {
	return &TreezClient{
		apiKey:     apiKey,
		dispensary: dispensary,
		baseURL:    treezBaseURL,
		http:       httpClient,
	}
}

type treezProduct struct {
	ProductID   string `json:"product_id"`
	SellableQty int    `json:"sellable_quantity"`
	ProductConfigurableFields struct {
		Name        string   `json:"name"`
		Brand       string   `json:"brand"`
		Classification string `json:"classification"`
		SellingPrice *float64 `json:"price_sell"`
		Cost         *float64 `json:"cost"`
		UOM          string   `json:"uom"`
		TotalMgTHC   *float64 `json:"total_mg_thc"`
		TotalMgCBD   *float64 `json:"total_mg_cbd"`
	} `json:"product_configurable_fields"`
	Category string `json:"category_type"`
	SKU      string `json:"sku"`
}

type treezResponse struct {
	ResultCode   string         `json:"resultCode"`
	ResultDetail string         `json:"resultDetail"`
	Data         []treezProduct `json:"data"`
}

func (c *TreezClient) FetchMenu(ctx context.Context) ([]Item, error) {
	url := fmt.Sprintf("%s/%s/product/list", c.baseURL, c.dispensary)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("Invalid credentials")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from Treez", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed treezResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("malformed Treez response: %v", err)
	}
	if parsed.ResultCode != "" && parsed.ResultCode != "SUCCESS" {
		return nil, fmt.Errorf("%s", parsed.ResultDetail)
	}

	items := make([]Item, 0, len(parsed.Data))
	for _, p := range parsed.Data {
		stock := p.SellableQty
		item := Item{
			ExternalID:    p.ProductID,
			Name:          p.ProductConfigurableFields.Name,
			Brand:         p.ProductConfigurableFields.Brand,
			Category:      p.Category,
			Price:         p.ProductConfigurableFields.SellingPrice,
			Cost:          p.ProductConfigurableFields.Cost,
			Stock:         &stock,
			SKU:           p.SKU,
			Strain:        p.ProductConfigurableFields.Classification,
			UnitOfMeasure: p.ProductConfigurableFields.UOM,
			THCMg:         p.ProductConfigurableFields.TotalMgTHC,
			CBDMg:         p.ProductConfigurableFields.TotalMgCBD,
		}
		items = append(items, item)
	}

	return items, nil
}
