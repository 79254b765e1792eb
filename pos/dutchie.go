package pos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const dutchieEndpoint = "https://plus.dutchie.com/graphql"

const dutchieMenuQuery = `query FilteredProducts($retailerId: ID!) {
  filteredProducts(filter: { retailerId: $retailerId, Status: "Active" }) {
    products {
      id
      name
      brand { name }
      category
      image
      variants { priceRec quantity option }
      potencyThc { formatted }
      potencyCbd { formatted }
      strainType
    }
  }
}`

// DutchieClient fetches a retailer's active menu from the Dutchie Plus
// GraphQL API.
type DutchieClient struct {
	apiKey     string
	retailerID string
	endpoint   string
	http       *http.Client
}

func NewDutchieClient(apiKey, retailerID string, httpClient *http.Client) *DutchieClient {
	return &DutchieClient{
		apiKey:     apiKey,
		retailerID: retailerID,
		endpoint:   dutchieEndpoint,
		http:       httpClient,
	}
}

type dutchieVariant struct {
	PriceRec float64 `json:"priceRec"`
	Quantity int     `json:"quantity"`
	Option   string  `json:"option"`
}

type dutchiePotency struct {
	Formatted float64 `json:"formatted"`
}

type dutchieProduct struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Brand struct {
		Name string `json:"name"`
	} `json:"brand"`
	Category   string           `json:"category"`
	Image      string           `json:"image"`
	Variants   []dutchieVariant `json:"variants"`
	PotencyTHC *dutchiePotency  `json:"potencyThc"`
	PotencyCBD *dutchiePotency  `json:"potencyCbd"`
	StrainType string           `json:"strainType"`
}

type dutchieResponse struct {
	Data struct {
		FilteredProducts struct {
			Products []dutchieProduct `json:"products"`
		} `json:"filteredProducts"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *DutchieClient) FetchMenu(ctx context.Context) ([]Item, error) {
	payload := map[string]any{
		"query": dutchieMenuQuery,
		"variables": map[string]any{
			"retailerId": c.retailerID,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("Invalid credentials")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from Dutchie", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed dutchieResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("malformed Dutchie response: %v", err)
	}
	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("%s", parsed.Errors[0].Message)
	}

	items := make([]Item, 0, len(parsed.Data.FilteredProducts.Products))
	for _, p := range parsed.Data.FilteredProducts.Products {
		item := Item{
			ExternalID: p.ID,
			Name:       p.Name,
			Brand:      p.Brand.Name,
			Category:   p.Category,
			ImageURL:   p.Image,
			Strain:     p.StrainType,
		}
		if len(p.Variants) > 0 {
			v := p.Variants[0]
			price := v.PriceRec
			stock := v.Quantity
			item.Price = &price
			item.Stock = &stock
			item.UnitOfMeasure = v.Option
		}
		if p.PotencyTHC != nil {
			thc := p.PotencyTHC.Formatted
			item.THCPercent = &thc
		}
		if p.PotencyCBD != nil {
			cbd := p.PotencyCBD.Formatted
			item.CBDPercent = &cbd
		}
		items = append(items, item)
	}

	return items, nil
}
