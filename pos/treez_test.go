package pos

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTreezTestClient(t *testing.T, handler http.HandlerFunc) *TreezClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewTreezClient("test-key", "greenshop", server.Client())
	client.baseURL = server.URL
	return client
}

func TestTreezFetchMenu(t *testing.T) {
	client := newTreezTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/greenshop/product/list" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "test-key" {
			t.Errorf("unexpected auth header: %q", got)
		}

		w.Write([]byte(`{"resultCode":"SUCCESS","data":[
			{"product_id":"t-1","sellable_quantity":8,"category_type":"FLOWER","sku":"SKU1",
			 "product_configurable_fields":{"name":"OG Kush","brand":"Treeline","classification":"Indica",
			  "price_sell":40.0,"cost":18.5,"uom":"GRAMS","total_mg_thc":200.0}}
		]}`))
	})

	items, err := client.FetchMenu(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item.ExternalID != "t-1" || item.Name != "OG Kush" {
		t.Errorf("unexpected item: %+v", item)
	}
	if item.Price == nil || *item.Price != 40.0 {
		t.Errorf("unexpected price: %v", item.Price)
	}
	if item.Cost == nil || *item.Cost != 18.5 {
		t.Errorf("unexpected cost: %v", item.Cost)
	}
	if item.Stock == nil || *item.Stock != 8 {
		t.Errorf("unexpected stock: %v", item.Stock)
	}
	if item.THCMg == nil || *item.THCMg != 200.0 {
		t.Errorf("unexpected THC mg: %v", item.THCMg)
	}
	if item.Strain != "Indica" || item.SKU != "SKU1" {
		t.Errorf("unexpected detail fields: %+v", item)
	}
}

func TestTreezFetchMenuFailureResult(t *testing.T) {
	client := newTreezTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"resultCode":"FAILURE","resultDetail":"dispensary not found"}`))
	})

	_, err := client.FetchMenu(context.Background())
	if err == nil || err.Error() != "dispensary not found" {
		t.Errorf("expected result detail surfaced, got %v", err)
	}
}

func TestTreezFetchMenuInvalidCredentials(t *testing.T) {
	client := newTreezTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.FetchMenu(context.Background())
	if err == nil || err.Error() != "Invalid credentials" {
		t.Errorf("expected Invalid credentials, got %v", err)
	}
}
