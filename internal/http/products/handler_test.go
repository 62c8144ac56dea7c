package products_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pablolacamera1/ventaspanel/internal/analytics"
	"github.com/pablolacamera1/ventaspanel/internal/http/products"
	"github.com/pablolacamera1/ventaspanel/internal/sale"
)

type listResponse struct {
	Totals     analytics.ProductTotals `json:"totals"`
	Categories []string                `json:"categories"`
	Products   []struct {
		Name      string `json:"Name"`
		Category  string `json:"Category"`
		UnitsSold int    `json:"unitsSold"`
		Revenue   int64  `json:"revenue"`
	} `json:"products"`
}

func testSnapshot() *sale.Snapshot {
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	}

	return &sale.Snapshot{
		Sales: []sale.Sale{
			{ID: 1, Date: day(1), ProductID: 1, Quantity: 2, Total: 1000, Status: sale.StatusCompleted},
			{ID: 2, Date: day(2), ProductID: 2, Quantity: 1, Total: 100, Status: sale.StatusCompleted},
		},
		Products: []sale.Product{
			{ID: 1, Name: "Notebook", Category: "Electronica", Price: 500},
			{ID: 2, Name: "Silla", Category: "Hogar", Price: 100},
			{ID: 3, Name: "Mouse", Category: "Electronica", Price: 50},
		},
	}
}

func newServer(t *testing.T, provider sale.Provider) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	products.NewHandler(provider).Routes(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	return ts
}

func getList(t *testing.T, url string) listResponse {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got listResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	return got
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := sale.NewMockProvider(ctrl)
	provider.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot(), nil)

	ts := newServer(t, provider)

	got := getList(t, ts.URL+"/")

	assert.Equal(t, analytics.ProductTotals{Products: 3, UnitsSold: 3, Revenue: 1100}, got.Totals)
	assert.Equal(t, []string{"Electronica", "Hogar"}, got.Categories)

	// Default ordering is revenue descending.
	require.Len(t, got.Products, 3)
	assert.Equal(t, "Notebook", got.Products[0].Name)
	assert.Equal(t, int64(1000), got.Products[0].Revenue)
	assert.Equal(t, "Mouse", got.Products[2].Name)
	assert.Equal(t, 0, got.Products[2].UnitsSold)
}

func TestHandler_List_CategoryFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := sale.NewMockProvider(ctrl)
	provider.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot(), nil)

	ts := newServer(t, provider)

	got := getList(t, ts.URL+"/?category=Hogar")

	// Totals follow the filtered view; the category menu stays complete.
	assert.Equal(t, analytics.ProductTotals{Products: 1, UnitsSold: 1, Revenue: 100}, got.Totals)
	assert.Equal(t, []string{"Electronica", "Hogar"}, got.Categories)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "Silla", got.Products[0].Name)
}

func TestHandler_List_CategoryAllPassesEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := sale.NewMockProvider(ctrl)
	provider.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot(), nil)

	ts := newServer(t, provider)

	got := getList(t, ts.URL+"/?category=todas")

	assert.Len(t, got.Products, 3)
}
