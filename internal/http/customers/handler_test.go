package customers_test

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
	"github.com/pablolacamera1/ventaspanel/internal/http/customers"
	"github.com/pablolacamera1/ventaspanel/internal/sale"
)

type listResponse struct {
	Totals    analytics.CustomerTotals `json:"totals"`
	Customers []struct {
		Name          string  `json:"Name"`
		PurchaseCount int     `json:"purchaseCount"`
		TotalSpend    int64   `json:"totalSpend"`
		AverageSpend  float64 `json:"averageSpend"`
		Tier          string  `json:"tier"`
	} `json:"customers"`
}

func testSnapshot() *sale.Snapshot {
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	}

	return &sale.Snapshot{
		Sales: []sale.Sale{
			{ID: 1, Date: day(1), CustomerID: 1, Total: 60000, Status: sale.StatusCompleted},
			{ID: 2, Date: day(2), CustomerID: 1, Total: 20000, Status: sale.StatusCompleted},
			{ID: 3, Date: day(3), CustomerID: 2, Total: 30000, Status: sale.StatusCompleted},
		},
		Customers: []sale.Customer{
			{ID: 1, Name: "Maria Garcia"},
			{ID: 2, Name: "Juan Perez"},
			{ID: 3, Name: "Ana Diaz"},
		},
	}
}

func newServer(t *testing.T, provider sale.Provider) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	customers.NewHandler(provider).Routes(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	return ts
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := sale.NewMockProvider(ctrl)
	provider.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot(), nil)

	ts := newServer(t, provider)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got listResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	// Totals cover the whole base, average over all three customers.
	assert.Equal(t, 3, got.Totals.Customers)
	assert.Equal(t, 3, got.Totals.Purchases)
	assert.Equal(t, int64(110000), got.Totals.Revenue)
	assert.InDelta(t, 110000.0/3, got.Totals.AverageSpend, 0.001)

	// Default ordering is spend descending.
	require.Len(t, got.Customers, 3)
	assert.Equal(t, "Maria Garcia", got.Customers[0].Name)
	assert.Equal(t, "Regular", got.Customers[0].Tier)
	assert.Equal(t, "Juan Perez", got.Customers[1].Name)
	assert.Equal(t, "Ana Diaz", got.Customers[2].Name)
	assert.Equal(t, "New", got.Customers[2].Tier)
}

func TestHandler_List_SortByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := sale.NewMockProvider(ctrl)
	provider.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot(), nil)

	ts := newServer(t, provider)

	resp, err := http.Get(ts.URL + "/?sort=name-asc")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got listResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	require.Len(t, got.Customers, 3)
	assert.Equal(t, "Ana Diaz", got.Customers[0].Name)
	assert.Equal(t, "Juan Perez", got.Customers[1].Name)
	assert.Equal(t, "Maria Garcia", got.Customers[2].Name)
}
