package reports_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pablolacamera1/ventaspanel/internal/export"
	"github.com/pablolacamera1/ventaspanel/internal/http/reports"
	"github.com/pablolacamera1/ventaspanel/internal/report"
	"github.com/pablolacamera1/ventaspanel/internal/sale"
)

type response struct {
	Filename   string                   `json:"filename"`
	Window     string                   `json:"window"`
	Columns    []string                 `json:"columns"`
	Rows       []json.RawMessage        `json:"rows"`
	Categories []report.CategorySummary `json:"categories"`
	Records    int                      `json:"records"`
}

func testSnapshot() *sale.Snapshot {
	return &sale.Snapshot{
		Sales: []sale.Sale{
			{ID: 1, Date: time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC), ProductID: 1, ProductName: "Notebook", Category: "Electronica", CustomerID: 1, CustomerName: "Maria Garcia", Quantity: 1, UnitPrice: 500, Total: 500, Status: sale.StatusCompleted},
			{ID: 2, Date: time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC), ProductID: 1, ProductName: "Notebook", Category: "Electronica", CustomerID: 1, CustomerName: "Maria Garcia", Quantity: 1, UnitPrice: 500, Total: 500, Status: sale.StatusCompleted},
		},
		Products:  []sale.Product{{ID: 1, Name: "Notebook", Category: "Electronica", Price: 500}},
		Customers: []sale.Customer{{ID: 1, Name: "Maria Garcia", Email: "maria@example.com", City: "Buenos Aires"}},
	}
}

func newServer(t *testing.T, provider sale.Provider) *httptest.Server {
	t.Helper()

	now := func() time.Time { return time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC) }

	r := chi.NewRouter()
	reports.NewHandlerAt(provider, export.NewService(), now).Routes(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	return ts
}

func TestHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := sale.NewMockProvider(ctrl)
	provider.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot(), nil)

	ts := newServer(t, provider)

	resp, err := http.Get(ts.URL + "/sales?period=currentMonth")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.Equal(t, "reporte-sales-2025-03-01-2025-03-31", got.Filename)
	assert.Equal(t, "2025-03-01 - 2025-03-31", got.Window)
	assert.Equal(t, report.TypeSales.Columns(), got.Columns)
	assert.Len(t, got.Rows, 1)
	assert.Equal(t, 1, got.Records)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, report.CategorySummary{Category: "Electronica", CompletedCount: 1, Revenue: 500}, got.Categories[0])
}

func TestHandler_Get_UnknownPeriodFallsBackToCurrentMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := sale.NewMockProvider(ctrl)
	provider.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot(), nil)

	ts := newServer(t, provider)

	resp, err := http.Get(ts.URL + "/sales?period=bogus")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "2025-03-01 - 2025-03-31", got.Window)
}

func TestHandler_Get_TodayCoversTheCalendarDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snap := testSnapshot()
	snap.Sales[0].Date = time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	provider := sale.NewMockProvider(ctrl)
	provider.EXPECT().Snapshot(gomock.Any()).Return(snap, nil)

	ts := newServer(t, provider)

	resp, err := http.Get(ts.URL + "/sales?period=today")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	// The morning sale is inside the day window even though the clock
	// reads evening.
	assert.Equal(t, 1, got.Records)
	assert.Equal(t, "2025-03-15 - 2025-03-15", got.Window)
}

func TestHandler_Get_UnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := sale.NewMockProvider(ctrl)

	ts := newServer(t, provider)

	resp, err := http.Get(ts.URL + "/invoices")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_GetCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := sale.NewMockProvider(ctrl)
	provider.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot(), nil)

	ts := newServer(t, provider)

	resp, err := http.Get(ts.URL + "/customers/csv?period=currentYear")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="reporte-customers-2025-01-01-2025-12-31.csv"`, resp.Header.Get("Content-Disposition"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Customer,Email,City,PurchaseCount,TotalSpend", lines[0])
	assert.Equal(t, "Maria Garcia,maria@example.com,Buenos Aires,2,1000", lines[1])
}
