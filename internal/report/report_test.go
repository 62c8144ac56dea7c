package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablolacamera1/ventaspanel/internal/period"
	"github.com/pablolacamera1/ventaspanel/internal/report"
	"github.com/pablolacamera1/ventaspanel/internal/sale"
)

func testSnapshot() *sale.Snapshot {
	march := func(d int) time.Time {
		return time.Date(2025, 3, d, 10, 0, 0, 0, time.UTC)
	}

	return &sale.Snapshot{
		Sales: []sale.Sale{
			{ID: 1, Date: march(5), ProductID: 1, ProductName: "Notebook", Category: "Electronica", CustomerID: 1, CustomerName: "Maria Garcia", Quantity: 1, UnitPrice: 500, Total: 500, Status: sale.StatusCompleted},
			{ID: 2, Date: march(10), ProductID: 2, ProductName: "Silla", Category: "Hogar", CustomerID: 2, CustomerName: "Juan Perez", Quantity: 2, UnitPrice: 100, Total: 200, Status: sale.StatusCompleted},
			{ID: 3, Date: march(12), ProductID: 1, ProductName: "Notebook", Category: "Electronica", CustomerID: 1, CustomerName: "Maria Garcia", Quantity: 1, UnitPrice: 500, Total: 500, Status: sale.StatusPending},
			{ID: 4, Date: time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC), ProductID: 2, ProductName: "Silla", Category: "Hogar", CustomerID: 2, CustomerName: "Juan Perez", Quantity: 1, UnitPrice: 100, Total: 100, Status: sale.StatusCompleted},
		},
		Products: []sale.Product{
			{ID: 1, Name: "Notebook", Category: "Electronica", Price: 500},
			{ID: 2, Name: "Silla", Category: "Hogar", Price: 100},
		},
		Customers: []sale.Customer{
			{ID: 1, Name: "Maria Garcia", Email: "maria@example.com", City: "Buenos Aires"},
			{ID: 2, Name: "Juan Perez", Email: "juan@example.com", City: "Cordoba"},
			{ID: 3, Name: "Ana Diaz", Email: "ana@example.com", City: "Rosario"},
		},
	}
}

func TestParseType(t *testing.T) {
	for _, token := range []string{"sales", "products", "customers"} {
		got, err := report.ParseType(token)
		require.NoError(t, err)
		assert.Equal(t, report.Type(token), got)
	}

	_, err := report.ParseType("invoices")
	assert.ErrorIs(t, err, report.ErrUnknownType)
}

func TestTypeColumns(t *testing.T) {
	assert.Equal(t,
		[]string{"ID", "Date", "Product", "Category", "Customer", "Quantity", "UnitPrice", "Total", "Status"},
		report.TypeSales.Columns())
	assert.Equal(t,
		[]string{"Product", "Category", "Price", "UnitsSold", "Revenue"},
		report.TypeProducts.Columns())
	assert.Equal(t,
		[]string{"Customer", "Email", "City", "PurchaseCount", "TotalSpend"},
		report.TypeCustomers.Columns())
}

func TestBuild_SalesReport(t *testing.T) {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	r := report.Build(testSnapshot(), report.TypeSales, period.CurrentMonth, now)

	// March sales only, every status, one row each.
	require.Len(t, r.Rows, 3)
	assert.Equal(t, 3, r.Records)

	first := r.Rows[0]
	assert.Equal(t, report.Field{Label: "ID", Value: 1}, first[0])
	assert.Equal(t, report.Field{Label: "Date", Value: "2025-03-05"}, first[1])
	assert.Equal(t, report.Field{Label: "Status", Value: "Completed"}, first[8])

	// Category digest covers completed in-window sales, revenue desc.
	require.Len(t, r.Categories, 2)
	assert.Equal(t, report.CategorySummary{Category: "Electronica", CompletedCount: 1, Revenue: 500}, r.Categories[0])
	assert.Equal(t, report.CategorySummary{Category: "Hogar", CompletedCount: 1, Revenue: 200}, r.Categories[1])

	assert.Equal(t, int64(700), r.KPIs.TotalRevenue)
	assert.Equal(t, 2, r.KPIs.CompletedCount)
}

func TestBuild_ProductsReport(t *testing.T) {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	r := report.Build(testSnapshot(), report.TypeProducts, period.CurrentMonth, now)

	// One row per reference product regardless of sales.
	require.Len(t, r.Rows, 2)

	notebook := r.Rows[0]
	assert.Equal(t, report.Field{Label: "Product", Value: "Notebook"}, notebook[0])
	assert.Equal(t, report.Field{Label: "UnitsSold", Value: 1}, notebook[3])
	assert.Equal(t, report.Field{Label: "Revenue", Value: int64(500)}, notebook[4])
}

func TestBuild_CustomersReport(t *testing.T) {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	r := report.Build(testSnapshot(), report.TypeCustomers, period.CurrentMonth, now)

	// One row per reference customer, including those without purchases.
	require.Len(t, r.Rows, 3)

	maria := r.Rows[0]
	assert.Equal(t, report.Field{Label: "Customer", Value: "Maria Garcia"}, maria[0])
	assert.Equal(t, report.Field{Label: "PurchaseCount", Value: 1}, maria[3])
	assert.Equal(t, report.Field{Label: "TotalSpend", Value: int64(500)}, maria[4])

	ana := r.Rows[2]
	assert.Equal(t, report.Field{Label: "Customer", Value: "Ana Diaz"}, ana[0])
	assert.Equal(t, report.Field{Label: "PurchaseCount", Value: 0}, ana[3])
}

func TestBuild_TodayIsAnInstant(t *testing.T) {
	snap := testSnapshot()
	now := time.Date(2025, 3, 5, 23, 0, 0, 0, time.UTC)

	r := report.Build(snap, report.TypeSales, period.Today, now)
	assert.Empty(t, r.Rows)

	// Expanding to the calendar day picks up the sale made that morning.
	window := period.Resolve(period.Today, now).ExpandToDay()
	r = report.BuildWindow(snap, report.TypeSales, window, now)
	require.Len(t, r.Rows, 1)
	assert.Equal(t, report.Field{Label: "ID", Value: 1}, r.Rows[0][0])
}

func TestBuild_WindowBoundsInclusive(t *testing.T) {
	snap := testSnapshot()
	window := period.Range{
		Start: snap.Sales[0].Date,
		End:   snap.Sales[1].Date,
	}

	r := report.BuildWindow(snap, report.TypeSales, window, window.End)

	assert.Len(t, r.Rows, 2)
}

func TestReportFilename(t *testing.T) {
	r := &report.Report{
		Type: report.TypeSales,
		Window: period.Range{
			Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC),
		},
	}

	assert.Equal(t, "reporte-sales-2025-03-01-2025-03-31", r.Filename())
}
