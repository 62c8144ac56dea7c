package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablolacamera1/ventaspanel/internal/export"
	"github.com/pablolacamera1/ventaspanel/internal/period"
	"github.com/pablolacamera1/ventaspanel/internal/report"
)

func testReport() *report.Report {
	return &report.Report{
		Type: report.TypeSales,
		Window: period.Range{
			Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		Rows: []report.Row{
			{
				{Label: "ID", Value: 1},
				{Label: "Date", Value: "2025-03-05"},
				{Label: "Product", Value: "Notebook"},
				{Label: "Category", Value: "Electronica"},
				{Label: "Customer", Value: "Maria, Garcia"},
				{Label: "Quantity", Value: 1},
				{Label: "UnitPrice", Value: int64(500)},
				{Label: "Total", Value: int64(500)},
				{Label: "Status", Value: "Completed"},
			},
		},
		Records: 1,
	}
}

func TestService_Write(t *testing.T) {
	var buf bytes.Buffer

	err := export.NewService().Write(&buf, testReport())
	require.NoError(t, err)

	want := "ID,Date,Product,Category,Customer,Quantity,UnitPrice,Total,Status\n" +
		"1,2025-03-05,Notebook,Electronica,\"Maria, Garcia\",1,500,500,Completed\n"
	assert.Equal(t, want, buf.String())
}

func TestService_Write_EmptyReportStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer

	r := &report.Report{Type: report.TypeCustomers}

	err := export.NewService().Write(&buf, r)
	require.NoError(t, err)
	assert.Equal(t, "Customer,Email,City,PurchaseCount,TotalSpend\n", buf.String())
}

func TestService_WriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "exports")

	path, err := export.NewService().WriteFile(nested, testReport())
	require.NoError(t, err)

	assert.Equal(t, "reporte-sales-2025-03-01-2025-03-31.csv", filepath.Base(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Notebook")
}
