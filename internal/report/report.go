// Package report assembles flat, labeled record sets over a selected
// date window, ready for tabular export. It performs no I/O; the
// serialization target is an external concern.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/pablolacamera1/ventaspanel/internal/analytics"
	"github.com/pablolacamera1/ventaspanel/internal/period"
	"github.com/pablolacamera1/ventaspanel/internal/sale"
)

// Type is the closed set of report kinds. Adding a kind means touching
// every switch over Type; the compiler-checked exhaustiveness is
// deliberate.
type Type string

const (
	TypeSales     Type = "sales"
	TypeProducts  Type = "products"
	TypeCustomers Type = "customers"
)

// ErrUnknownType is returned by ParseType for tokens outside the
// closed set. Unlike period and sort tokens, the report type has no
// sensible fallback.
var ErrUnknownType = fmt.Errorf("unknown report type")

// ParseType validates a report type token.
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeSales, TypeProducts, TypeCustomers:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// Columns returns the fixed column order of the type.
func (t Type) Columns() []string {
	switch t {
	case TypeProducts:
		return []string{"Product", "Category", "Price", "UnitsSold", "Revenue"}
	case TypeCustomers:
		return []string{"Customer", "Email", "City", "PurchaseCount", "TotalSpend"}
	default: // TypeSales
		return []string{"ID", "Date", "Product", "Category", "Customer", "Quantity", "UnitPrice", "Total", "Status"}
	}
}

// Field is one labeled cell of a report row; values are strings or
// numbers.
type Field struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

// Row is an ordered flat record. The field order matches the type's
// Columns exactly.
type Row []Field

// CategorySummary is one line of the per-category digest shown next to
// every report.
type CategorySummary struct {
	Category       string `json:"category"`
	CompletedCount int    `json:"completedCount"`
	Revenue        int64  `json:"revenue"`
}

// Report is a pure, re-derivable view over one snapshot, window and
// type.
type Report struct {
	Type       Type
	Window     period.Range
	Rows       []Row
	Categories []CategorySummary
	KPIs       analytics.KPISnapshot
	Records    int
}

// Filename returns the export file-name token, embedding the type and
// the resolved window, e.g. "reporte-sales-2025-03-01-2025-03-31".
func (r *Report) Filename() string {
	return fmt.Sprintf("reporte-%s-%s-%s",
		r.Type,
		r.Window.Start.Format(time.DateOnly),
		r.Window.End.Format(time.DateOnly))
}

// Build resolves the period token against now, selects the sales whose
// timestamp falls inside the window (both ends inclusive) and
// assembles the rows for the requested type. Sales rows carry every
// status; product and customer rows cover the full reference tables
// and aggregate only the completed, in-window subset.
//
// Note that the "today" token resolves to a single instant; callers
// wanting the whole calendar day expand the window first and use
// BuildWindow.
func Build(snap *sale.Snapshot, typ Type, token period.Token, now time.Time) *Report {
	return BuildWindow(snap, typ, period.Resolve(token, now), now)
}

// BuildWindow assembles a report over an explicit window.
func BuildWindow(snap *sale.Snapshot, typ Type, window period.Range, now time.Time) *Report {
	selected := make([]sale.Sale, 0, len(snap.Sales))

	for _, v := range snap.Sales {
		if window.Contains(v.Date) {
			selected = append(selected, v)
		}
	}

	r := &Report{
		Type:       typ,
		Window:     window,
		Categories: summarizeCategories(selected),
		KPIs:       analytics.ComputeKPIs(selected, now),
		Records:    len(selected),
	}

	switch typ {
	case TypeProducts:
		r.Rows = productRows(snap.Products, selected)
	case TypeCustomers:
		r.Rows = customerRows(snap.Customers, selected)
	default:
		r.Rows = salesRows(selected)
	}

	return r
}

func salesRows(selected []sale.Sale) []Row {
	rows := make([]Row, len(selected))

	for i, v := range selected {
		rows[i] = Row{
			{Label: "ID", Value: v.ID},
			{Label: "Date", Value: v.Date.Format(time.DateOnly)},
			{Label: "Product", Value: v.ProductName},
			{Label: "Category", Value: v.Category},
			{Label: "Customer", Value: v.CustomerName},
			{Label: "Quantity", Value: v.Quantity},
			{Label: "UnitPrice", Value: v.UnitPrice},
			{Label: "Total", Value: v.Total},
			{Label: "Status", Value: string(v.Status)},
		}
	}

	return rows
}

func productRows(products []sale.Product, selected []sale.Sale) []Row {
	profiles := analytics.ProductProfiles(products, selected)
	rows := make([]Row, len(profiles))

	for i, p := range profiles {
		rows[i] = Row{
			{Label: "Product", Value: p.Name},
			{Label: "Category", Value: p.Category},
			{Label: "Price", Value: p.Price},
			{Label: "UnitsSold", Value: p.UnitsSold},
			{Label: "Revenue", Value: p.Revenue},
		}
	}

	return rows
}

func customerRows(customers []sale.Customer, selected []sale.Sale) []Row {
	profiles := analytics.CustomerProfiles(customers, selected)
	rows := make([]Row, len(profiles))

	for i, c := range profiles {
		rows[i] = Row{
			{Label: "Customer", Value: c.Name},
			{Label: "Email", Value: c.Email},
			{Label: "City", Value: c.City},
			{Label: "PurchaseCount", Value: c.PurchaseCount},
			{Label: "TotalSpend", Value: c.TotalSpend},
		}
	}

	return rows
}

func summarizeCategories(selected []sale.Sale) []CategorySummary {
	idx := make(map[string]int)

	var out []CategorySummary

	for _, v := range selected {
		if v.Status != sale.StatusCompleted {
			continue
		}

		i, ok := idx[v.Category]
		if !ok {
			i = len(out)
			idx[v.Category] = i
			out = append(out, CategorySummary{Category: v.Category})
		}

		out[i].CompletedCount++
		out[i].Revenue += v.Total
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })

	return out
}
