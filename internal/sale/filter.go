package sale

import (
	"sort"
	"strings"
)

// SortKey names a sales ordering. Sorting is by the named field only;
// relative order of ties is whatever the underlying stable sort keeps.
type SortKey string

const (
	SortDateDesc   SortKey = "date-desc"
	SortDateAsc    SortKey = "date-asc"
	SortAmountDesc SortKey = "amount-desc"
	SortAmountAsc  SortKey = "amount-asc"
)

// DefaultSort is the fallback for unknown sort tokens.
const DefaultSort = SortDateDesc

// Query holds the listing controls: a case-insensitive search term
// matched against product or customer display names, a status filter
// (StatusAll passes everything) and a sort key.
type Query struct {
	Search string
	Status string
	Sort   SortKey
}

// Apply filters then sorts the given sales. The order of operations is
// fixed: search filter, status filter, sort. The input slice is never
// modified.
func Apply(sales []Sale, q Query) []Sale {
	out := make([]Sale, 0, len(sales))

	term := strings.ToLower(strings.TrimSpace(q.Search))

	for _, v := range sales {
		if term != "" &&
			!strings.Contains(strings.ToLower(v.ProductName), term) &&
			!strings.Contains(strings.ToLower(v.CustomerName), term) {
			continue
		}

		out = append(out, v)
	}

	if q.Status != "" && q.Status != StatusAll {
		filtered := out[:0]

		for _, v := range out {
			if v.Status == Status(q.Status) {
				filtered = append(filtered, v)
			}
		}

		out = filtered
	}

	sortSales(out, q.Sort)

	return out
}

func sortSales(sales []Sale, key SortKey) {
	switch key {
	case SortDateAsc:
		sort.SliceStable(sales, func(i, j int) bool { return sales[i].Date.Before(sales[j].Date) })
	case SortAmountDesc:
		sort.SliceStable(sales, func(i, j int) bool { return sales[i].Total > sales[j].Total })
	case SortAmountAsc:
		sort.SliceStable(sales, func(i, j int) bool { return sales[i].Total < sales[j].Total })
	default: // SortDateDesc and unknown tokens
		sort.SliceStable(sales, func(i, j int) bool { return sales[i].Date.After(sales[j].Date) })
	}
}
