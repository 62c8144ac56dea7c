package analytics

import (
	"sort"

	"github.com/pablolacamera1/ventaspanel/internal/period"
	"github.com/pablolacamera1/ventaspanel/internal/sale"
)

// MonthRevenue is one time bucket of the monthly revenue series.
type MonthRevenue struct {
	Period string `json:"period"`
	Total  int64  `json:"total"`
}

// maxMonthBuckets bounds the monthly series to the trailing entries of
// the grouped mapping.
const maxMonthBuckets = 6

// RevenueByMonth groups completed sales by calendar month. Buckets
// appear in the order their month is first seen in the input and the
// result keeps only the last 6 entries of that ordering. With unsorted
// input this can diverge from chronological order; the panel always
// fed the series date-descending data and downstream consumers rely on
// the trailing-entries truncation, so it stays.
func RevenueByMonth(sales []sale.Sale) []MonthRevenue {
	totals := make(map[string]int64)

	var order []string

	for _, v := range sales {
		if v.Status != sale.StatusCompleted {
			continue
		}

		label := period.MonthLabel(v.Date)
		if _, ok := totals[label]; !ok {
			order = append(order, label)
		}

		totals[label] += v.Total
	}

	if len(order) > maxMonthBuckets {
		order = order[len(order)-maxMonthBuckets:]
	}

	out := make([]MonthRevenue, len(order))
	for i, label := range order {
		out[i] = MonthRevenue{Period: label, Total: totals[label]}
	}

	return out
}

// CategoryRevenue is the completed revenue attributed to one product
// category.
type CategoryRevenue struct {
	Category string `json:"category"`
	Revenue  int64  `json:"revenue"`
}

// RevenueByCategory sums completed revenue per category, in the order
// categories are first seen.
func RevenueByCategory(sales []sale.Sale) []CategoryRevenue {
	totals := make(map[string]int64)

	var order []string

	for _, v := range sales {
		if v.Status != sale.StatusCompleted {
			continue
		}

		if _, ok := totals[v.Category]; !ok {
			order = append(order, v.Category)
		}

		totals[v.Category] += v.Total
	}

	out := make([]CategoryRevenue, len(order))
	for i, c := range order {
		out[i] = CategoryRevenue{Category: c, Revenue: totals[c]}
	}

	return out
}

// ProductRank is one leaderboard entry.
type ProductRank struct {
	ProductName string `json:"productName"`
	Revenue     int64  `json:"revenue"`
	UnitsSold   int    `json:"unitsSold"`
}

// TopProducts ranks completed sales by revenue, descending, returning
// at most n entries. Grouping is by product display name, not id: two
// distinct products sharing a name silently merge into one entry. That
// matches what the panel has always shown and downstream consumers may
// depend on it, so it is preserved rather than fixed. Ties keep the
// order in which the products were first encountered.
func TopProducts(sales []sale.Sale, n int) []ProductRank {
	idx := make(map[string]int)

	var ranks []ProductRank

	for _, v := range sales {
		if v.Status != sale.StatusCompleted {
			continue
		}

		i, ok := idx[v.ProductName]
		if !ok {
			i = len(ranks)
			idx[v.ProductName] = i
			ranks = append(ranks, ProductRank{ProductName: v.ProductName})
		}

		ranks[i].Revenue += v.Total
		ranks[i].UnitsSold += v.Quantity
	}

	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].Revenue > ranks[j].Revenue })

	if len(ranks) > n {
		ranks = ranks[:n]
	}

	return ranks
}
