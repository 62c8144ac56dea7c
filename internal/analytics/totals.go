package analytics

import (
	"github.com/pablolacamera1/ventaspanel/internal/sale"
)

// ListingTotals summarizes a filtered sales view: completed revenue
// and count next to the number of records shown (all statuses).
type ListingTotals struct {
	Revenue   int64 `json:"revenue"`
	Completed int   `json:"completed"`
	Shown     int   `json:"shown"`
}

// FilteredTotals computes the summary cards of the sales listing over
// an already-filtered view.
func FilteredTotals(sales []sale.Sale) ListingTotals {
	t := ListingTotals{Shown: len(sales)}

	for _, v := range sales {
		if v.Status != sale.StatusCompleted {
			continue
		}

		t.Revenue += v.Total
		t.Completed++
	}

	return t
}

// CustomerTotals is the customer page header: counts plus the average
// spend per customer across the whole base.
type CustomerTotals struct {
	Customers    int     `json:"customers"`
	Purchases    int     `json:"purchases"`
	Revenue      int64   `json:"revenue"`
	AverageSpend float64 `json:"averageSpend"`
}

// ComputeCustomerTotals folds customer profiles into base-wide totals.
// AverageSpend is 0 when there are no customers.
func ComputeCustomerTotals(profiles []CustomerProfile) CustomerTotals {
	t := CustomerTotals{Customers: len(profiles)}

	for _, p := range profiles {
		t.Purchases += p.PurchaseCount
		t.Revenue += p.TotalSpend
	}

	if t.Customers > 0 {
		t.AverageSpend = float64(t.Revenue) / float64(t.Customers)
	}

	return t
}

// ProductTotals is the product page header.
type ProductTotals struct {
	Products  int   `json:"products"`
	UnitsSold int   `json:"unitsSold"`
	Revenue   int64 `json:"revenue"`
}

// ComputeProductTotals folds product profiles into totals for the
// currently filtered category view.
func ComputeProductTotals(profiles []ProductProfile) ProductTotals {
	t := ProductTotals{Products: len(profiles)}

	for _, p := range profiles {
		t.UnitsSold += p.UnitsSold
		t.Revenue += p.Revenue
	}

	return t
}
