package analytics

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pablolacamera1/ventaspanel/internal/sale"
)

// ProductProfile is a product joined with its sales performance over a
// sale set.
type ProductProfile struct {
	sale.Product
	UnitsSold int   `json:"unitsSold"`
	Revenue   int64 `json:"revenue"`
}

// ProductProfiles computes one profile per reference product from the
// completed sales in the given set. Products without sales report zero
// units and revenue; sales pointing at unknown product ids contribute
// to no profile.
func ProductProfiles(products []sale.Product, sales []sale.Sale) []ProductProfile {
	idx := make(map[int]int, len(products))
	out := make([]ProductProfile, len(products))

	for i, p := range products {
		idx[p.ID] = i
		out[i] = ProductProfile{Product: p}
	}

	for _, v := range sales {
		if v.Status != sale.StatusCompleted {
			continue
		}

		i, ok := idx[v.ProductID]
		if !ok {
			continue
		}

		out[i].UnitsSold += v.Quantity
		out[i].Revenue += v.Total
	}

	return out
}

// CustomerProfile is a customer joined with purchase statistics and
// the derived tier.
type CustomerProfile struct {
	sale.Customer
	PurchaseCount  int        `json:"purchaseCount"`
	TotalSpend     int64      `json:"totalSpend"`
	AverageSpend   float64    `json:"averageSpend"`
	LastPurchaseAt *time.Time `json:"lastPurchaseAt,omitempty"`
	Tier           Tier       `json:"tier"`
}

// CustomerProfiles computes one profile per reference customer from
// the completed sales in the given set. LastPurchaseAt is nil for
// customers without completed purchases and AverageSpend is 0 rather
// than a division fault.
func CustomerProfiles(customers []sale.Customer, sales []sale.Sale) []CustomerProfile {
	idx := make(map[int]int, len(customers))
	out := make([]CustomerProfile, len(customers))

	for i, c := range customers {
		idx[c.ID] = i
		out[i] = CustomerProfile{Customer: c}
	}

	for _, v := range sales {
		if v.Status != sale.StatusCompleted {
			continue
		}

		i, ok := idx[v.CustomerID]
		if !ok {
			continue
		}

		out[i].PurchaseCount++
		out[i].TotalSpend += v.Total

		if out[i].LastPurchaseAt == nil || v.Date.After(*out[i].LastPurchaseAt) {
			d := v.Date
			out[i].LastPurchaseAt = &d
		}
	}

	for i := range out {
		if out[i].PurchaseCount > 0 {
			out[i].AverageSpend = float64(out[i].TotalSpend) / float64(out[i].PurchaseCount)
		}

		out[i].Tier = Classify(out[i].TotalSpend)
	}

	return out
}

// ProfileSortKey names a profile-list ordering.
type ProfileSortKey string

const (
	SortSpendDesc     ProfileSortKey = "spend-desc"
	SortSpendAsc      ProfileSortKey = "spend-asc"
	SortPurchasesDesc ProfileSortKey = "purchases-desc"
	SortPurchasesAsc  ProfileSortKey = "purchases-asc"
	SortNameAsc       ProfileSortKey = "name-asc"
)

// DefaultProfileSort is the fallback for unknown profile sort tokens.
const DefaultProfileSort = SortSpendDesc

// nameCollator orders names the way the Spanish-locale panel did.
var nameCollator = collate.New(language.Spanish)

// SortCustomerProfiles orders profiles in place by the named key;
// unknown keys fall back to spend descending. Only the primary key is
// ordered, ties keep their relative positions.
func SortCustomerProfiles(profiles []CustomerProfile, key ProfileSortKey) {
	switch key {
	case SortSpendAsc:
		sort.SliceStable(profiles, func(i, j int) bool { return profiles[i].TotalSpend < profiles[j].TotalSpend })
	case SortPurchasesDesc:
		sort.SliceStable(profiles, func(i, j int) bool { return profiles[i].PurchaseCount > profiles[j].PurchaseCount })
	case SortPurchasesAsc:
		sort.SliceStable(profiles, func(i, j int) bool { return profiles[i].PurchaseCount < profiles[j].PurchaseCount })
	case SortNameAsc:
		sort.SliceStable(profiles, func(i, j int) bool {
			return nameCollator.CompareString(profiles[i].Name, profiles[j].Name) < 0
		})
	default: // SortSpendDesc and unknown tokens
		sort.SliceStable(profiles, func(i, j int) bool { return profiles[i].TotalSpend > profiles[j].TotalSpend })
	}
}

// SortProductProfiles orders profiles in place by the named key, with
// spend read as revenue and purchases as units sold.
func SortProductProfiles(profiles []ProductProfile, key ProfileSortKey) {
	switch key {
	case SortSpendAsc:
		sort.SliceStable(profiles, func(i, j int) bool { return profiles[i].Revenue < profiles[j].Revenue })
	case SortPurchasesDesc:
		sort.SliceStable(profiles, func(i, j int) bool { return profiles[i].UnitsSold > profiles[j].UnitsSold })
	case SortPurchasesAsc:
		sort.SliceStable(profiles, func(i, j int) bool { return profiles[i].UnitsSold < profiles[j].UnitsSold })
	case SortNameAsc:
		sort.SliceStable(profiles, func(i, j int) bool {
			return nameCollator.CompareString(profiles[i].Name, profiles[j].Name) < 0
		})
	default:
		sort.SliceStable(profiles, func(i, j int) bool { return profiles[i].Revenue > profiles[j].Revenue })
	}
}

// FilterProductsByCategory keeps only profiles in the given category.
// CategoryAll (or an empty string) passes everything.
func FilterProductsByCategory(profiles []ProductProfile, category string) []ProductProfile {
	if category == "" || category == CategoryAll {
		return profiles
	}

	out := make([]ProductProfile, 0, len(profiles))

	for _, p := range profiles {
		if p.Category == category {
			out = append(out, p)
		}
	}

	return out
}

// CategoryAll is the category filter sentinel matching every category.
const CategoryAll = "todas"
