package analytics

// Tier is a customer segmentation label derived solely from lifetime
// completed spend.
type Tier string

const (
	TierNew     Tier = "New"
	TierRegular Tier = "Regular"
	TierPremium Tier = "Premium"
	TierVIP     Tier = "VIP"
)

// Rank returns the display rank of the tier, 0 for New up to 3 for
// VIP. Ranks are monotonic in spend.
func (t Tier) Rank() int {
	switch t {
	case TierVIP:
		return 3
	case TierPremium:
		return 2
	case TierRegular:
		return 1
	default:
		return 0
	}
}

// Segmentation thresholds, strictly exceeded to enter a tier: a spend
// equal to a threshold stays in the lower tier.
const (
	vipThreshold     = 500000
	premiumThreshold = 200000
	regularThreshold = 50000
)

// Classify maps a customer's total spend to a tier. Highest tier
// first, first match wins; pure and total over all non-negative
// spends.
func Classify(totalSpend int64) Tier {
	switch {
	case totalSpend > vipThreshold:
		return TierVIP
	case totalSpend > premiumThreshold:
		return TierPremium
	case totalSpend > regularThreshold:
		return TierRegular
	default:
		return TierNew
	}
}
