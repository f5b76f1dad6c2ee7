package service

import (
	"math"

	"jerseykraft/internal/entity"
)

// Fallback tier applied when no tier's min_quantity covers the requested
// quantity, or the tier table is empty.
const (
	DefaultTierName  = "Starter"
	DefaultBasePrice = 999.0
)

const tierCacheKey = "pricing:tiers"

// ResolveTier picks the tier with the greatest min_quantity that is still
// <= quantity. Ties on min_quantity resolve by store-native order of the
// table; callers must not depend on tie order.
func ResolveTier(tiers []entity.PricingTier, quantity int) (name string, basePrice float64) {
	best := -1
	for i, t := range tiers {
		if t.MinQuantity > quantity {
			continue
		}
		if best == -1 || t.MinQuantity > tiers[best].MinQuantity {
			best = i
		}
	}
	if best == -1 {
		return DefaultTierName, DefaultBasePrice
	}
	return tiers[best].Name, tiers[best].BasePrice
}

// Amount computes base_price x quantity rounded to two decimal places.
func Amount(basePrice float64, quantity int) float64 {
	return math.Round(basePrice*float64(quantity)*100) / 100
}
