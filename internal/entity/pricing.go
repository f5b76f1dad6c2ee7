package entity

// PricingTier is a pricing bracket keyed by a minimum quantity threshold.
// min_quantity buckets tiers for the descending-threshold resolver lookup.
type PricingTier struct {
	Name        string   `json:"name" bson:"name" validate:"required"`
	BasePrice   float64  `json:"base_price" bson:"base_price" validate:"gte=0"`
	MinQuantity int      `json:"min_quantity" bson:"min_quantity" validate:"gte=1"`
	Features    []string `json:"features" bson:"features"`
}

// ApplyDefaults fills the defaults of unset optional fields.
func (t *PricingTier) ApplyDefaults() {
	if t.MinQuantity == 0 {
		t.MinQuantity = 1
	}
	if t.Features == nil {
		t.Features = []string{}
	}
}
