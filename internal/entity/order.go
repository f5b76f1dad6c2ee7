package entity

// Order production statuses. The status-update endpoint accepts any of the
// four and overwrites unconditionally; transitions are not enforced.
const (
	StatusConfirmed    = "Confirmed"
	StatusInProduction = "In Production"
	StatusQC           = "QC"
	StatusShipped      = "Shipped"
)

// JerseyOrder is a placed order, stored in the "jerseyorder" collection.
// team_id and template_id are opaque references with no enforced integrity.
type JerseyOrder struct {
	CustomerName    string       `json:"customer_name" bson:"customer_name" validate:"required"`
	CustomerEmail   string       `json:"customer_email" bson:"customer_email" validate:"required"`
	CustomerPhone   string       `json:"customer_phone" bson:"customer_phone" validate:"required"`
	ShippingAddress string       `json:"shipping_address" bson:"shipping_address" validate:"required"`
	TeamID          string       `json:"team_id,omitempty" bson:"team_id,omitempty"`
	TemplateID      string       `json:"template_id,omitempty" bson:"template_id,omitempty"`
	Design          JerseyDesign `json:"design" bson:"design"`
	Quantity        int          `json:"quantity" bson:"quantity" validate:"gte=1"`
	PricingTier     string       `json:"pricing_tier,omitempty" bson:"pricing_tier,omitempty"`
	Amount          float64      `json:"amount" bson:"amount" validate:"gte=0"`
	PaymentStatus   string       `json:"payment_status" bson:"payment_status" validate:"oneof=pending paid failed"`
	Status          string       `json:"status" bson:"status" validate:"oneof=Confirmed 'In Production' QC Shipped"`
}

func (o *JerseyOrder) ApplyDefaults() {
	o.Design.ApplyDefaults()
	if o.Quantity == 0 {
		o.Quantity = 1
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = "pending"
	}
	if o.Status == "" {
		o.Status = StatusConfirmed
	}
}

// CheckoutRequest is the body of POST /api/checkout. The amount is computed
// server-side from the resolved tier, never taken from the client.
type CheckoutRequest struct {
	CustomerName    string       `json:"customer_name" validate:"required"`
	CustomerEmail   string       `json:"customer_email" validate:"required"`
	CustomerPhone   string       `json:"customer_phone" validate:"required"`
	ShippingAddress string       `json:"shipping_address" validate:"required"`
	TeamID          string       `json:"team_id,omitempty"`
	TemplateID      string       `json:"template_id,omitempty"`
	Design          JerseyDesign `json:"design"`
	Quantity        int          `json:"quantity" validate:"required,gte=1"`
	Method          string       `json:"method" validate:"required,oneof=upi card netbanking"`
}

// CheckoutResult is the response of a successful checkout.
type CheckoutResult struct {
	OrderID   string  `json:"order_id"`
	PaymentID string  `json:"payment_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

// UpdateStatusRequest is the body of POST /api/orders/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Confirmed 'In Production' QC Shipped"`
}
