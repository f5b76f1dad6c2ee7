package entity

// PaymentIntent records a simulated payment for an order, stored in the
// "paymentintent" collection. No gateway is called anywhere.
type PaymentIntent struct {
	OrderID  string  `json:"order_id,omitempty" bson:"order_id,omitempty"`
	Amount   float64 `json:"amount" bson:"amount" validate:"gte=0"`
	Currency string  `json:"currency" bson:"currency"`
	Method   string  `json:"method" bson:"method" validate:"required,oneof=upi card netbanking"`
	Status   string  `json:"status" bson:"status" validate:"oneof=created processing paid failed"`
}

func (p *PaymentIntent) ApplyDefaults() {
	if p.Currency == "" {
		p.Currency = "INR"
	}
	if p.Status == "" {
		p.Status = "created"
	}
}
