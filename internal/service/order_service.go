package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson"

	"jerseykraft/internal/entity"
	"jerseykraft/internal/repository"
)

// EventWriter publishes order lifecycle events. *kafka.Writer implements it.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// OrderService handles checkout, order lookups and status updates.
type OrderService struct {
	store  Store
	cache  Cache
	writer EventWriter
}

// NewOrderService creates a new instance of OrderService. cache and writer
// may be nil when no cache or broker is configured.
func NewOrderService(store Store, cache Cache, writer EventWriter) *OrderService {
	return &OrderService{store: store, cache: cache, writer: writer}
}

// Checkout resolves the pricing tier for the requested quantity, computes
// the amount server-side, persists the order and then a simulated payment
// intent for it.
func (s *OrderService) Checkout(ctx context.Context, req *entity.CheckoutRequest) (*entity.CheckoutResult, error) {
	tiers, err := s.tierTable(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error loading pricing tiers")
		return nil, err
	}

	tierName, basePrice := ResolveTier(tiers, req.Quantity)
	amount := Amount(basePrice, req.Quantity)

	order := entity.JerseyOrder{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		TeamID:          req.TeamID,
		TemplateID:      req.TemplateID,
		Design:          req.Design,
		Quantity:        req.Quantity,
		PricingTier:     tierName,
		Amount:          amount,
	}
	order.ApplyDefaults()

	orderID, err := s.store.Create(ctx, repository.CollOrders, &order)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating order")
		return nil, err
	}

	pay := entity.PaymentIntent{OrderID: orderID, Amount: amount, Method: req.Method}
	pay.ApplyDefaults()

	paymentID, err := s.store.Create(ctx, repository.CollPayments, &pay)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating payment intent")
		return nil, err
	}

	s.publishOrderEvent(ctx, "created", orderID, map[string]interface{}{
		"order_id": orderID,
		"amount":   amount,
		"quantity": order.Quantity,
		"tier":     tierName,
		"status":   order.Status,
	})

	return &entity.CheckoutResult{
		OrderID:   orderID,
		PaymentID: paymentID,
		Amount:    amount,
		Currency:  pay.Currency,
	}, nil
}

// UpdateStatus overwrites an order's status unconditionally; transitions
// are not enforced.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) error {
	if err := s.store.SetOrderStatus(ctx, id, status); err != nil {
		logger.Error().Err(err).Msgf("Error updating status of order %s", id)
		return err
	}
	s.publishOrderEvent(ctx, "status-updated", id, map[string]interface{}{
		"order_id": id,
		"status":   status,
	})
	return nil
}

// Order returns one order record by id.
func (s *OrderService) Order(ctx context.Context, id string) (bson.M, error) {
	return s.store.GetOrder(ctx, id)
}

// Orders returns up to limit order records, newest first.
func (s *OrderService) Orders(ctx context.Context, limit int) ([]bson.M, error) {
	return s.store.ListOrders(ctx, limit)
}

// tierTable loads the pricing-tier table, cache-aside when a cache is
// configured. A cache failure logs and falls through to the store.
func (s *OrderService) tierTable(ctx context.Context) ([]entity.PricingTier, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, tierCacheKey)
		if err != nil && !errors.Is(err, ErrCacheMiss) {
			logger.Error().Err(err).Msg("Error reading tier table from cache")
		}
		if cached != "" {
			var tiers []entity.PricingTier
			if err := json.Unmarshal([]byte(cached), &tiers); err == nil {
				return tiers, nil
			}
		}
	}

	tiers, err := s.store.ListTiers(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if b, err := json.Marshal(tiers); err == nil {
			if err := s.cache.Set(ctx, tierCacheKey, string(b), cacheTTL); err != nil {
				logger.Error().Err(err).Msg("Error setting tier table in cache")
			}
		}
	}
	return tiers, nil
}

// publishOrderEvent emits an order lifecycle event, best effort: a publish
// failure is logged and never surfaced to the client.
func (s *OrderService) publishOrderEvent(ctx context.Context, event, orderID string, payload interface{}) {
	if s.writer == nil {
		return
	}
	value, err := json.Marshal(payload)
	if err != nil {
		logger.Error().Err(err).Msgf("Error marshalling order %s event", event)
		return
	}
	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("order-%s-%s", event, orderID)),
		Value: value,
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		logger.Error().Err(err).Msgf("Error publishing order %s event for %s", event, orderID)
	}
}
