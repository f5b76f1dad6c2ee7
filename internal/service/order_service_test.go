package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jerseykraft/internal/entity"
)

type mockStore struct {
	createFn    func(ctx context.Context, collection string, doc interface{}) (string, error)
	listFn      func(ctx context.Context, collection string) ([]bson.M, error)
	listTiersFn func(ctx context.Context) ([]entity.PricingTier, error)

	tierCalls int
}

func (m *mockStore) Create(ctx context.Context, collection string, doc interface{}) (string, error) {
	if m.createFn != nil {
		return m.createFn(ctx, collection, doc)
	}
	return primitive.NewObjectID().Hex(), nil
}

func (m *mockStore) List(ctx context.Context, collection string) ([]bson.M, error) {
	if m.listFn != nil {
		return m.listFn(ctx, collection)
	}
	return []bson.M{}, nil
}

func (m *mockStore) ListTiers(ctx context.Context) ([]entity.PricingTier, error) {
	m.tierCalls++
	if m.listTiersFn != nil {
		return m.listTiersFn(ctx)
	}
	return tierTableFixture(), nil
}

func (m *mockStore) GetOrder(ctx context.Context, id string) (bson.M, error) {
	return bson.M{"id": id}, nil
}

func (m *mockStore) ListOrders(ctx context.Context, limit int) ([]bson.M, error) {
	return []bson.M{}, nil
}

func (m *mockStore) SetOrderStatus(ctx context.Context, id, status string) error {
	return nil
}

type mockCache struct {
	getFn func(ctx context.Context, key string) (string, error)
	setFn func(ctx context.Context, key, value string, ttl time.Duration) error
	delFn func(ctx context.Context, key string) error
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return "", ErrCacheMiss
}

func (m *mockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

type mockWriter struct {
	err      error
	messages []kafka.Message
}

func (m *mockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	m.messages = append(m.messages, msgs...)
	return m.err
}

func TestCheckoutSurvivesPublishFailure(t *testing.T) {
	writer := &mockWriter{err: errors.New("broker unreachable")}
	svc := NewOrderService(&mockStore{}, nil, writer)

	res, err := svc.Checkout(context.Background(), checkoutFixture())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.NotEmpty(t, res.OrderID)
	assert.NotEmpty(t, res.PaymentID)
	assert.Equal(t, 899.0*15, res.Amount)
	assert.Equal(t, "INR", res.Currency)

	// The publish was attempted despite the failure.
	require.Len(t, writer.messages, 1)
	assert.Equal(t, "order-created-"+res.OrderID, string(writer.messages[0].Key))
}

func TestCheckoutPublishesOrderEvent(t *testing.T) {
	writer := &mockWriter{}
	svc := NewOrderService(&mockStore{}, nil, writer)

	res, err := svc.Checkout(context.Background(), checkoutFixture())
	require.NoError(t, err)

	require.Len(t, writer.messages, 1)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &payload))
	assert.Equal(t, res.OrderID, payload["order_id"])
	assert.Equal(t, res.Amount, payload["amount"])
	assert.Equal(t, entity.StatusConfirmed, payload["status"])
}

func TestUpdateStatusSurvivesPublishFailure(t *testing.T) {
	writer := &mockWriter{err: errors.New("broker unreachable")}
	svc := NewOrderService(&mockStore{}, nil, writer)

	id := primitive.NewObjectID().Hex()
	err := svc.UpdateStatus(context.Background(), id, entity.StatusShipped)
	require.NoError(t, err)

	require.Len(t, writer.messages, 1)
	assert.Equal(t, "order-status-updated-"+id, string(writer.messages[0].Key))
}

func TestTierTableFallsThroughOnCacheFailure(t *testing.T) {
	cache := &mockCache{
		getFn: func(ctx context.Context, key string) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	store := &mockStore{}
	svc := NewOrderService(store, cache, nil)

	res, err := svc.Checkout(context.Background(), checkoutFixture())
	require.NoError(t, err)
	assert.Equal(t, 899.0*15, res.Amount)
	assert.Equal(t, 1, store.tierCalls)
}

func TestTierTableFillsCacheOnMiss(t *testing.T) {
	var setKey, setValue string
	cache := &mockCache{
		setFn: func(ctx context.Context, key, value string, ttl time.Duration) error {
			setKey, setValue = key, value
			return nil
		},
	}
	store := &mockStore{}
	svc := NewOrderService(store, cache, nil)

	_, err := svc.Checkout(context.Background(), checkoutFixture())
	require.NoError(t, err)
	assert.Equal(t, 1, store.tierCalls)
	assert.Equal(t, tierCacheKey, setKey)

	var cached []entity.PricingTier
	require.NoError(t, json.Unmarshal([]byte(setValue), &cached))
	assert.Equal(t, tierTableFixture(), cached)
}

func TestTierTableServedFromCache(t *testing.T) {
	b, err := json.Marshal(tierTableFixture())
	require.NoError(t, err)
	cache := &mockCache{
		getFn: func(ctx context.Context, key string) (string, error) {
			return string(b), nil
		},
	}
	store := &mockStore{}
	svc := NewOrderService(store, cache, nil)

	res, err := svc.Checkout(context.Background(), checkoutFixture())
	require.NoError(t, err)
	assert.Equal(t, 899.0*15, res.Amount)
	assert.Equal(t, 0, store.tierCalls)
}

func TestListTemplatesFallsThroughOnCacheFailure(t *testing.T) {
	cache := &mockCache{
		getFn: func(ctx context.Context, key string) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	store := &mockStore{
		listFn: func(ctx context.Context, collection string) ([]bson.M, error) {
			return []bson.M{{"name": "Classic"}}, nil
		},
	}
	svc := NewCatalogService(store, cache)

	docs, err := svc.ListTemplates(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Classic", docs[0]["name"])
}
