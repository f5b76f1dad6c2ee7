package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"jerseykraft/internal/entity"
)

// Store is the document-store surface the services depend on.
// *repository.Store implements it.
type Store interface {
	Create(ctx context.Context, collection string, doc interface{}) (string, error)
	List(ctx context.Context, collection string) ([]bson.M, error)
	ListTiers(ctx context.Context) ([]entity.PricingTier, error)
	GetOrder(ctx context.Context, id string) (bson.M, error)
	ListOrders(ctx context.Context, limit int) ([]bson.M, error)
	SetOrderStatus(ctx context.Context, id, status string) error
}
