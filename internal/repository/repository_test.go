package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jerseykraft/internal/entity"
)

func TestPublicDocRenamesInternalID(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := publicDoc(bson.M{"_id": oid, "name": "Classic"})

	assert.Equal(t, oid.Hex(), doc["id"])
	assert.Equal(t, "Classic", doc["name"])
	assert.NotContains(t, doc, "_id")
}

func TestStoreUnavailableWithoutDatabase(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	assert.False(t, s.Available())

	_, err := s.Create(ctx, CollTemplates, bson.M{"name": "x"})
	requireUnavailable(t, err)

	_, err = s.List(ctx, CollTemplates)
	requireUnavailable(t, err)

	_, err = s.ListTiers(ctx)
	requireUnavailable(t, err)

	_, err = s.GetOrder(ctx, primitive.NewObjectID().Hex())
	requireUnavailable(t, err)

	_, err = s.ListOrders(ctx, 50)
	requireUnavailable(t, err)

	requireUnavailable(t, s.SetOrderStatus(ctx, primitive.NewObjectID().Hex(), entity.StatusShipped))

	_, err = s.CollectionNames(ctx)
	requireUnavailable(t, err)

	requireUnavailable(t, s.Ping(ctx))
}

func requireUnavailable(t *testing.T, err error) {
	t.Helper()
	var serr *entity.StorageError
	require.ErrorAs(t, err, &serr)
	assert.True(t, serr.Unavailable)
}
