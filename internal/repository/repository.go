package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jerseykraft/internal/entity"
)

// Collection names, one per persisted entity.
const (
	CollTiers     = "pricingtier"
	CollTemplates = "jerseytemplate"
	CollTeams     = "team"
	CollOrders    = "jerseyorder"
	CollPayments  = "paymentintent"
)

// Store is the document-store accessor. It holds the single long-lived
// database handle injected at startup; db may be nil when the service runs
// without a configured database, in which case every operation fails with
// an unavailable StorageError.
type Store struct {
	db *mongo.Database
}

// NewStore creates a new Store around the given database handle.
func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Available reports whether a database handle is configured.
func (s *Store) Available() bool {
	return s.db != nil
}

func (s *Store) unavailable(op string) *entity.StorageError {
	return &entity.StorageError{Op: op, Err: errors.New("database not configured"), Unavailable: true}
}

// Create inserts doc into the named collection and returns the assigned
// identifier as a hex string. Documents carry no identifier field of their
// own; the store assigns one on insert.
func (s *Store) Create(ctx context.Context, collection string, doc interface{}) (string, error) {
	if s.db == nil {
		return "", s.unavailable("insert " + collection)
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", &entity.StorageError{Op: "insert " + collection, Err: err}
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", &entity.StorageError{Op: "insert " + collection, Err: errors.New("unexpected inserted id type")}
	}
	return oid.Hex(), nil
}

// List returns every record in the named collection with the internal
// identifier surfaced as a public "id" hex string.
func (s *Store) List(ctx context.Context, collection string) ([]bson.M, error) {
	if s.db == nil {
		return nil, s.unavailable("list " + collection)
	}
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, &entity.StorageError{Op: "list " + collection, Err: err}
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, &entity.StorageError{Op: "list " + collection, Err: err}
	}
	out := make([]bson.M, 0, len(docs))
	for _, d := range docs {
		out = append(out, publicDoc(d))
	}
	return out, nil
}

// ListTiers returns the full pricing-tier table for the resolver.
func (s *Store) ListTiers(ctx context.Context) ([]entity.PricingTier, error) {
	if s.db == nil {
		return nil, s.unavailable("list " + CollTiers)
	}
	cur, err := s.db.Collection(CollTiers).Find(ctx, bson.M{})
	if err != nil {
		return nil, &entity.StorageError{Op: "list " + CollTiers, Err: err}
	}
	var tiers []entity.PricingTier
	if err := cur.All(ctx, &tiers); err != nil {
		return nil, &entity.StorageError{Op: "list " + CollTiers, Err: err}
	}
	return tiers, nil
}

// GetOrder returns one order by its hex identifier, ErrNotFound when absent.
func (s *Store) GetOrder(ctx context.Context, id string) (bson.M, error) {
	if s.db == nil {
		return nil, s.unavailable("get " + CollOrders)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, entity.Validationf("invalid order id")
	}
	var doc bson.M
	err = s.db.Collection(CollOrders).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, &entity.StorageError{Op: "get " + CollOrders, Err: err}
	}
	return publicDoc(doc), nil
}

// ListOrders returns up to limit orders, newest first by insertion order.
func (s *Store) ListOrders(ctx context.Context, limit int) ([]bson.M, error) {
	if s.db == nil {
		return nil, s.unavailable("list " + CollOrders)
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := s.db.Collection(CollOrders).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, &entity.StorageError{Op: "list " + CollOrders, Err: err}
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, &entity.StorageError{Op: "list " + CollOrders, Err: err}
	}
	out := make([]bson.M, 0, len(docs))
	for _, d := range docs {
		out = append(out, publicDoc(d))
	}
	return out, nil
}

// SetOrderStatus overwrites the status of an order unconditionally.
func (s *Store) SetOrderStatus(ctx context.Context, id, status string) error {
	if s.db == nil {
		return s.unavailable("update " + CollOrders)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entity.Validationf("invalid order id")
	}
	_, err = s.db.Collection(CollOrders).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return &entity.StorageError{Op: "update " + CollOrders, Err: err}
	}
	return nil
}

// CollectionNames lists the database's collections for the diagnostics
// endpoint.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, s.unavailable("list collections")
	}
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, &entity.StorageError{Op: "list collections", Err: err}
	}
	return names, nil
}

// Ping checks store connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if s.db == nil {
		return s.unavailable("ping")
	}
	if err := s.db.Client().Ping(ctx, nil); err != nil {
		return &entity.StorageError{Op: "ping", Err: err, Unavailable: true}
	}
	return nil
}

// publicDoc renames the internal _id to a public hex id field.
func publicDoc(doc bson.M) bson.M {
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["id"] = oid.Hex()
	}
	delete(doc, "_id")
	return doc
}
