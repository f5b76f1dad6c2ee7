package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"jerseykraft/internal/entity"
	"jerseykraft/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const (
	templateCacheKey = "catalog:templates"
	cacheTTL         = 5 * time.Minute
)

// CatalogService serves the template catalog and the admin tier endpoints.
// The cache is never authoritative: a cache failure logs and falls through
// to the store.
type CatalogService struct {
	store Store
	cache Cache
}

// NewCatalogService creates a new instance of CatalogService. cache may be
// nil when no cache is configured.
func NewCatalogService(store Store, cache Cache) *CatalogService {
	return &CatalogService{store: store, cache: cache}
}

// ListTemplates returns the full template catalog, cache-aside.
func (s *CatalogService) ListTemplates(ctx context.Context) ([]bson.M, error) {
	if docs, ok := s.cachedDocs(ctx, templateCacheKey); ok {
		return docs, nil
	}

	docs, err := s.store.List(ctx, repository.CollTemplates)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing templates")
		return nil, err
	}
	s.cacheDocs(ctx, templateCacheKey, docs)
	return docs, nil
}

// CreateTemplate persists a template and invalidates the catalog cache.
func (s *CatalogService) CreateTemplate(ctx context.Context, t *entity.JerseyTemplate) (string, error) {
	id, err := s.store.Create(ctx, repository.CollTemplates, t)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating template")
		return "", err
	}
	s.invalidate(ctx, templateCacheKey)
	return id, nil
}

// ListTiers returns every pricing tier as a public record.
func (s *CatalogService) ListTiers(ctx context.Context) ([]bson.M, error) {
	return s.store.List(ctx, repository.CollTiers)
}

// CreateTier persists a pricing tier and invalidates the resolver's tier
// cache.
func (s *CatalogService) CreateTier(ctx context.Context, t *entity.PricingTier) (string, error) {
	id, err := s.store.Create(ctx, repository.CollTiers, t)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating pricing tier")
		return "", err
	}
	s.invalidate(ctx, tierCacheKey)
	return id, nil
}

func (s *CatalogService) cachedDocs(ctx context.Context, key string) ([]bson.M, bool) {
	if s.cache == nil {
		return nil, false
	}
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			logger.Error().Err(err).Msgf("Error reading %s from cache", key)
		}
		return nil, false
	}
	var docs []bson.M
	if err := json.Unmarshal([]byte(cached), &docs); err != nil {
		logger.Error().Err(err).Msgf("Error unmarshalling cached %s", key)
		return nil, false
	}
	return docs, true
}

func (s *CatalogService) cacheDocs(ctx context.Context, key string, docs []bson.M) {
	if s.cache == nil {
		return
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(b), cacheTTL); err != nil {
		logger.Error().Err(err).Msgf("Error setting %s in cache", key)
	}
}

func (s *CatalogService) invalidate(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, key); err != nil {
		logger.Error().Err(err).Msgf("Error invalidating %s in cache", key)
	}
}
