package badges

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jcastellanos/habitframe-backend/pkg/db/models"
	pkgerrors "github.com/jcastellanos/habitframe-backend/pkg/errors"
	"github.com/jcastellanos/habitframe-backend/pkg/logger"
)

const catalogCacheKey = "badges:catalog"

// CatalogCache is the read-through cache surface for the badge catalog.
type CatalogCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CacheKey(parts ...string) string
}

// ServiceParams groups dependencies for the badges service.
type ServiceParams struct {
	Repo     *Repository
	Cache    CatalogCache
	CacheTTL time.Duration
	Logger   *logger.Logger
}

// Service exposes the read-only badge catalog.
type Service interface {
	Catalog(ctx context.Context) ([]models.Badge, error)
	EnsureSeeded(ctx context.Context) error
}

type service struct {
	repo     *Repository
	cache    CatalogCache
	cacheTTL time.Duration
	logg     *logger.Logger
}

// NewService builds a badges service. The cache is optional; when absent
// every catalog read goes to the database.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "badge repo is required")
	}
	ttl := params.CacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &service{
		repo:     params.Repo,
		cache:    params.Cache,
		cacheTTL: ttl,
		logg:     params.Logger,
	}, nil
}

// Catalog returns the full badge catalog, served from cache when warm. The
// catalog is read-mostly reference data shared by all users, so a short TTL
// is enough to absorb the evaluator's read load.
func (s *service) Catalog(ctx context.Context) ([]models.Badge, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, s.cache.CacheKey(catalogCacheKey))
		if err == nil && cached != "" {
			var catalog []models.Badge
			if unmarshalErr := json.Unmarshal([]byte(cached), &catalog); unmarshalErr == nil {
				return catalog, nil
			}
		}
	}

	catalog, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load badge catalog")
	}

	if s.cache != nil {
		if encoded, marshalErr := json.Marshal(catalog); marshalErr == nil {
			if cacheErr := s.cache.Set(ctx, s.cache.CacheKey(catalogCacheKey), string(encoded), s.cacheTTL); cacheErr != nil && s.logg != nil {
				s.logg.Warn(ctx, "badge catalog cache write failed")
			}
		}
	}

	return catalog, nil
}

// EnsureSeeded upserts the default catalog so a fresh database can award
// badges immediately.
func (s *service) EnsureSeeded(ctx context.Context) error {
	if err := s.repo.SeedCatalog(ctx, DefaultCatalog()); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed badge catalog")
	}
	return nil
}
