package maintenance

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/upstream"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/logger"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/redis"
)

// DefaultCacheTTL bounds how stale a served maintenance flag can be.
const DefaultCacheTTL = 30 * time.Second

type statusAPI interface {
	Maintenance(ctx context.Context) (upstream.MaintenanceStatus, error)
}

type statusCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	MaintenanceKey() string
}

// Service answers "is the store under maintenance" with a short-lived
// cache in front of the upstream so the flag survives brief outages
// and a page full of widgets does not stampede the backend.
type Service struct {
	api   statusAPI
	cache statusCache
	ttl   time.Duration
	logg  *logger.Logger
}

func NewService(api statusAPI, cache statusCache, ttl time.Duration, logg *logger.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{api: api, cache: cache, ttl: ttl, logg: logg}
}

// Status returns the current maintenance flag, serving from cache when
// fresh. Cache failures fall through to the upstream; cache write
// failures are logged and ignored.
func (s *Service) Status(ctx context.Context) (upstream.MaintenanceStatus, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, s.cache.MaintenanceKey()); err == nil {
			var status upstream.MaintenanceStatus
			if err := json.Unmarshal([]byte(cached), &status); err == nil {
				return status, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logg.Warn(ctx, "maintenance cache read failed")
		}
	}

	status, err := s.api.Maintenance(ctx)
	if err != nil {
		return upstream.MaintenanceStatus{}, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(status); err == nil {
			if err := s.cache.Set(ctx, s.cache.MaintenanceKey(), string(raw), s.ttl); err != nil {
				s.logg.Warn(ctx, "maintenance cache write failed")
			}
		}
	}

	return status, nil
}

// Active reports whether the store is currently closed for maintenance.
func (s *Service) Active(ctx context.Context) (bool, error) {
	status, err := s.Status(ctx)
	if err != nil {
		return false, err
	}
	return status.Estado == 1, nil
}
