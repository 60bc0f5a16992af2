package catalog

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/upstream"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/logger"
)

// RecentSearchesCap bounds the per-user recent search history.
const RecentSearchesCap = 10

type catalogAPI interface {
	Products(ctx context.Context, query url.Values) (upstream.ProductPage, error)
	Categories(ctx context.Context) ([]upstream.Category, error)
	FeaturedProducts(ctx context.Context) ([]upstream.Product, error)
	MaxPrice(ctx context.Context) (decimal.Decimal, error)
}

type searchHistory interface {
	PushRecent(ctx context.Context, key, value string, cap int64) error
	ListRecent(ctx context.Context, key string, cap int64) ([]string, error)
	RecentSearchesKey(userID int64) string
}

// Service serves product listings and browse metadata, recording
// free-text searches per user as a side effect.
type Service struct {
	api     catalogAPI
	history searchHistory
	logg    *logger.Logger
}

func NewService(api catalogAPI, history searchHistory, logg *logger.Logger) *Service {
	return &Service{api: api, history: history, logg: logg}
}

// Products fetches a filtered product page. When the caller is known
// and the filters carry a search term, the term is pushed onto the
// user's recent searches; history failures never fail the listing.
func (s *Service) Products(ctx context.Context, filters Filters, userID int64) (upstream.ProductPage, error) {
	page, err := s.api.Products(ctx, filters.Values())
	if err != nil {
		return upstream.ProductPage{}, err
	}

	if filters.HasSearch() && userID > 0 && s.history != nil {
		key := s.history.RecentSearchesKey(userID)
		if err := s.history.PushRecent(ctx, key, filters.Texto, RecentSearchesCap); err != nil && s.logg != nil {
			s.logg.Warn(ctx, "failed to record recent search")
		}
	}

	return page, nil
}

func (s *Service) Categories(ctx context.Context) ([]upstream.Category, error) {
	return s.api.Categories(ctx)
}

func (s *Service) Featured(ctx context.Context) ([]upstream.Product, error) {
	return s.api.FeaturedProducts(ctx)
}

func (s *Service) MaxPrice(ctx context.Context) (decimal.Decimal, error) {
	return s.api.MaxPrice(ctx)
}

// RecentSearches returns the user's most recent search terms, newest
// first. A missing history backend yields an empty list.
func (s *Service) RecentSearches(ctx context.Context, userID int64) ([]string, error) {
	if s.history == nil || userID <= 0 {
		return nil, nil
	}
	terms, err := s.history.ListRecent(ctx, s.history.RecentSearchesKey(userID), RecentSearchesCap)
	if err != nil {
		return nil, err
	}
	return terms, nil
}
