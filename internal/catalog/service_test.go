package catalog

import (
	"context"
	"errors"
	"io"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/upstream"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/logger"
)

type stubCatalogAPI struct {
	page       upstream.ProductPage
	err        error
	lastQuery  url.Values
	categories []upstream.Category
	featured   []upstream.Product
	maxPrice   decimal.Decimal
}

func (s *stubCatalogAPI) Products(_ context.Context, query url.Values) (upstream.ProductPage, error) {
	s.lastQuery = query
	return s.page, s.err
}

func (s *stubCatalogAPI) Categories(context.Context) ([]upstream.Category, error) {
	return s.categories, s.err
}

func (s *stubCatalogAPI) FeaturedProducts(context.Context) ([]upstream.Product, error) {
	return s.featured, s.err
}

func (s *stubCatalogAPI) MaxPrice(context.Context) (decimal.Decimal, error) {
	return s.maxPrice, s.err
}

type stubHistory struct {
	pushed  []string
	stored  []string
	pushErr error
	listErr error
}

func (s *stubHistory) PushRecent(_ context.Context, _ string, value string, _ int64) error {
	if s.pushErr != nil {
		return s.pushErr
	}
	s.pushed = append(s.pushed, value)
	return nil
}

func (s *stubHistory) ListRecent(context.Context, string, int64) ([]string, error) {
	return s.stored, s.listErr
}

func (s *stubHistory) RecentSearchesKey(userID int64) string {
	return "test:recent"
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{Level: zerolog.ErrorLevel, Output: io.Discard})
}

func TestProductsRecordsSearchForKnownUser(t *testing.T) {
	api := &stubCatalogAPI{page: upstream.ProductPage{Total: 1}}
	history := &stubHistory{}
	svc := NewService(api, history, testLogger())

	page, err := svc.Products(context.Background(), Filters{Texto: "polo", Page: 1}, 42)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, []string{"polo"}, history.pushed)
	assert.Equal(t, []string{"polo"}, api.lastQuery["texto"])
}

func TestProductsSkipsHistoryForAnonymous(t *testing.T) {
	api := &stubCatalogAPI{}
	history := &stubHistory{}
	svc := NewService(api, history, testLogger())

	_, err := svc.Products(context.Background(), Filters{Texto: "polo", Page: 1}, 0)

	require.NoError(t, err)
	assert.Empty(t, history.pushed)
}

func TestProductsHistoryFailureDoesNotFailListing(t *testing.T) {
	api := &stubCatalogAPI{page: upstream.ProductPage{Total: 3}}
	history := &stubHistory{pushErr: errors.New("redis down")}
	svc := NewService(api, history, testLogger())

	page, err := svc.Products(context.Background(), Filters{Texto: "polo", Page: 1}, 42)

	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
}

func TestProductsPropagatesUpstreamError(t *testing.T) {
	api := &stubCatalogAPI{err: errors.New("boom")}
	svc := NewService(api, &stubHistory{}, testLogger())

	_, err := svc.Products(context.Background(), Filters{Page: 1}, 42)

	require.Error(t, err)
}

func TestRecentSearches(t *testing.T) {
	history := &stubHistory{stored: []string{"short", "polo"}}
	svc := NewService(&stubCatalogAPI{}, history, testLogger())

	terms, err := svc.RecentSearches(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, []string{"short", "polo"}, terms)
}

func TestRecentSearchesAnonymousEmpty(t *testing.T) {
	svc := NewService(&stubCatalogAPI{}, &stubHistory{stored: []string{"x"}}, testLogger())

	terms, err := svc.RecentSearches(context.Background(), 0)

	require.NoError(t, err)
	assert.Nil(t, terms)
}
