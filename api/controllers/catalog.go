package controllers

import (
	"net/http"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/api/middleware"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/api/responses"
	catalogsvc "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/catalog"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/logger"
)

// Products serves the filtered product listing. Search terms from
// signed-in shoppers feed their recent search history.
func Products(svc *catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := catalogsvc.ParseFilters(r.URL.Query())
		userID := middleware.UserIDFromContext(r.Context())

		page, err := svc.Products(r.Context(), filters, userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

func Categories(svc *catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.Categories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, categories)
	}
}

func FeaturedProducts(svc *catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		featured, err := svc.Featured(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, featured)
	}
}

func MaxPrice(svc *catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		price, err := svc.MaxPrice(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"precioMaximo": price})
	}
}

// RecentSearches returns the signed-in shopper's latest search terms.
func RecentSearches(svc *catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID <= 0 {
			responses.WriteError(r.Context(), logg, w, errUnauthorized())
			return
		}

		terms, err := svc.RecentSearches(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if terms == nil {
			terms = []string{}
		}
		responses.WriteSuccess(w, terms)
	}
}
