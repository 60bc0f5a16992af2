package controllers

import (
	"net/http"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/api/middleware"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/api/responses"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/api/validators"
	cartsvc "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/cart"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/upstream"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/logger"
)

// CartView returns the shopper's cart lines with computed totals.
func CartView(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID := middleware.CartIDFromContext(r.Context())

		view, err := svc.View(r.Context(), bearer(r), cartID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartCount returns the badge count for the cart icon.
func CartCount(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID := middleware.CartIDFromContext(r.Context())

		count, err := svc.Count(r.Context(), bearer(r), cartID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int{"cantidad": count})
	}
}

type addToCartRequest struct {
	IDProducto int64 `json:"idProducto" validate:"required"`
	IDModelo   int64 `json:"idModelo" validate:"required"`
	IDTalla    int64 `json:"idTalla" validate:"required"`
	Cantidad   int   `json:"cantidad" validate:"required,min=1"`
}

// AddToCart adds a product model/size line to the shopper's cart. The
// cart id comes from the session claims, never the payload.
func AddToCart(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addToCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		err := svc.Add(r.Context(), bearer(r), upstream.AddToCartRequest{
			IDCarrito:  middleware.CartIDFromContext(r.Context()),
			IDProducto: payload.IDProducto,
			IDModelo:   payload.IDModelo,
			IDTalla:    payload.IDTalla,
			Cantidad:   payload.Cantidad,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"message": "added to cart"})
	}
}

type updateCartDetailRequest struct {
	Cantidad int `json:"cantidad" validate:"required,min=1"`
}

func UpdateCartDetail(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detailID, err := validators.ParseURLInt64(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateCartDetailRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdateQuantity(r.Context(), bearer(r), detailID, payload.Cantidad); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": "cart updated"})
	}
}

func RemoveCartDetail(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detailID, err := validators.ParseURLInt64(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Remove(r.Context(), bearer(r), detailID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": "line removed"})
	}
}
