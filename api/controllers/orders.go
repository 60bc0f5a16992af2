package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/api/middleware"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/api/responses"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/api/validators"
	orderssvc "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/orders"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/upstream"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/logger"
)

// Orders lists the shopper's orders, newest first per the upstream.
func Orders(svc *orderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())

		orders, err := svc.ListByUser(r.Context(), bearer(r), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orders)
	}
}

type createOrderRequest struct {
	Direccion string `json:"direccion" validate:"required"`
}

// CreateOrder turns the session cart into a pending order.
func CreateOrder(svc *orderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orderID, err := svc.Create(r.Context(), bearer(r), upstream.CreateOrderRequest{
			IDUsuario: middleware.UserIDFromContext(r.Context()),
			IDCarrito: middleware.CartIDFromContext(r.Context()),
			Direccion: payload.Direccion,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]int64{"idPedido": orderID})
	}
}

func CancelOrder(svc *orderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := validators.ParseURLInt64(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Cancel(r.Context(), bearer(r), orderID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": "order canceled"})
	}
}

// SubmitPaymentReceipt forwards the multipart receipt upload to the
// upstream untouched.
func SubmitPaymentReceipt(svc *orderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := svc.SubmitReceipt(r.Context(), bearer(r), r.Header.Get("Content-Type"), r.Body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, raw)
	}
}

type paymentPreferenceRequest struct {
	IDPedido int64           `json:"idPedido" validate:"required"`
	Total    decimal.Decimal `json:"total"`
}

// CreatePaymentPreference opens a checkout preference for an order.
func CreatePaymentPreference(svc *orderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload paymentPreferenceRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		preference, err := svc.PaymentPreference(r.Context(), bearer(r), upstream.PaymentPreferenceRequest{
			IDPedido: payload.IDPedido,
			Total:    payload.Total,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, preference)
	}
}
