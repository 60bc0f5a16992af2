package controllers

import (
	"net/http"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/api/responses"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/api/validators"
	adminsvc "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/admin"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/logger"
)

// Users lists every account for the superadmin console.
func Users(svc *adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.Users(r.Context(), bearer(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, users)
	}
}

// ToggleUserStatus enables or disables an account.
func ToggleUserStatus(svc *adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseURLInt64(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.ToggleUserStatus(r.Context(), bearer(r), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": "user status toggled"})
	}
}
