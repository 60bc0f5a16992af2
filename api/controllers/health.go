package controllers

import (
	"net/http"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/api/responses"
	maintenancesvc "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/maintenance"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/logger"
)

// Liveness answers as soon as the process can serve requests.
func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// MaintenanceStatus exposes the cached maintenance flag to the
// storefront shell before any session exists.
func MaintenanceStatus(svc *maintenancesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := svc.Status(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, status)
	}
}
