package middleware

import (
	"context"
	"net/http"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/api/responses"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/enums"
	pkgerrors "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/errors"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/logger"
)

type maintenanceChecker interface {
	Active(ctx context.Context) (bool, error)
}

// Maintenance short-circuits shopper traffic while the store is closed.
// Staff roles pass so admins can keep working during the window. If the
// flag cannot be determined the store stays open.
func Maintenance(checker maintenanceChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromContext(r.Context())
			if role == enums.RoleAdmin || role == enums.RoleSuperAdmin {
				next.ServeHTTP(w, r)
				return
			}

			active, err := checker.Active(r.Context())
			if err != nil {
				if logg != nil {
					logg.Warn(r.Context(), "maintenance check failed, allowing request")
				}
				next.ServeHTTP(w, r)
				return
			}
			if active {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeMaintenance, "store is under maintenance"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
