package controllers

import (
	"net/http"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/api/middleware"
	pkgerrors "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/errors"
)

func errUnauthorized() error {
	return pkgerrors.New(pkgerrors.CodeUnauthorized, "session required")
}

// bearer returns the guard-approved token for upstream calls.
func bearer(r *http.Request) string {
	return middleware.TokenFromContext(r.Context())
}
