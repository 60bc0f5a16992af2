package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/enums"
)

type stubChecker struct {
	active bool
	err    error
	calls  int
}

func (s *stubChecker) Active(ctx context.Context) (bool, error) {
	s.calls++
	return s.active, s.err
}

func maintenanceRequest(role enums.Role) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/productos", nil)
	if role != "" {
		req = req.WithContext(WithRole(req.Context(), role))
	}
	return req
}

func TestMaintenanceBlocksShoppers(t *testing.T) {
	checker := &stubChecker{active: true}
	handler := Maintenance(checker, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run during maintenance")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, maintenanceRequest(enums.RoleCliente))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "maintenance")
}

func TestMaintenanceLetsStaffThrough(t *testing.T) {
	checker := &stubChecker{active: true}

	for _, role := range []enums.Role{enums.RoleAdmin, enums.RoleSuperAdmin} {
		ran := false
		handler := Maintenance(checker, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ran = true
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, maintenanceRequest(role))

		assert.True(t, ran, "role %s should bypass maintenance", role)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Zero(t, checker.calls, "staff bypass should not hit the checker")
}

func TestMaintenanceFailsOpen(t *testing.T) {
	checker := &stubChecker{err: errors.New("redis down")}
	ran := false
	handler := Maintenance(checker, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, maintenanceRequest(enums.RoleCliente))

	assert.True(t, ran)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMaintenanceInactivePassesThrough(t *testing.T) {
	checker := &stubChecker{active: false}
	ran := false
	handler := Maintenance(checker, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, maintenanceRequest(enums.RoleCliente))

	assert.True(t, ran)
	assert.Equal(t, 1, checker.calls)
}
