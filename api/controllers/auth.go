package controllers

import (
	"context"
	"net/http"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/api/responses"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/api/validators"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/upstream"
	pkgauth "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/auth"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/auth/session"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/logger"
)

// authService is the credential exchange surface the auth controllers
// need; internal/auth.Service satisfies it.
type authService interface {
	Login(ctx context.Context, email, password string) (string, error)
	LoginGoogle(ctx context.Context, idToken string) (string, error)
	Register(ctx context.Context, req upstream.RegisterRequest) (string, error)
	RegisterGoogle(ctx context.Context, idToken string) (string, error)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type googleTokenRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type registerRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Apellido string `json:"apellido" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// sessionResponse describes the session the cookie now carries. The
// token itself never appears in a response body.
type sessionResponse struct {
	Rol           string `json:"rol"`
	Home          string `json:"home"`
	IDUsuario     int64  `json:"idUsuario"`
	IDCarrito     int64  `json:"idCarrito,omitempty"`
	EmailVerified int    `json:"emailVerified"`
}

func newSessionResponse(token string) sessionResponse {
	claims := pkgauth.Decode(token)
	if claims == nil {
		return sessionResponse{}
	}
	return sessionResponse{
		Rol:           claims.Role.String(),
		Home:          claims.Role.Home(),
		IDUsuario:     claims.UserID,
		IDCarrito:     claims.CartID,
		EmailVerified: claims.EmailVerified,
	}
}

// Login exchanges credentials for a session cookie.
func Login(svc authService, store *session.CookieStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, err := svc.Login(r.Context(), payload.Email, payload.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Set(w, token)
		responses.WriteSuccess(w, newSessionResponse(token))
	}
}

// LoginGoogle exchanges a Google ID token for a session cookie.
func LoginGoogle(svc authService, store *session.CookieStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload googleTokenRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, err := svc.LoginGoogle(r.Context(), payload.IDToken)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Set(w, token)
		responses.WriteSuccess(w, newSessionResponse(token))
	}
}

// Register creates an account and signs the new user in.
func Register(svc authService, store *session.CookieStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload registerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, err := svc.Register(r.Context(), upstream.RegisterRequest{
			Nombre:   payload.Nombre,
			Apellido: payload.Apellido,
			Email:    payload.Email,
			Password: payload.Password,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Set(w, token)
		responses.WriteSuccessStatus(w, http.StatusCreated, newSessionResponse(token))
	}
}

// RegisterGoogle creates an account from a Google identity and signs
// the new user in.
func RegisterGoogle(svc authService, store *session.CookieStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload googleTokenRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, err := svc.RegisterGoogle(r.Context(), payload.IDToken)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Set(w, token)
		responses.WriteSuccessStatus(w, http.StatusCreated, newSessionResponse(token))
	}
}

// Logout clears the session cookie. Logging out without a session is
// still a success.
func Logout(store *session.CookieStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.Clear(w)
		responses.WriteSuccess(w, map[string]string{"message": "signed out"})
	}
}
