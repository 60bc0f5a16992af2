package upstream

import (
	"context"
	"net/http"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/enums"
	pkgerrors "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/errors"
)

// LoginRequest is the credential payload for password logins.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleLoginRequest forwards a verified Google ID token upstream.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// RegisterRequest is the payload for password registrations.
type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleRegisterRequest is the payload for Google registrations.
type GoogleRegisterRequest struct {
	IDToken string `json:"idToken"`
}

// MaintenanceStatus is the platform maintenance flag.
type MaintenanceStatus struct {
	Estado  int    `json:"estado"`
	Mensaje string `json:"mensaje"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type statusResponse struct {
	Status enums.SessionStatus `json:"status"`
}

type idUsuarioBody struct {
	IDUsuario int64 `json:"idUsuario"`
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (string, error) {
	var resp tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/login", "", nil, req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// LoginGoogle exchanges a Google ID token for a session token.
func (c *Client) LoginGoogle(ctx context.Context, req GoogleLoginRequest) (string, error) {
	var resp tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/login-google", "", nil, req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// RegisterUser creates an account and returns the issued token.
func (c *Client) RegisterUser(ctx context.Context, req RegisterRequest) (string, error) {
	var resp tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/registerUser", "", nil, req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// RegisterUserGoogle creates an account from a Google identity.
func (c *Client) RegisterUserGoogle(ctx context.Context, req GoogleRegisterRequest) (string, error) {
	var resp tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/registerUserGoogle", "", nil, req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// RefreshToken asks for a fresh token using the current one as the
// bearer credential.
func (c *Client) RefreshToken(ctx context.Context, bearer string) (string, error) {
	var resp refreshResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/refresh-token", bearer, nil, struct{}{}, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", pkgerrors.New(pkgerrors.CodeUpstream, "refresh endpoint returned no token")
	}
	return resp.AccessToken, nil
}

// CheckStatus asks the server for its session verdict.
func (c *Client) CheckStatus(ctx context.Context, bearer string, userID int64) (enums.SessionStatus, error) {
	var resp statusResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/check-status", bearer, nil, idUsuarioBody{IDUsuario: userID}, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

// UpdateActivity records session liveness for the user.
func (c *Client) UpdateActivity(ctx context.Context, bearer string, userID int64) error {
	return c.doJSON(ctx, http.MethodPost, "/api/update-activity", bearer, nil, idUsuarioBody{IDUsuario: userID}, nil)
}

// Maintenance returns the platform maintenance flag.
func (c *Client) Maintenance(ctx context.Context) (MaintenanceStatus, error) {
	var resp MaintenanceStatus
	if err := c.doJSON(ctx, http.MethodGet, "/api/status-mantenimiento", "", nil, nil, &resp); err != nil {
		return MaintenanceStatus{}, err
	}
	return resp, nil
}
