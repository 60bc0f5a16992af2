package auth

import (
	"context"
	"strings"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/internal/upstream"
	pkgauth "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/auth"
	pkgerrors "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/errors"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/logger"
)

type authAPI interface {
	Login(ctx context.Context, req upstream.LoginRequest) (string, error)
	LoginGoogle(ctx context.Context, req upstream.GoogleLoginRequest) (string, error)
	RegisterUser(ctx context.Context, req upstream.RegisterRequest) (string, error)
	RegisterUserGoogle(ctx context.Context, req upstream.GoogleRegisterRequest) (string, error)
}

type googleChecker interface {
	Verify(ctx context.Context, rawIDToken string) (GoogleIdentity, error)
}

// Service exchanges credentials for session tokens. It never stores
// tokens itself; callers own the cookie.
type Service struct {
	api    authAPI
	google googleChecker
	logg   *logger.Logger
}

func NewService(api authAPI, google googleChecker, logg *logger.Logger) *Service {
	return &Service{api: api, google: google, logg: logg}
}

// Login exchanges email and password for a token. The token is decoded
// once to confirm it carries usable session claims before handing it
// to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	token, err := s.api.Login(ctx, upstream.LoginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	return s.checkToken(ctx, token)
}

// LoginGoogle verifies the Google ID token locally, then exchanges it
// for a session token.
func (s *Service) LoginGoogle(ctx context.Context, idToken string) (string, error) {
	if s.google == nil {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "google sign-in is not configured")
	}
	if _, err := s.google.Verify(ctx, idToken); err != nil {
		return "", err
	}
	token, err := s.api.LoginGoogle(ctx, upstream.GoogleLoginRequest{IDToken: idToken})
	if err != nil {
		return "", err
	}
	return s.checkToken(ctx, token)
}

// Register creates an account. Registration logs the user in, so the
// issued token goes through the same claim check as a login.
func (s *Service) Register(ctx context.Context, req upstream.RegisterRequest) (string, error) {
	token, err := s.api.RegisterUser(ctx, req)
	if err != nil {
		return "", err
	}
	return s.checkToken(ctx, token)
}

func (s *Service) RegisterGoogle(ctx context.Context, idToken string) (string, error) {
	if s.google == nil {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "google sign-in is not configured")
	}
	if _, err := s.google.Verify(ctx, idToken); err != nil {
		return "", err
	}
	token, err := s.api.RegisterUserGoogle(ctx, upstream.GoogleRegisterRequest{IDToken: idToken})
	if err != nil {
		return "", err
	}
	return s.checkToken(ctx, token)
}

func (s *Service) checkToken(ctx context.Context, token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", pkgerrors.New(pkgerrors.CodeUpstream, "auth endpoint returned no token")
	}
	claims := pkgauth.Decode(token)
	if claims == nil || claims.UserID <= 0 || !claims.Role.IsValid() {
		s.logg.Warn(ctx, "auth endpoint returned a token without usable claims")
		return "", pkgerrors.New(pkgerrors.CodeUpstream, "auth endpoint returned an unusable token")
	}
	return token, nil
}
