package auth

import (
	"context"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	pkgerrors "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/errors"
)

const googleIssuer = "https://accounts.google.com"

// GoogleVerifier checks Google ID tokens against Google's published
// keys before they are forwarded for account exchange. Tokens that do
// not name our client ID as audience are rejected here, not upstream.
type GoogleVerifier struct {
	verifier *oidc.IDTokenVerifier
}

func NewGoogleVerifier(ctx context.Context, clientID string) (*GoogleVerifier, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "google client id is not configured")
	}
	provider, err := oidc.NewProvider(ctx, googleIssuer)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to reach google oidc discovery")
	}
	return &GoogleVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
	}, nil
}

// GoogleIdentity is the subset of ID-token claims the gateway cares
// about; everything else stays inside the token we forward.
type GoogleIdentity struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
}

func (g *GoogleVerifier) Verify(ctx context.Context, rawIDToken string) (GoogleIdentity, error) {
	if strings.TrimSpace(rawIDToken) == "" {
		return GoogleIdentity{}, pkgerrors.New(pkgerrors.CodeValidation, "missing google id token")
	}
	idToken, err := g.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return GoogleIdentity{}, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "google id token rejected")
	}
	var identity GoogleIdentity
	if err := idToken.Claims(&identity); err != nil {
		return GoogleIdentity{}, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "google id token claims unreadable")
	}
	return identity, nil
}
