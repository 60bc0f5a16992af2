package auth

import (
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload embedded in the session token. The gateway
// never verifies the signature; the upstream API signed the token and
// verifies it on every protected call, the claims here only steer
// client-side routing and refresh timing.
type Claims struct {
	UserID           int64      `json:"idUsuario"`
	CartID           int64      `json:"idCarrito"`
	Role             enums.Role `json:"rol"`
	EmailVerified    int        `json:"emailVerified"`
	ProfileImagePath string     `json:"perfilImagePath"`
	jwt.RegisteredClaims
}

// Verified reports whether the email-verification flag is set.
func (c *Claims) Verified() bool {
	return c != nil && c.EmailVerified == 1
}
