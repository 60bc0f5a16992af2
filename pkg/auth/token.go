package auth

import (
	"time"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
)

// State classifies a raw token at inspection time.
type State int

const (
	StateMissing State = iota
	StateMalformed
	StateExpired
	StateActive
)

func (s State) String() string {
	switch s {
	case StateMissing:
		return "missing"
	case StateMalformed:
		return "malformed"
	case StateExpired:
		return "expired"
	case StateActive:
		return "active"
	}
	return "unknown"
}

// Inspection is the tagged result of decoding a token. Claims is set
// for StateExpired and StateActive, nil otherwise.
type Inspection struct {
	State  State
	Claims *Claims
}

var unverifiedParser = jwt.NewParser()

// Decode extracts the claims payload from the token's middle segment.
// Returns nil for any structurally invalid input, never panics.
func Decode(raw string) *Claims {
	if raw == "" {
		return nil
	}
	claims := &Claims{}
	if _, _, err := unverifiedParser.ParseUnverified(raw, claims); err != nil {
		return nil
	}
	return claims
}

// Inspect decodes the token and classifies it against the given clock.
func Inspect(raw string, now time.Time) Inspection {
	if raw == "" {
		return Inspection{State: StateMissing}
	}
	claims := Decode(raw)
	if claims == nil {
		return Inspection{State: StateMalformed}
	}
	if expiredAt(claims, now) {
		return Inspection{State: StateExpired, Claims: claims}
	}
	return Inspection{State: StateActive, Claims: claims}
}

// IsExpired reports whether the token should be treated as invalid:
// claims absent, exp absent, or exp at or before now.
func IsExpired(raw string, now time.Time) bool {
	claims := Decode(raw)
	if claims == nil {
		return true
	}
	return expiredAt(claims, now)
}

// TimeToExpiry returns how long the token remains valid. Zero or
// negative means expired; missing exp counts as already expired.
func TimeToExpiry(claims *Claims, now time.Time) time.Duration {
	if claims == nil || claims.ExpiresAt == nil {
		return 0
	}
	return time.Duration(claims.ExpiresAt.UnixMilli()-now.UnixMilli()) * time.Millisecond
}

func expiredAt(claims *Claims, now time.Time) bool {
	if claims.ExpiresAt == nil {
		return true
	}
	return claims.ExpiresAt.UnixMilli() <= now.UnixMilli()
}

// RoleOf projects the role claim, empty when absent or undecodable.
func RoleOf(raw string) enums.Role {
	if claims := Decode(raw); claims != nil {
		return claims.Role
	}
	return ""
}

// UserIDOf projects the user id claim, zero when absent.
func UserIDOf(raw string) int64 {
	if claims := Decode(raw); claims != nil {
		return claims.UserID
	}
	return 0
}

// CartIDOf projects the cart id claim, zero when absent.
func CartIDOf(raw string) int64 {
	if claims := Decode(raw); claims != nil {
		return claims.CartID
	}
	return 0
}

// EmailVerifiedOf projects the email-verification flag, false when absent.
func EmailVerifiedOf(raw string) bool {
	return Decode(raw).Verified()
}

// ProfileImageOf projects the profile image path, empty when absent.
func ProfileImageOf(raw string) string {
	if claims := Decode(raw); claims != nil {
		return claims.ProfileImagePath
	}
	return ""
}
