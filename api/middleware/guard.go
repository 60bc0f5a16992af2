package middleware

import (
	"context"
	"net/http"
	"time"

	pkgauth "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/auth"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/auth/session"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/enums"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/logger"
)

// Redirect targets shared by every guard.
const (
	LoginPath       = "/login"
	VerifyEmailPath = "/verificar-correo"
)

// GuardConfig parameterizes a route guard. The zero value is a
// protected route open to any authenticated, email-verified actor.
type GuardConfig struct {
	// AllowedRoles restricts the route to the listed roles. Empty
	// means any valid role.
	AllowedRoles []enums.Role

	// RequireVerifiedEmail bounces unverified accounts to the email
	// verification view. Ignored for public routes.
	RequireVerifiedEmail bool

	// Public marks routes that anonymous visitors may use. An
	// authenticated visitor on a public route is sent to their role's
	// home instead.
	Public bool
}

// Decision is the outcome of evaluating a guard against a token.
type Decision struct {
	Allow      bool
	RedirectTo string
}

var allow = Decision{Allow: true}

func redirect(to string) Decision {
	return Decision{RedirectTo: to}
}

// Evaluate applies the guard matrix to an inspected token. It is a
// pure function. A token past its exp is invalid for routing: the
// visitor is anonymous until the refresher produces a live one.
func Evaluate(cfg GuardConfig, insp pkgauth.Inspection) Decision {
	claims := insp.Claims
	if insp.State != pkgauth.StateActive || claims == nil || !claims.Role.IsValid() {
		if cfg.Public {
			return allow
		}
		return redirect(LoginPath)
	}

	if cfg.Public {
		return redirect(claims.Role.Home())
	}

	if cfg.RequireVerifiedEmail && !claims.Verified() {
		return redirect(VerifyEmailPath)
	}

	if len(cfg.AllowedRoles) > 0 && !roleAllowed(cfg.AllowedRoles, claims.Role) {
		return redirect(claims.Role.Home())
	}

	return allow
}

func roleAllowed(roles []enums.Role, role enums.Role) bool {
	for _, candidate := range roles {
		if candidate == role {
			return true
		}
	}
	return false
}

// Guard returns middleware enforcing cfg on every request. Allowed
// requests continue with the token and its identity claims seeded into
// the context; everything else is answered with a 302 to the decision's
// target.
func Guard(cfg GuardConfig, store *session.CookieStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _ := store.Get(r)
			insp := pkgauth.Inspect(token, time.Now())

			decision := Evaluate(cfg, insp)
			if !decision.Allow {
				http.Redirect(w, r, decision.RedirectTo, http.StatusFound)
				return
			}

			ctx := r.Context()
			if claims := insp.Claims; insp.State == pkgauth.StateActive && claims != nil {
				ctx = seedIdentity(ctx, token, claims, logg)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Identity seeds a live session's claims into the context without
// gating the request. Anonymous, malformed and expired visitors pass
// through untouched, so public routes can still personalize for
// signed-in shoppers.
func Identity(store *session.CookieStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _ := store.Get(r)
			insp := pkgauth.Inspect(token, time.Now())

			if claims := insp.Claims; insp.State == pkgauth.StateActive && claims != nil && claims.Role.IsValid() {
				r = r.WithContext(seedIdentity(r.Context(), token, claims, logg))
			}

			next.ServeHTTP(w, r)
		})
	}
}

func seedIdentity(ctx context.Context, token string, claims *pkgauth.Claims, logg *logger.Logger) context.Context {
	ctx = WithToken(ctx, token)
	ctx = WithUserID(ctx, claims.UserID)
	ctx = WithCartID(ctx, claims.CartID)
	ctx = WithRole(ctx, claims.Role)
	if logg != nil {
		ctx = logg.WithUserID(ctx, claims.UserID)
		ctx = logg.WithRole(ctx, claims.Role.String())
	}
	return ctx
}
