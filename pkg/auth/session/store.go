package session

import (
	"net/http"
)

// DefaultCookieName is the canonical token cookie. Historically the
// token was also mirrored into a browser-local key of the same name;
// the cookie is now the single source of truth.
const DefaultCookieName = "jwt"

// CookieStore persists the bearer token in a session cookie scoped to
// path "/" with no explicit expiry.
type CookieStore struct {
	name   string
	domain string
	secure bool
}

// CookieOptions configures the issued cookie.
type CookieOptions struct {
	Name   string
	Domain string
	Secure bool
}

// NewCookieStore builds the canonical token store.
func NewCookieStore(opts CookieOptions) *CookieStore {
	name := opts.Name
	if name == "" {
		name = DefaultCookieName
	}
	return &CookieStore{
		name:   name,
		domain: opts.Domain,
		secure: opts.Secure,
	}
}

// Name returns the cookie name in use.
func (s *CookieStore) Name() string {
	return s.name
}

// Get reads the raw token from the request. Absence is (value=empty,
// ok=false), never an error.
func (s *CookieStore) Get(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(s.name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Set overwrites the stored token.
func (s *CookieStore) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		Domain:   s.domain,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear removes the token by issuing an immediately expired cookie.
// Calling Clear on an already empty store is a no-op.
func (s *CookieStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		Domain:   s.domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
