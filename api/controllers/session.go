package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/api/responses"
	pkgauth "github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/auth"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/auth/session"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/enums"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/logger"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/metrics"
)

// sessionAPI is the upstream surface the token lifecycle endpoints
// need; internal/upstream.Client satisfies it.
type sessionAPI interface {
	session.RefreshClient
	session.ActivityClient
}

// SessionLifecycleOptions tunes the refresh and heartbeat endpoints.
type SessionLifecycleOptions struct {
	RefreshThreshold  time.Duration
	HeartbeatInterval time.Duration
	Verdicts          session.VerdictCache
	Metrics           *metrics.SessionMetrics
	Now               func() time.Time
}

func (o SessionLifecycleOptions) heartbeatInterval() time.Duration {
	if o.HeartbeatInterval > 0 {
		return o.HeartbeatInterval
	}
	return session.DefaultHeartbeatInterval
}

// heartbeatResponse tells the browser the verdict and when to beat
// again, so the cadence is configured server-side.
type heartbeatResponse struct {
	Status     string `json:"status"`
	NextBeatMs int64  `json:"nextBeatMs"`
}

// RefreshSession refreshes the cookie token when it is close to
// expiry. The response carries the session summary; the fresh token
// travels only in the replaced cookie. An unchanged token from the
// upstream is recoverable and the current cookie stays valid.
func RefreshSession(api sessionAPI, store *session.CookieStore, logg *logger.Logger, opts SessionLifecycleOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := store.Get(r)
		if !ok {
			responses.WriteError(r.Context(), logg, w, errUnauthorized())
			return
		}

		sess := session.NewSession(token)
		refresher := session.NewRefresher(api, sess, session.RefresherOptions{
			Threshold: opts.RefreshThreshold,
			Logger:    logg,
			Metrics:   opts.Metrics,
			Now:       opts.Now,
		})

		latest, err := refresher.EnsureFresh(r.Context())
		if err != nil && !errors.Is(err, session.ErrTokenUnchanged) {
			// Keep the current cookie; a failed refresh is not a logout.
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if latest != "" && latest != token {
			store.Set(w, latest)
		}
		responses.WriteSuccess(w, newSessionResponse(latest))
	}
}

// SessionHeartbeat performs one heartbeat for the cookie session:
// refresh if needed, report activity, and on failure ask the server
// for its verdict. The cookie is cleared only when the server answers
// loggedOff; network failures leave the session alone.
func SessionHeartbeat(api sessionAPI, store *session.CookieStore, logg *logger.Logger, opts SessionLifecycleOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nextBeat := opts.heartbeatInterval().Milliseconds()

		token, ok := store.Get(r)
		if !ok {
			responses.WriteSuccess(w, heartbeatResponse{Status: string(enums.SessionLoggedOff), NextBeatMs: nextBeat})
			return
		}

		sess := session.NewSession(token)
		refresher := session.NewRefresher(api, sess, session.RefresherOptions{
			Threshold: opts.RefreshThreshold,
			Logger:    logg,
			Metrics:   opts.Metrics,
			Now:       opts.Now,
		})
		beat := session.NewHeartbeat(refresher, api, sess, session.HeartbeatOptions{
			Interval: opts.HeartbeatInterval,
			Verdicts: opts.Verdicts,
			Logger:   logg,
			Metrics:  opts.Metrics,
		})

		if err := beat.Beat(r.Context()); err != nil && logg != nil {
			logg.Warn(r.Context(), "heartbeat completed with errors: "+err.Error())
		}

		latest, alive := sess.Get()
		if !alive {
			store.Clear(w)
			responses.WriteSuccess(w, heartbeatResponse{Status: string(enums.SessionLoggedOff), NextBeatMs: nextBeat})
			return
		}
		if latest != token {
			store.Set(w, latest)
		}
		responses.WriteSuccess(w, heartbeatResponse{Status: string(enums.SessionLoggedOn), NextBeatMs: nextBeat})
	}
}

// SessionInfo reports the current session claims without contacting
// the upstream. Useful for view bootstrapping after a hard reload.
func SessionInfo(store *session.CookieStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := store.Get(r)
		if !ok {
			responses.WriteError(r.Context(), logg, w, errUnauthorized())
			return
		}
		insp := pkgauth.Inspect(token, time.Now())
		if insp.Claims == nil {
			responses.WriteError(r.Context(), logg, w, errUnauthorized())
			return
		}
		responses.WriteSuccess(w, newSessionResponse(token))
	}
}
