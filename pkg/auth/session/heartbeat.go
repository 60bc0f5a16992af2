package session

import (
	"context"
	"time"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/auth"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/enums"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/logger"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/metrics"
	"go.uber.org/multierr"
)

// DefaultHeartbeatInterval matches the storefront's 10 second cadence.
const DefaultHeartbeatInterval = 10 * time.Second

// DefaultVerdictTTL bounds how long a cached loggedOff verdict keeps
// answering beats without consulting the server again.
const DefaultVerdictTTL = 30 * time.Second

// ActivityClient is the upstream surface the heartbeat talks to.
type ActivityClient interface {
	UpdateActivity(ctx context.Context, bearer string, userID int64) error
	CheckStatus(ctx context.Context, bearer string, userID int64) (enums.SessionStatus, error)
}

// VerdictCache remembers loggedOff verdicts so another tab beating with
// the same stale cookie logs off without a second upstream round trip.
// pkg/redis.Client satisfies it.
type VerdictCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	SessionStatusKey(userID int64) string
}

// Heartbeat refreshes the token and asserts liveness on a fixed
// interval. A forced logout happens only on an explicit loggedOff
// verdict from the server; a network blip never logs the user out.
type Heartbeat struct {
	refresher  *Refresher
	api        ActivityClient
	session    *Session
	interval   time.Duration
	skip       func() bool
	onLogout   func()
	verdicts   VerdictCache
	verdictTTL time.Duration
	logg       *logger.Logger
	metrics    *metrics.SessionMetrics
}

// HeartbeatOptions configures optional heartbeat behavior. Skip lets
// callers pause the cadence, e.g. while an admin console view is
// active.
type HeartbeatOptions struct {
	Interval   time.Duration
	Skip       func() bool
	OnLogout   func()
	Verdicts   VerdictCache
	VerdictTTL time.Duration
	Logger     *logger.Logger
	Metrics    *metrics.SessionMetrics
}

// NewHeartbeat builds a heartbeat bound to the shared session handle.
func NewHeartbeat(refresher *Refresher, api ActivityClient, sess *Session, opts HeartbeatOptions) *Heartbeat {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultHeartbeatInterval
	}
	ttl := opts.VerdictTTL
	if ttl <= 0 {
		ttl = DefaultVerdictTTL
	}
	return &Heartbeat{
		refresher:  refresher,
		api:        api,
		session:    sess,
		interval:   interval,
		skip:       opts.Skip,
		onLogout:   opts.OnLogout,
		verdicts:   opts.Verdicts,
		verdictTTL: ttl,
		logg:       opts.Logger,
		metrics:    opts.Metrics,
	}
}

// Run drives Beat on the configured interval until ctx is canceled.
func (h *Heartbeat) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := h.Beat(ctx); err != nil && h.logg != nil {
				h.logg.Warn(ctx, "heartbeat completed with errors: "+err.Error())
			}
		}
	}
}

// Beat performs one heartbeat: ensure the token is fresh, then notify
// the server of activity. When the activity ping fails, the server is
// asked for a session verdict before any logout decision; only an
// explicit loggedOff clears the session.
func (h *Heartbeat) Beat(ctx context.Context) error {
	if h.skip != nil && h.skip() {
		return nil
	}
	if _, ok := h.session.Get(); !ok {
		return nil
	}

	token, refreshErr := h.refresher.EnsureFresh(ctx)
	if token == "" {
		// Session vanished mid-beat.
		return refreshErr
	}

	claims := auth.Decode(token)
	if claims == nil {
		return refreshErr
	}

	if h.cachedLoggedOff(ctx, claims.UserID) {
		h.metrics.IncHeartbeat("logged_off")
		h.forceLogout(ctx)
		return refreshErr
	}

	activityErr := h.api.UpdateActivity(ctx, token, claims.UserID)
	if activityErr == nil {
		h.metrics.IncHeartbeat("ok")
		return refreshErr
	}

	verdict, statusErr := h.api.CheckStatus(ctx, token, claims.UserID)
	if statusErr != nil {
		// Unreachable server is not evidence of an invalidated session.
		h.metrics.IncHeartbeat("unreachable")
		if h.logg != nil {
			h.logg.Warn(ctx, "heartbeat could not verify session status, keeping session")
		}
		return multierr.Combine(refreshErr, activityErr, statusErr)
	}

	if verdict == enums.SessionLoggedOff {
		h.metrics.IncHeartbeat("logged_off")
		h.rememberLoggedOff(ctx, claims.UserID)
		h.forceLogout(ctx)
		return multierr.Combine(refreshErr, activityErr)
	}

	h.metrics.IncHeartbeat("degraded")
	return multierr.Combine(refreshErr, activityErr)
}

func (h *Heartbeat) cachedLoggedOff(ctx context.Context, userID int64) bool {
	if h.verdicts == nil {
		return false
	}
	value, err := h.verdicts.Get(ctx, h.verdicts.SessionStatusKey(userID))
	return err == nil && enums.SessionStatus(value) == enums.SessionLoggedOff
}

func (h *Heartbeat) rememberLoggedOff(ctx context.Context, userID int64) {
	if h.verdicts == nil {
		return
	}
	key := h.verdicts.SessionStatusKey(userID)
	if err := h.verdicts.Set(ctx, key, string(enums.SessionLoggedOff), h.verdictTTL); err != nil && h.logg != nil {
		h.logg.Warn(ctx, "failed to cache session verdict")
	}
}

func (h *Heartbeat) forceLogout(ctx context.Context) {
	h.session.Clear()
	h.metrics.IncForcedLogout("logged_off")
	if h.logg != nil {
		h.logg.Info(ctx, "session invalidated by server, forcing logout")
	}
	if h.onLogout != nil {
		h.onLogout()
	}
}
