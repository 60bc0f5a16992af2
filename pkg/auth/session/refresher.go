package session

import (
	"context"
	"errors"
	"time"

	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/auth"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/logger"
	"github.com/ThonyMarckDEV/ecommerce-storefront-gateway/pkg/metrics"
	"golang.org/x/sync/singleflight"
)

// DefaultRefreshThreshold triggers a refresh once the token has two
// minutes or less of validity left.
const DefaultRefreshThreshold = 2 * time.Minute

// ErrTokenUnchanged signals that the refresh endpoint answered with the
// token we already hold. Recoverable: the session stays as-is.
var ErrTokenUnchanged = errors.New("refresh returned an unchanged token")

// RefreshClient is the upstream surface needed to mint a fresh token.
type RefreshClient interface {
	RefreshToken(ctx context.Context, bearer string) (string, error)
}

// Refresher keeps the stored token from expiring during an active
// session. Concurrent callers (every mutating request plus the
// heartbeat) are coalesced into a single in-flight refresh.
type Refresher struct {
	api       RefreshClient
	session   *Session
	threshold time.Duration
	logg      *logger.Logger
	metrics   *metrics.SessionMetrics
	now       func() time.Time
	group     singleflight.Group
}

// RefresherOptions configures optional refresher behavior.
type RefresherOptions struct {
	Threshold time.Duration
	Logger    *logger.Logger
	Metrics   *metrics.SessionMetrics
	Now       func() time.Time
}

// NewRefresher builds a refresher bound to the shared session handle.
func NewRefresher(api RefreshClient, sess *Session, opts RefresherOptions) *Refresher {
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = DefaultRefreshThreshold
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Refresher{
		api:       api,
		session:   sess,
		threshold: threshold,
		logg:      opts.Logger,
		metrics:   opts.Metrics,
		now:       now,
	}
}

// EnsureFresh refreshes the stored token iff it expires within the
// threshold. It returns the best token currently known. A transport
// failure keeps the existing token in place and is reported to the
// caller without forcing a logout; logout decisions belong to the
// heartbeat's status check.
func (r *Refresher) EnsureFresh(ctx context.Context) (string, error) {
	token, ok := r.session.Get()
	if !ok {
		return "", nil
	}

	claims := auth.Decode(token)
	if claims == nil {
		// Malformed tokens fail closed at the guards; nothing to refresh.
		return token, nil
	}
	if auth.TimeToExpiry(claims, r.now()) > r.threshold {
		return token, nil
	}

	result, err, _ := r.group.Do("refresh", func() (any, error) {
		current, ok := r.session.Get()
		if !ok {
			return "", nil
		}
		fresh, err := r.api.RefreshToken(ctx, current)
		if err != nil {
			return current, err
		}
		if fresh == "" || fresh == current {
			return current, ErrTokenUnchanged
		}
		r.session.Set(fresh)
		return fresh, nil
	})

	latest, _ := result.(string)
	switch {
	case err == nil:
		r.metrics.IncRefresh("ok")
	case errors.Is(err, ErrTokenUnchanged):
		r.metrics.IncRefresh("unchanged")
		if r.logg != nil {
			r.logg.Warn(ctx, "token refresh returned an unchanged token")
		}
	default:
		r.metrics.IncRefresh("error")
		if r.logg != nil {
			r.logg.Error(ctx, "token refresh failed, keeping current token", err)
		}
	}
	return latest, err
}
