package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SessionMetrics records token lifecycle activity.
type SessionMetrics struct {
	refresh      *prometheus.CounterVec
	heartbeat    *prometheus.CounterVec
	forcedLogout *prometheus.CounterVec
}

// NewSessionMetrics registers the session metrics on the provided registerer.
func NewSessionMetrics(reg prometheus.Registerer) *SessionMetrics {
	if reg == nil {
		return &SessionMetrics{}
	}
	refresh := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "session_refresh_total",
		Help: "Token refresh attempts by result.",
	}, []string{"result"})
	heartbeat := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "session_heartbeat_total",
		Help: "Heartbeat beats by result.",
	}, []string{"result"})
	forcedLogout := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "session_forced_logout_total",
		Help: "Forced logouts by reason.",
	}, []string{"reason"})
	reg.MustRegister(refresh, heartbeat, forcedLogout)
	return &SessionMetrics{
		refresh:      refresh,
		heartbeat:    heartbeat,
		forcedLogout: forcedLogout,
	}
}

// IncRefresh increments the refresh counter for the given result.
func (m *SessionMetrics) IncRefresh(result string) {
	if m == nil || m.refresh == nil {
		return
	}
	m.refresh.WithLabelValues(normalizeLabel(result)).Inc()
}

// IncHeartbeat increments the heartbeat counter for the given result.
func (m *SessionMetrics) IncHeartbeat(result string) {
	if m == nil || m.heartbeat == nil {
		return
	}
	m.heartbeat.WithLabelValues(normalizeLabel(result)).Inc()
}

// IncForcedLogout increments the forced logout counter for the given reason.
func (m *SessionMetrics) IncForcedLogout(reason string) {
	if m == nil || m.forcedLogout == nil {
		return
	}
	m.forcedLogout.WithLabelValues(normalizeLabel(reason)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
