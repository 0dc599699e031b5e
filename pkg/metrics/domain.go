package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DomainMetrics records counters for the habit-tracking core.
type DomainMetrics struct {
	streakLogs    *prometheus.CounterVec
	badgesAwarded *prometheus.CounterVec
	frameActions  *prometheus.CounterVec
}

// NewDomainMetrics registers the domain metrics on the provided registerer.
func NewDomainMetrics(reg prometheus.Registerer) *DomainMetrics {
	if reg == nil {
		return &DomainMetrics{}
	}
	streakLogs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "streak_logs_total",
		Help: "Streak log entries recorded, by adherence.",
	}, []string{"adherent"})
	badgesAwarded := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "badges_awarded_total",
		Help: "Badges awarded, by criteria type.",
	}, []string{"criteria_type"})
	frameActions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "frame_actions_total",
		Help: "Social frame button actions handled.",
	}, []string{"action"})
	reg.MustRegister(streakLogs, badgesAwarded, frameActions)
	return &DomainMetrics{
		streakLogs:    streakLogs,
		badgesAwarded: badgesAwarded,
		frameActions:  frameActions,
	}
}

// IncStreakLog counts one recorded log entry.
func (m *DomainMetrics) IncStreakLog(adherent bool) {
	if m == nil || m.streakLogs == nil {
		return
	}
	label := "false"
	if adherent {
		label = "true"
	}
	m.streakLogs.WithLabelValues(label).Inc()
}

// IncBadgeAwarded counts one badge award for the named criteria type.
func (m *DomainMetrics) IncBadgeAwarded(criteriaType string) {
	if m == nil || m.badgesAwarded == nil {
		return
	}
	m.badgesAwarded.WithLabelValues(normalizeLabel(criteriaType)).Inc()
}

// IncFrameAction counts one handled frame action.
func (m *DomainMetrics) IncFrameAction(action string) {
	if m == nil || m.frameActions == nil {
		return
	}
	m.frameActions.WithLabelValues(normalizeLabel(action)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
