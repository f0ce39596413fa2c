package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values.
const (
	AppRequests  = "app_requests_total"
	UserCreated  = "user_created_total"
	UserUpdated  = "user_updated_total"
	UserPatched  = "user_patched_total"
	UserDeleted  = "user_deleted_total"
	UserConflict = "user_email_conflict_total"

	EventPublished = "user_event_published_total"
	EventFailed    = "user_event_failed_total"
	EventDropped   = "user_event_dropped_total"
)

func NewCounter(reg prometheus.Registerer) *prometheus.CounterVec {
	return promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "usermanager",
			Name:      "general_counters",
		},
		[]string{"result"})
}
