package engine

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/seantiz/roster/internal/model"
)

// Metric label values for operation results.
const resultOK = "ok"

var (
	enrollmentOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roster_enrollment_operations_total",
			Help: "Total number of signup and remove operations by result kind.",
		},
		[]string{"operation", "result"},
	)

	activityParticipants = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "roster_activity_participants",
			Help: "Current number of participants enrolled in each activity.",
		},
		[]string{"activity"},
	)

	activityCapacity = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "roster_activity_capacity",
			Help: "Maximum number of participants for each activity.",
		},
		[]string{"activity"},
	)
)

func init() {
	prometheus.MustRegister(enrollmentOps)
	prometheus.MustRegister(activityParticipants)
	prometheus.MustRegister(activityCapacity)

	// Pre-initialize counter label combinations so they appear in /metrics
	// with value 0 from startup, rather than only after first observation.
	for _, op := range []string{model.ActionSignup, model.ActionRemove} {
		for _, result := range []string{resultOK, KindInvalidEmail, KindActivityNotFound, KindAlreadyEnrolled, KindCapacityExceeded, KindNotEnrolled} {
			enrollmentOps.WithLabelValues(op, result)
		}
	}
}

func observeActivity(a model.Activity) {
	activityParticipants.WithLabelValues(a.Name).Set(float64(len(a.Participants)))
	activityCapacity.WithLabelValues(a.Name).Set(float64(a.MaxParticipants))
}
