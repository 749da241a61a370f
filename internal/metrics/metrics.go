package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WizardSessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wizard_sessions_created_total",
			Help: "Total number of listing-intake wizard sessions created",
		},
	)

	ListingsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "listings_submitted_total",
			Help: "Total number of listing submissions accepted",
		},
	)

	ContactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of contact form submissions by outcome",
		},
		[]string{"outcome"},
	)
)
