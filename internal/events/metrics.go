package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsEmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "club_setup",
			Subsystem: "events",
			Name:      "emitted_total",
			Help:      "Total number of setup events dispatched to handlers",
		},
		[]string{"type", "status"},
	)

	eventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "club_setup",
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Total number of setup events published to the stream",
		},
		[]string{"type", "status"},
	)

	trackingTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "club_setup",
			Subsystem: "tracking",
			Name:      "transitions_total",
			Help:      "Total number of setup tracking transitions",
		},
		[]string{"transition", "status"},
	)

	graphqlOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "club_setup",
			Subsystem: "graphql",
			Name:      "operations_total",
			Help:      "Total number of GraphQL operations served",
		},
		[]string{"operation", "status"},
	)
)

func RecordEventEmitted(typ EventType, status string) {
	eventsEmittedTotal.WithLabelValues(string(typ), status).Inc()
}

func RecordEventPublished(typ EventType, status string) {
	eventsPublishedTotal.WithLabelValues(string(typ), status).Inc()
}

// RecordTransition counts a setup tracking state change.
func RecordTransition(transition, status string) {
	trackingTransitionsTotal.WithLabelValues(transition, status).Inc()
}

// RecordGraphQLOperation counts a served GraphQL operation.
func RecordGraphQLOperation(operation, status string) {
	graphqlOperationsTotal.WithLabelValues(operation, status).Inc()
}
