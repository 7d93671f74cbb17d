// Package metrics exposes Prometheus counters for auth outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	// LoginAttempts counts login requests by outcome.
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "journal_login_attempts_total",
		Help: "Login attempts partitioned by outcome.",
	}, []string{"outcome"})

	// Registrations counts registration requests by outcome.
	Registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "journal_registrations_total",
		Help: "Registration attempts partitioned by outcome.",
	}, []string{"outcome"})
)
