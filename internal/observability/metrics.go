package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	FetchRemote = "remote"
	FetchEmpty  = "empty"
	FetchFailed = "failed"
	// FetchStale counts completions dropped because a newer fetch was issued.
	FetchStale = "stale"
)

const (
	SignupOK     = "ok"
	SignupDenied = "rejected"
	SignupFailed = "failed"

	// SignupInvalid counts form posts rejected before reaching the backend.
	SignupInvalid = "invalid"
)

const (
	UnregisterOK  = "ok"
	UnregisterErr = "failed"
)

var (
	fetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_board",
		Subsystem: "sync",
		Name:      "fetch_total",
		Help:      "Remote activity fetches by outcome.",
	}, []string{"outcome"})
	signupTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_board",
		Subsystem: "sync",
		Name:      "signup_total",
		Help:      "Signup submissions by outcome.",
	}, []string{"outcome"})
	unregisterTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_board",
		Subsystem: "sync",
		Name:      "unregister_total",
		Help:      "Best-effort unregister calls by outcome.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(fetchTotal, signupTotal, unregisterTotal)
}

func RecordFetch(outcome string) {
	fetchTotal.WithLabelValues(outcome).Inc()
}

func RecordSignup(outcome string) {
	signupTotal.WithLabelValues(outcome).Inc()
}

func RecordUnregister(outcome string) {
	unregisterTotal.WithLabelValues(outcome).Inc()
}
