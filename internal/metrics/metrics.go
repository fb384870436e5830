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
	DomainFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scheme_domain_fetch_total",
			Help: "Total number of domain document fetches by outcome",
		},
		[]string{"category", "outcome"},
	)

	DomainFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "scheme_domain_fetch_duration_seconds",
			Help: "Duration of domain document fetches in seconds",
		},
		[]string{"category"},
	)

	QueryLookupTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scheme_query_lookup_total",
			Help: "Total number of assistant lookups by outcome (exact, fallback, none)",
		},
		[]string{"outcome"},
	)

	RankingTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scheme_ranking_total",
			Help: "Total number of profile rankings by outcome",
		},
		[]string{"outcome"},
	)

	RankingJudgmentsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scheme_ranking_judgments_dropped_total",
			Help: "Judgments dropped because they named no known scheme",
		},
	)
)
