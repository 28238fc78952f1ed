// Package metrics exposes Prometheus counters for rule-check activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChecksExecuted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ercheck_checks_total",
			Help: "Total number of rule checks executed",
		},
		[]string{"phase"}, // function or assertion
	)

	ViolationsReported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ercheck_violations_total",
			Help: "Total number of rule violations reported",
		},
		[]string{"severity"},
	)

	RunsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ercheck_runs_total",
			Help: "Total number of completed rule-check runs",
		},
	)

	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ercheck_run_duration_seconds",
			Help:    "Time taken by a full rule-check run on one object",
			Buckets: prometheus.DefBuckets,
		},
	)
)
