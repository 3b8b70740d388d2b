// Package metrics exposes Prometheus collectors for the HTTP surface and
// the progression engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Engine Metrics
var (
	EventsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsApplied,
			Help: HelpTextEventsApplied,
		},
		[]string{LabelType},
	)

	EventsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsRejected,
			Help: HelpTextEventsRejected,
		},
		[]string{LabelType},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	StreakTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStreakTicks,
			Help: HelpTextStreakTicks,
		},
	)

	BadgesAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBadgesAwarded,
			Help: HelpTextBadgesAwarded,
		},
		[]string{LabelSource},
	)

	QuestsReset = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestsReset,
			Help: HelpTextQuestsReset,
		},
		[]string{LabelType},
	)
)

// Economy Metrics
var (
	GoldEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldEarned,
			Help: HelpTextGoldEarned,
		},
	)

	GoldSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldSpent,
			Help: HelpTextGoldSpent,
		},
	)

	HPSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHPSpent,
			Help: HelpTextHPSpent,
		},
	)

	ImagesUploaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameImagesUploaded,
			Help: HelpTextImagesUploaded,
		},
		[]string{LabelPrefix},
	)
)
