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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	TradesProposed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTradesProposed,
			Help: HelpTextTradesProposed,
		},
	)

	TradesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTradesCompleted,
			Help: HelpTextTradesCompleted,
		},
	)

	TradesDeclined = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTradesDeclined,
			Help: HelpTextTradesDeclined,
		},
	)

	TradesCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTradesCancelled,
			Help: HelpTextTradesCancelled,
		},
	)

	TradeExecutionsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTradesFailed,
			Help: HelpTextTradesFailed,
		},
	)

	OpportunityQueries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOpportunitiesServed,
			Help: HelpTextOpportunitiesServed,
		},
	)

	MatchQueries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMatchesServed,
			Help: HelpTextMatchesServed,
		},
	)
)
