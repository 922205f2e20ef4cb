package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameTradesProposed      = "trades_proposed_total"
	MetricNameTradesCompleted     = "trades_completed_total"
	MetricNameTradesDeclined      = "trades_declined_total"
	MetricNameTradesCancelled     = "trades_cancelled_total"
	MetricNameTradesFailed        = "trade_executions_failed_total"
	MetricNameOpportunitiesServed = "opportunity_queries_total"
	MetricNameMatchesServed       = "match_queries_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextTradesProposed      = "Total number of trades proposed"
	HelpTextTradesCompleted     = "Total number of trades completed"
	HelpTextTradesDeclined      = "Total number of trades declined"
	HelpTextTradesCancelled     = "Total number of trades cancelled"
	HelpTextTradesFailed        = "Total number of trade executions that failed the availability re-check"
	HelpTextOpportunitiesServed = "Total number of trade opportunity queries served"
	HelpTextMatchesServed       = "Total number of mutual match queries served"
)

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
)

// HTTPLatencyBuckets are the histogram buckets for request latency, in
// seconds.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// Log messages
const (
	LogMsgEventMetricsRegistered = "Event metrics collector registered"
)
