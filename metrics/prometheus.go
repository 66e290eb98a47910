package metrics

import "github.com/prometheus/client_golang/prometheus"

var HttpRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests received",
	},
	[]string{"endpoint", "status", "method"},
)

var HttpRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"endpoint", "method"},
)

var HttpErrorsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_errors_total",
		Help: "Total number of failed HTTP requests (4xx/5xx)",
	},
	[]string{"endpoint", "status", "method"},
)

var HttpRateLimitRejectionsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "http_rate_limit_rejections_total",
		Help: "Total number of HTTP requests rejected due to rate limiting",
	},
)

var MessagesSentTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "messages_sent_total",
		Help: "Total number of logical sends accepted",
	},
	[]string{"kind"},
)

var FanoutCopiesTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "fanout_copies_total",
		Help: "Total number of per-recipient message copies written",
	},
)

var ReceiptsDeliveredTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "receipts_delivered_total",
		Help: "Total number of delivery receipts written",
	},
)

var FanoutWriteFailuresTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fanout_write_failures_total",
		Help: "Total number of storage writes that failed during a send",
	},
	[]string{"step"},
)

var ReceiptsReadTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "receipts_read_total",
		Help: "Total number of receipts flipped to Read",
	},
)

var OrphansReassignedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "orphans_reassigned_total",
		Help: "Total number of contacts moved to another group after a group was renamed or deleted",
	},
)

var WorkerRestartsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "worker_restarts_total",
		Help: "Total number of background worker restarts after an error or a panic",
	},
	[]string{"worker"},
)

var ValueLogGCRunsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "badger_value_log_gc_runs_total",
		Help: "Total number of value log garbage collection passes by outcome",
	},
	[]string{"outcome"},
)

var PortalRSSBytes = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "portal_rss_bytes",
		Help: "Resident memory of the portal process at the last sample",
	},
)

var PortalCPUPercent = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "portal_cpu_percent",
		Help: "CPU usage of the portal process since it started, in percent",
	},
)

func InitAPIMetrics(registerer prometheus.Registerer) {
	registerer.MustRegister(HttpRequestsTotal)
	registerer.MustRegister(HttpRequestDuration)
	registerer.MustRegister(HttpErrorsTotal)
	registerer.MustRegister(HttpRateLimitRejectionsTotal)
}

func InitMessagingMetrics(registerer prometheus.Registerer) {
	registerer.MustRegister(MessagesSentTotal)
	registerer.MustRegister(FanoutCopiesTotal)
	registerer.MustRegister(ReceiptsDeliveredTotal)
	registerer.MustRegister(FanoutWriteFailuresTotal)
	registerer.MustRegister(ReceiptsReadTotal)
	registerer.MustRegister(OrphansReassignedTotal)
}

func InitRuntimeMetrics(registerer prometheus.Registerer) {
	registerer.MustRegister(WorkerRestartsTotal)
	registerer.MustRegister(ValueLogGCRunsTotal)
	registerer.MustRegister(PortalRSSBytes)
	registerer.MustRegister(PortalCPUPercent)
}
