package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "checkout",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"handler", "method", "status_code"},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status_code"},
	)

	TokenizeAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout",
			Subsystem: "flow",
			Name:      "tokenize_attempts_total",
			Help:      "Tokenize calls by payment method and outcome",
		},
		[]string{"payment_method", "outcome"},
	)

	WalletLoginRetriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout",
			Subsystem: "flow",
			Name:      "wallet_login_retries_total",
			Help:      "Wallet login sequences replayed after a retryable init error",
		},
	)
)

func init() {
	Registry.MustRegister(
		HTTPRequestDuration,
		HTTPRequestsTotal,
		TokenizeAttemptsTotal,
		WalletLoginRetriesTotal,
	)
}
