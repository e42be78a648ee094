package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ProbeOutcomeValid       = "valid"
	ProbeOutcomeInvalid     = "invalid"
	ProbeOutcomeUnreachable = "unreachable"

	FetchOutcomeOK    = "ok"
	FetchOutcomeError = "error"
)

var (
	// Verificações de chave contra a Shorten.REST, por resultado
	credentialProbesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "connector_credential_probes_total",
			Help: "Total number of API key probes against Shorten.REST",
		},
		[]string{"outcome"},
	)

	clickFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "connector_click_fetches_total",
			Help: "Total number of click fetches against Shorten.REST",
		},
		[]string{"outcome"},
	)

	clicksFetched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "connector_clicks_fetched_total",
			Help: "Total number of click records received from Shorten.REST",
		},
	)

	storedCredentials = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "connector_stored_credentials",
			Help: "Stored API keys by outcome of the last credential audit",
		},
		[]string{"outcome"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	httpInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)
)

func RecordProbe(outcome string) {
	credentialProbesTotal.WithLabelValues(outcome).Inc()
}

func RecordFetch(outcome string, clicks int) {
	clickFetchesTotal.WithLabelValues(outcome).Inc()
	if clicks > 0 {
		clicksFetched.Add(float64(clicks))
	}
}

func SetStoredCredentials(valid, invalid, unreachable int) {
	storedCredentials.WithLabelValues(ProbeOutcomeValid).Set(float64(valid))
	storedCredentials.WithLabelValues(ProbeOutcomeInvalid).Set(float64(invalid))
	storedCredentials.WithLabelValues(ProbeOutcomeUnreachable).Set(float64(unreachable))
}

// Handler expõe o registro padrão no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware registra contagem, latência e requisições em andamento.
// route deve ser o padrão registrado no router para manter a cardinalidade baixa.
func Middleware(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			httpInFlight.Inc()
			defer httpInFlight.Dec()

			srw := &statusResponseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(srw, r)

			labels := prometheus.Labels{
				"method": r.Method,
				"route":  route,
				"status": strconv.Itoa(srw.status),
			}
			httpRequestsTotal.With(labels).Inc()
			httpRequestDuration.With(labels).Observe(time.Since(start).Seconds())
		})
	}
}

type statusResponseWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
