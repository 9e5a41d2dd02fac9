// Package metrics expõe os contadores Prometheus da sincronização de vendas
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultSuccess        = "success"
	ResultHTTPError      = "http_error"
	ResultTransportError = "transport_error"
	ResultMalformed      = "malformed"
	ResultFailure        = "failure"
)

var (
	FetchAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sales_sync",
		Name:      "fetch_attempts_total",
		Help:      "Tentativas de busca na API de vendas por resultado.",
	}, []string{"result"})

	LoadRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sales_sync",
		Name:      "load_runs_total",
		Help:      "Cargas no banco de dados por resultado.",
	}, []string{"result"})

	RecordsLoaded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sales_sync",
		Name:      "records_loaded_total",
		Help:      "Registros de vendas confirmados no banco de dados.",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sales_sync",
		Name:      "http_requests_total",
		Help:      "Requisições HTTP atendidas pela API.",
	}, []string{"method", "status_code"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sales_sync",
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
