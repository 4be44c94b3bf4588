package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTP метрики
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"method", "path"},
	)
	HTTPRequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests in flight",
		},
	)

	// Проверки кодов пользователями
	CodeChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "code_checks_total",
			Help: "Total number of code checks by result",
		},
		[]string{"result"},
	)

	// Операции админки
	AdminOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_operations_total",
			Help: "Total number of admin operations by operation and result",
		},
		[]string{"operation", "result"},
	)
)

const (
	ResultOK           = "ok"
	ResultFound        = "found"
	ResultNotFound     = "not_found"
	ResultInvalid      = "invalid"
	ResultConflict     = "conflict"
	ResultUnauthorized = "unauthorized"
	ResultError        = "error"
)

var initOnce sync.Once

// InitMetrics регистрирует коллекторы в стандартном реестре. Повторный вызов ничего не делает.
// Go и process коллекторы реестр по умолчанию уже содержит.
func InitMetrics() {
	initOnce.Do(func() {
		prometheus.MustRegister(HTTPRequestsTotal)
		prometheus.MustRegister(HTTPRequestDuration)
		prometheus.MustRegister(HTTPRequestsInFlight)

		prometheus.MustRegister(CodeChecksTotal)
		prometheus.MustRegister(AdminOperationsTotal)
	})
}
