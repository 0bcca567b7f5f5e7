// metrics регистрирует прикладные метрики Prometheus: HTTP-запросы,
// выпуск кодов и токенов, работу фоновой очистки.
// Все методы *Metrics безопасны для nil-получателя (метрики выключены).
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "personnel_oauth"

// Metrics — набор коллекторов сервиса.
type Metrics struct {
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	tokens    *prometheus.CounterVec
	authorize *prometheus.CounterVec
	swept     *prometheus.CounterVec
}

// New создаёт коллекторы и регистрирует их в reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		tokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "oauth_token_requests_total",
			Help:      "Token endpoint outcomes by grant type.",
		}, []string{"grant_type", "outcome"}),
		authorize: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "oauth_authorize_requests_total",
			Help:      "Authorization endpoint outcomes.",
		}, []string{"outcome"}),
		swept: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "janitor_deleted_rows_total",
			Help:      "Rows removed by the background janitor.",
		}, []string{"kind"}),
	}

	reg.MustRegister(m.requests, m.duration, m.tokens, m.authorize, m.swept)

	return m
}

// ObserveRequest учитывает завершённый HTTP-запрос.
func (m *Metrics) ObserveRequest(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(dur.Seconds())
}

// ObserveToken учитывает исход запроса к token-эндпоинту.
// outcome — "issued" или OAuth-код ошибки.
func (m *Metrics) ObserveToken(grantType, outcome string) {
	if m == nil {
		return
	}

	if grantType == "" {
		grantType = "none"
	}
	m.tokens.WithLabelValues(grantType, outcome).Inc()
}

// ObserveAuthorize учитывает исход POST authorize.
func (m *Metrics) ObserveAuthorize(outcome string) {
	if m == nil {
		return
	}

	m.authorize.WithLabelValues(outcome).Inc()
}

// ObserveSweep учитывает строки, удалённые очисткой.
func (m *Metrics) ObserveSweep(kind string, n int64) {
	if m == nil || n <= 0 {
		return
	}

	m.swept.WithLabelValues(kind).Add(float64(n))
}
