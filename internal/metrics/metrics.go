package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "feed"

// Metrics holds the collectors of one service instance on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	postsCreated        prometheus.Counter
	postsEdited         prometheus.Counter
	reactions           *prometheus.CounterVec
	rejected            *prometheus.CounterVec
	refreshes           *prometheus.CounterVec
	snapshotFailures    prometheus.Counter
	posts               prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		postsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "posts_created_total",
			Help:      "Posts added to the feed.",
		}),
		postsEdited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "posts_edited_total",
			Help:      "Posts whose title or content was replaced.",
		}),
		reactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reactions_total",
			Help:      "Reactions applied by kind.",
		}, []string{"kind"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_rejected_total",
			Help:      "Mutations that left the state unchanged, by operation and reason.",
		}, []string{"operation", "reason"}),
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_refreshes_total",
			Help:      "Notification refresh calls by result.",
		}, []string{"result"}),
		snapshotFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_save_failures_total",
			Help:      "Snapshots that could not be written to the repository.",
		}),
		posts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "posts",
			Help:      "Posts currently in the feed.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpRequestDuration,
		m.postsCreated,
		m.postsEdited,
		m.reactions,
		m.rejected,
		m.refreshes,
		m.snapshotFailures,
		m.posts,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) PostCreated(total int) {
	m.postsCreated.Inc()
	m.posts.Set(float64(total))
}

func (m *Metrics) PostEdited() {
	m.postsEdited.Inc()
}

func (m *Metrics) ReactionAdded(kind string) {
	m.reactions.WithLabelValues(kind).Inc()
}

func (m *Metrics) Rejected(operation, reason string) {
	m.rejected.WithLabelValues(operation, reason).Inc()
}

func (m *Metrics) NotificationsRefreshed(generated bool) {
	result := "noop"
	if generated {
		result = "generated"
	}
	m.refreshes.WithLabelValues(result).Inc()
}

func (m *Metrics) SnapshotSaveFailed() {
	m.snapshotFailures.Inc()
}

func (m *Metrics) SetPosts(total int) {
	m.posts.Set(float64(total))
}
