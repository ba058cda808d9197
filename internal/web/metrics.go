// Prometheus text format metrics for the hue server.
package web

import (
	"fmt"
	"net/http"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"hue/internal/version"
)

// MetricsCollector collects and exposes Prometheus metrics
type MetricsCollector struct {
	// Counters
	requestsTotal *Counter
	colorLookups  *Counter
	mascotLookups *Counter

	// Histograms
	requestDuration *Histogram

	// Gauges
	goroutines  *Gauge
	memoryAlloc *Gauge

	startTime time.Time
}

// Counter is a monotonically increasing counter
type Counter struct {
	name   string
	help   string
	labels []string
	values sync.Map // map[string]*uint64
}

// Histogram tracks distributions of values
type Histogram struct {
	name    string
	help    string
	labels  []string
	buckets []float64
	values  sync.Map // map[string]*histogramValue
}

type histogramValue struct {
	mu      sync.Mutex
	sum     float64
	count   uint64
	buckets []uint64
}

// Gauge is a metric that can go up and down
type Gauge struct {
	name   string
	help   string
	labels []string
	values sync.Map // map[string]*float64
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector() *MetricsCollector {
	m := &MetricsCollector{
		startTime: time.Now(),
	}

	m.requestsTotal = &Counter{
		name:   "hue_requests_total",
		help:   "Total number of HTTP requests",
		labels: []string{"route", "status"},
	}

	m.colorLookups = &Counter{
		name:   "hue_color_lookups_total",
		help:   "Total number of color lookups",
		labels: []string{"outcome"},
	}

	m.mascotLookups = &Counter{
		name:   "hue_mascot_lookups_total",
		help:   "Total number of mascot lookups",
		labels: []string{"outcome"},
	}

	m.requestDuration = &Histogram{
		name:    "hue_request_duration_seconds",
		help:    "Duration of HTTP requests in seconds",
		labels:  []string{"route"},
		buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}

	m.goroutines = &Gauge{
		name:   "hue_goroutines",
		help:   "Number of goroutines",
		labels: []string{},
	}

	m.memoryAlloc = &Gauge{
		name:   "hue_memory_alloc_bytes",
		help:   "Allocated memory in bytes",
		labels: []string{},
	}

	return m
}

// RecordRequest records one served HTTP request
func (m *MetricsCollector) RecordRequest(route string, status int, duration time.Duration) {
	m.requestsTotal.Inc(route, strconv.Itoa(status))
	m.requestDuration.Observe(duration.Seconds(), route)
}

// RecordColorLookup records a color lookup outcome
func (m *MetricsCollector) RecordColorLookup(outcome string) {
	m.colorLookups.Inc(outcome)
}

// RecordMascotLookup records a mascot lookup outcome
func (m *MetricsCollector) RecordMascotLookup(outcome string) {
	m.mascotLookups.Inc(outcome)
}

// WritePrometheus writes metrics in Prometheus text format
func (m *MetricsCollector) WritePrometheus(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")

	// Update runtime metrics
	m.goroutines.Set(float64(runtime.NumGoroutine()))
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	m.memoryAlloc.Set(float64(memStats.Alloc))

	// Write process info
	fmt.Fprintf(w, "# HELP hue_info hue build information\n")
	fmt.Fprintf(w, "# TYPE hue_info gauge\n")
	fmt.Fprintf(w, "hue_info{version=\"%s\"} 1\n\n", version.Version)

	// Write uptime
	fmt.Fprintf(w, "# HELP hue_uptime_seconds Time since the server started\n")
	fmt.Fprintf(w, "# TYPE hue_uptime_seconds counter\n")
	fmt.Fprintf(w, "hue_uptime_seconds %.3f\n\n", time.Since(m.startTime).Seconds())

	m.writeCounter(w, m.requestsTotal)
	m.writeCounter(w, m.colorLookups)
	m.writeCounter(w, m.mascotLookups)

	m.writeHistogram(w, m.requestDuration)

	m.writeGauge(w, m.goroutines)
	m.writeGauge(w, m.memoryAlloc)
}

func (m *MetricsCollector) writeCounter(w http.ResponseWriter, c *Counter) {
	fmt.Fprintf(w, "# HELP %s %s\n", c.name, c.help)
	fmt.Fprintf(w, "# TYPE %s counter\n", c.name)

	var keys []string
	c.values.Range(func(key, value interface{}) bool {
		keys = append(keys, key.(string))
		return true
	})
	sort.Strings(keys)

	for _, key := range keys {
		val, _ := c.values.Load(key)
		if ptr, ok := val.(*uint64); ok {
			fmt.Fprintf(w, "%s%s %d\n", c.name, key, atomic.LoadUint64(ptr))
		}
	}
	fmt.Fprintln(w)
}

func (m *MetricsCollector) writeHistogram(w http.ResponseWriter, h *Histogram) {
	fmt.Fprintf(w, "# HELP %s %s\n", h.name, h.help)
	fmt.Fprintf(w, "# TYPE %s histogram\n", h.name)

	var keys []string
	h.values.Range(func(key, value interface{}) bool {
		keys = append(keys, key.(string))
		return true
	})
	sort.Strings(keys)

	for _, key := range keys {
		val, _ := h.values.Load(key)
		if hv, ok := val.(*histogramValue); ok {
			hv.mu.Lock()
			cumulative := uint64(0)
			for i, bucket := range h.buckets {
				cumulative += hv.buckets[i]
				bucketLabel := key
				if bucketLabel != "" {
					bucketLabel = bucketLabel[:len(bucketLabel)-1] + fmt.Sprintf(",le=\"%.3f\"}", bucket)
				} else {
					bucketLabel = fmt.Sprintf("{le=\"%.3f\"}", bucket)
				}
				fmt.Fprintf(w, "%s_bucket%s %d\n", h.name, bucketLabel, cumulative)
			}
			// +Inf bucket
			cumulative += hv.buckets[len(h.buckets)]
			infLabel := key
			if infLabel != "" {
				infLabel = infLabel[:len(infLabel)-1] + ",le=\"+Inf\"}"
			} else {
				infLabel = "{le=\"+Inf\"}"
			}
			fmt.Fprintf(w, "%s_bucket%s %d\n", h.name, infLabel, cumulative)

			fmt.Fprintf(w, "%s_sum%s %.6f\n", h.name, key, hv.sum)
			fmt.Fprintf(w, "%s_count%s %d\n", h.name, key, hv.count)
			hv.mu.Unlock()
		}
	}
	fmt.Fprintln(w)
}

func (m *MetricsCollector) writeGauge(w http.ResponseWriter, g *Gauge) {
	fmt.Fprintf(w, "# HELP %s %s\n", g.name, g.help)
	fmt.Fprintf(w, "# TYPE %s gauge\n", g.name)

	var keys []string
	g.values.Range(func(key, value interface{}) bool {
		keys = append(keys, key.(string))
		return true
	})
	sort.Strings(keys)

	for _, key := range keys {
		val, _ := g.values.Load(key)
		if ptr, ok := val.(*float64); ok {
			fmt.Fprintf(w, "%s%s %.6f\n", g.name, key, *ptr)
		}
	}
	fmt.Fprintln(w)
}

// Counter methods
func (c *Counter) Inc(labelValues ...string) {
	c.Add(1, labelValues...)
}

func (c *Counter) Add(delta uint64, labelValues ...string) {
	key := c.labelsToKey(labelValues)
	val, _ := c.values.LoadOrStore(key, new(uint64))
	atomic.AddUint64(val.(*uint64), delta)
}

func (c *Counter) labelsToKey(values []string) string {
	return labelsToKey(c.labels, values)
}

// Histogram methods
func (h *Histogram) Observe(value float64, labelValues ...string) {
	key := h.labelsToKey(labelValues)

	val, _ := h.values.LoadOrStore(key, &histogramValue{
		buckets: make([]uint64, len(h.buckets)+1), // +1 for +Inf
	})
	hv := val.(*histogramValue)

	hv.mu.Lock()
	defer hv.mu.Unlock()

	hv.sum += value
	hv.count++

	bucketIdx := len(h.buckets) // Default to +Inf
	for i, bound := range h.buckets {
		if value <= bound {
			bucketIdx = i
			break
		}
	}
	hv.buckets[bucketIdx]++
}

func (h *Histogram) labelsToKey(values []string) string {
	return labelsToKey(h.labels, values)
}

// Gauge methods
func (g *Gauge) Set(value float64, labelValues ...string) {
	key := g.labelsToKey(labelValues)
	ptr := new(float64)
	*ptr = value
	g.values.Store(key, ptr)
}

func (g *Gauge) labelsToKey(values []string) string {
	return labelsToKey(g.labels, values)
}

func labelsToKey(labels, values []string) string {
	if len(labels) == 0 || len(values) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(labels))
	for i, label := range labels {
		if i < len(values) {
			pairs = append(pairs, fmt.Sprintf("%s=\"%s\"", label, values[i]))
		}
	}
	return "{" + strings.Join(pairs, ",") + "}"
}

// routeLabel collapses unknown paths into one label value so the
// requests counter keeps a bounded cardinality
func routeLabel(path string) string {
	switch path {
	case "/", "/color", "/get-colors", "/get-animal", "/healthz", "/metrics":
		return path
	default:
		return "other"
	}
}

// MetricsMiddleware records request counts and latency per route
func MetricsMiddleware(m *MetricsCollector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			m.RecordRequest(routeLabel(r.URL.Path), wrapped.statusCode, time.Since(start))
		})
	}
}

// handleMetrics handles the /metrics endpoint
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if s.metrics == nil {
		http.Error(w, "Metrics not enabled", http.StatusNotImplemented)
		return
	}

	s.metrics.WritePrometheus(w)
}
