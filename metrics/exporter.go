// Package metrics exposes the status registry to Prometheus
package metrics

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/lixenwraith/gravity-sandbox/status"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gravity_sandbox"

// Exporter is an unchecked prometheus.Collector over a status.Registry
// Metric set follows whatever systems registered
type Exporter struct {
	status *status.Registry
}

func NewExporter(reg *status.Registry) *Exporter {
	return &Exporter{status: reg}
}

// Describe sends nothing, marking the collector unchecked
func (e *Exporter) Describe(chan<- *prometheus.Desc) {}

// Collect snapshots every registered status metric
// Labels export as <name>_info with the text in a "value" label
func (e *Exporter) Collect(ch chan<- prometheus.Metric) {
	for _, sm := range e.status.Snapshot() {
		help := sm.Help
		if help == "" {
			help = "status " + sm.Name
		}

		switch sm.Kind {
		case status.KindCounter:
			desc := prometheus.NewDesc(MetricName(sm.Name), help, nil, nil)
			ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, sm.Value)
		case status.KindLabel:
			desc := prometheus.NewDesc(MetricName(sm.Name)+"_info", help, []string{"value"}, nil)
			ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, sm.Value, sm.Text)
		default:
			desc := prometheus.NewDesc(MetricName(sm.Name), help, nil, nil)
			ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, sm.Value)
		}
	}
}

// MetricName converts a dotted status key to a namespaced Prometheus name
func MetricName(key string) string {
	return namespace + "_" + strings.NewReplacer(".", "_", "-", "_").Replace(key)
}

// Server serves /metrics for one exporter on its own registry
type Server struct {
	registry *prometheus.Registry
	srv      *http.Server
}

// NewServer registers the exporter and prepares an HTTP server on addr
func NewServer(addr string, exp *Exporter) (*Server, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(exp); err != nil {
		return nil, errors.Wrap(err, "register status exporter")
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return &Server{
		registry: reg,
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Gatherer exposes the backing registry
func (s *Server) Gatherer() prometheus.Gatherer {
	return s.registry
}

// Start serves in the background; listen failures are logged, never fatal
func (s *Server) Start() {
	go func() {
		log.Printf("metrics: serving on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics: %v", err)
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return errors.Wrap(s.srv.Shutdown(ctx), "metrics shutdown")
}
