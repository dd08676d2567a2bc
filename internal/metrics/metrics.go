// Package metrics exposes dashboard activity to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"SmartSprinkler.dashboard/internal/models"
)

const namespace = "sprinkler"

// Recorder holds the dashboard's collectors on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	analyses     prometheus.Counter
	sensorWrites *prometheus.CounterVec
	sprinklers   *prometheus.GaugeVec
	waterSaved   prometheus.Gauge
}

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		analyses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Number of completed irrigation analyses.",
		}),
		sensorWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sensor_writes_total",
			Help:      "Sensor value updates by outcome.",
		}, []string{"outcome"}),
		sprinklers: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sprinklers",
			Help:      "Sprinklers per status in the latest analysis.",
		}, []string{"status"}),
		waterSaved: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "water_saved_percent",
			Help:      "Share of parcels left dry in the latest analysis.",
		}),
	}
}

// ObserveAnalysis records the outcome of one analysis.
func (r *Recorder) ObserveAnalysis(stats models.AggregateStats) {
	r.analyses.Inc()
	r.sprinklers.WithLabelValues(string(models.StatusOn)).Set(float64(stats.CountOn))
	r.sprinklers.WithLabelValues(string(models.StatusOff)).Set(float64(stats.CountOff))
	r.waterSaved.Set(stats.PercentWaterSaved)
}

// ObserveSensorWrite counts one sensor update.
func (r *Recorder) ObserveSensorWrite(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "rejected"
	}
	r.sensorWrites.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
