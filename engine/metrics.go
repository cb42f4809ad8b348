package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instruments the game loop
// A nil *Metrics is valid and records nothing
type Metrics struct {
	ticks         prometheus.Counter
	frames        prometheus.Counter
	tickDuration  prometheus.Histogram
	sceneSwitches *prometheus.CounterVec
	entities      prometheus.Gauge
}

// NewMetrics creates the loop collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "arena",
			Name:      "ticks_total",
			Help:      "Loop ticks that reached the update step.",
		}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "arena",
			Name:      "frames_total",
			Help:      "Frames presented to the screen.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "arena",
			Name:      "tick_duration_seconds",
			Help:      "Time spent in input, update and render per tick.",
			Buckets:   []float64{0.0005, 0.001, 0.002, 0.004, 0.008, 0.016, 0.033, 0.066},
		}),
		sceneSwitches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arena",
			Name:      "scene_switches_total",
			Help:      "Scene activations by target scene.",
		}, []string{"scene"}),
		entities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "arena",
			Name:      "entities",
			Help:      "Entities in the active scene after the last update.",
		}),
	}

	for _, c := range []prometheus.Collector{m.ticks, m.frames, m.tickDuration, m.sceneSwitches, m.entities} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) tick() {
	if m != nil {
		m.ticks.Inc()
	}
}

func (m *Metrics) frame(d time.Duration) {
	if m != nil {
		m.frames.Inc()
		m.tickDuration.Observe(d.Seconds())
	}
}

func (m *Metrics) sceneSwitch(id SceneID) {
	if m != nil {
		m.sceneSwitches.WithLabelValues(id.String()).Inc()
	}
}

func (m *Metrics) setEntities(n int) {
	if m != nil {
		m.entities.Set(float64(n))
	}
}
