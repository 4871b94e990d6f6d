package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics defines counters for the decision kernel.
type Metrics interface {
	IncDecision(outcome string)
	IncVeto(source string)
	IncSafeModeEntered()
	IncExitRefused()
}

// Noop implements Metrics without emitting anything.
type Noop struct{}

func (Noop) IncDecision(string)  {}
func (Noop) IncVeto(string)      {}
func (Noop) IncSafeModeEntered() {}
func (Noop) IncExitRefused()     {}

// Prom implements Metrics backed by Prometheus counters.
type Prom struct {
	decisions       *prometheus.CounterVec
	vetoes          *prometheus.CounterVec
	safeModeEntered prometheus.Counter
	exitRefused     prometheus.Counter
	once            sync.Once
}

func NewProm(namespace string) *Prom {
	p := &Prom{
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decisions_total",
			Help:      "Decision cycles by outcome",
		}, []string{"outcome"}),
		vetoes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vetoes_total",
			Help:      "Vetoes by originating layer",
		}, []string{"source"}),
		safeModeEntered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "safe_mode_entered_total",
			Help:      "Safe mode entries",
		}),
		exitRefused: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "safe_mode_exit_refused_total",
			Help:      "Unauthorised safe-mode exit attempts refused",
		}),
	}
	p.register()
	return p
}

func (p *Prom) register() {
	p.once.Do(func() {
		prometheus.MustRegister(p.decisions, p.vetoes, p.safeModeEntered, p.exitRefused)
	})
}

func (p *Prom) IncDecision(outcome string) {
	p.decisions.WithLabelValues(outcome).Inc()
}

func (p *Prom) IncVeto(source string) {
	p.vetoes.WithLabelValues(source).Inc()
}

func (p *Prom) IncSafeModeEntered() {
	p.safeModeEntered.Inc()
}

func (p *Prom) IncExitRefused() {
	p.exitRefused.Inc()
}

// Handler returns an HTTP handler for /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
