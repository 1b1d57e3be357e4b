package exerciser

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts what runners do.
type Metrics struct {
	Operations *prometheus.CounterVec
	Checks     *prometheus.CounterVec
}

// NewMetrics creates the runner counters and registers them with reg, unless
// reg is nil. Counters that reg already holds are reused, so several runners
// may share a registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lists",
			Subsystem: "exerciser",
			Name:      "operations_total",
			Help:      "Operations performed against a collection, by kind and operation.",
		}, []string{"kind", "op"}),
		Checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lists",
			Subsystem: "exerciser",
			Name:      "invariant_checks_total",
			Help:      "Structural checks performed against a collection, by kind.",
		}, []string{"kind"}),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.Operations, err = register(reg, m.Operations); err != nil {
		return nil, err
	}
	if m.Checks, err = register(reg, m.Checks); err != nil {
		return nil, err
	}
	return m, nil
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			return existing, nil
		}
	}
	return nil, errors.Wrap(err, "cannot register exerciser metrics")
}

func (m *Metrics) observe(kind, op string) {
	m.Operations.WithLabelValues(kind, op).Inc()
}

func (m *Metrics) checked(kind string) {
	m.Checks.WithLabelValues(kind).Inc()
}
