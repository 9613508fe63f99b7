package exporter

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	statements *prometheus.CounterVec
	rows       *prometheus.CounterVec
	rejected   *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		statements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chinook_rdf_statements_total",
			Help: "Number of statements emitted per entity kind.",
		}, []string{"kind"}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chinook_rdf_rows_total",
			Help: "Number of source rows read per entity kind.",
		}, []string{"kind"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chinook_rdf_rows_rejected_total",
			Help: "Number of source rows rejected by the mappers per entity kind.",
		}, []string{"kind"}),
	}

	var err error
	for _, cv := range []**prometheus.CounterVec{&m.statements, &m.rows, &m.rejected} {
		*cv, err = register(reg, *cv)
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

// register returns the existing collector if an identical one is already
// registered with reg
func register(reg prometheus.Registerer, cv *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	err := reg.Register(cv)
	if err == nil {
		return cv, nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			return existing, nil
		}
	}

	return nil, err
}
