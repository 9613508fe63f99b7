package types

import (
	"github.com/cayleygraph/quad"
)

// Statement is a single (subject, predicate, object) fact. The Label is set
// only when a statement is placed in a named graph.
type Statement = quad.Quad

// Sink collects statements produced by the mappers. Implementations must be
// safe for concurrent use.
type Sink interface {
	AddStatement(subject, predicate quad.IRI, object quad.Value)
}

// SinkFunc adapts an ordinary function to the Sink interface
type SinkFunc func(subject, predicate quad.IRI, object quad.Value)

func (f SinkFunc) AddStatement(subject, predicate quad.IRI, object quad.Value) {
	f(subject, predicate, object)
}
