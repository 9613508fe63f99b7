package sink

import (
	"sync"

	"github.com/cayleygraph/quad"
	"github.com/diwise/chinook-rdf/pkg/rdf/types"
)

// Graph is an append-only, insertion ordered statement accumulator. It does
// not deduplicate. The zero value is ready to use.
type Graph struct {
	mu         sync.Mutex
	label      quad.Value
	statements []types.Statement
}

type GraphOption func(g *Graph)

// Named places every statement added to the graph in the named graph iri
func Named(iri quad.IRI) GraphOption {
	return func(g *Graph) {
		g.label = iri
	}
}

func New(options ...GraphOption) *Graph {
	g := &Graph{}

	for _, option := range options {
		option(g)
	}

	return g
}

func (g *Graph) AddStatement(subject, predicate quad.IRI, object quad.Value) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.statements = append(g.statements, types.Statement{
		Subject:   subject,
		Predicate: predicate,
		Object:    object,
		Label:     g.label,
	})
}

// AppendTo replays all statements, in order, into another sink
func (g *Graph) AppendTo(s types.Sink) {
	for _, st := range g.Statements() {
		s.AddStatement(st.Subject.(quad.IRI), st.Predicate.(quad.IRI), st.Object)
	}
}

// Statements returns a copy of the accumulated statements in insertion order
func (g *Graph) Statements() []types.Statement {
	g.mu.Lock()
	defer g.mu.Unlock()

	result := make([]types.Statement, len(g.statements))
	copy(result, g.statements)

	return result
}

func (g *Graph) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.statements)
}

func (g *Graph) Label() quad.Value {
	return g.label
}
