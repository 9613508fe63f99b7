package chinook

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/diwise/chinook-rdf/pkg/rdf/errors"
	"github.com/diwise/chinook-rdf/pkg/rdf/literals"
	"github.com/diwise/chinook-rdf/pkg/rdf/types"
)

type triple struct {
	subject   quad.IRI
	predicate quad.IRI
	object    quad.Value
}

// entity collects the statements of a single row. Nothing reaches the sink
// until every decorator has run without error.
type entity struct {
	kind    Kind
	subject quad.IRI
	triples []triple
	err     error
}

type entityDecoratorFunc func(e *entity)

func (e *entity) add(subject, predicate quad.IRI, object quad.Value) {
	e.triples = append(e.triples, triple{subject: subject, predicate: predicate, object: object})
}

func (e *entity) fail(column string, err error) {
	e.err = fmt.Errorf("%s.%s: %w", e.kind, column, err)
}

func emit(sink types.Sink, kind Kind, key sql.Null[int64], decorators ...entityDecoratorFunc) error {
	if !key.Valid {
		return errors.NewMissingKeyError(string(kind), kind.KeyColumn())
	}

	e := &entity{
		kind:    kind,
		subject: Subject(kind, key.V),
	}

	e.add(e.subject, PredicateType, Class(kind))

	for _, decorator := range decorators {
		decorator(e)
		if e.err != nil {
			return e.err
		}
	}

	for _, t := range e.triples {
		sink.AddStatement(t.subject, t.predicate, t.object)
	}

	return nil
}

func text(predicate quad.IRI, value sql.Null[string]) entityDecoratorFunc {
	return func(e *entity) {
		if value.Valid {
			e.add(e.subject, predicate, literals.NewText(value.V))
		}
	}
}

// fullName joins first and last name with a space and trims the result,
// skipping the statement when nothing is left
func fullName(first, last sql.Null[string]) entityDecoratorFunc {
	return func(e *entity) {
		name := strings.TrimSpace(first.V + " " + last.V)
		if name != "" {
			e.add(e.subject, PredicateFullName, literals.NewText(name))
		}
	}
}

func integer(predicate quad.IRI, column string, value sql.Null[int64]) entityDecoratorFunc {
	return func(e *entity) {
		if !value.Valid {
			e.err = errors.NewMissingKeyError(string(e.kind), column)
			return
		}
		e.add(e.subject, predicate, literals.NewInteger(value.V))
	}
}

func decimal(predicate quad.IRI, column string, value Decimal, required bool) entityDecoratorFunc {
	return func(e *entity) {
		if !value.Valid {
			if required {
				e.err = errors.NewMissingKeyError(string(e.kind), column)
			}
			return
		}

		lit, err := value.Literal()
		if err != nil {
			e.fail(column, err)
			return
		}
		e.add(e.subject, predicate, lit)
	}
}

func dateTime(predicate quad.IRI, column string, value Timestamp) entityDecoratorFunc {
	return func(e *entity) {
		if !value.Valid {
			return
		}

		lit, err := value.Literal()
		if err != nil {
			e.fail(column, err)
			return
		}
		e.add(e.subject, predicate, lit)
	}
}

// refersTo adds an edge from the row's subject to another entity, if the
// foreign key is set
func refersTo(predicate quad.IRI, target Kind, key sql.Null[int64]) entityDecoratorFunc {
	return func(e *entity) {
		if key.Valid {
			e.add(e.subject, predicate, Subject(target, key.V))
		}
	}
}

// linksTo is refersTo for foreign keys the row cannot do without
func linksTo(predicate quad.IRI, target Kind, column string, key sql.Null[int64]) entityDecoratorFunc {
	return func(e *entity) {
		if !key.Valid {
			e.err = errors.NewMissingKeyError(string(e.kind), column)
			return
		}
		e.add(e.subject, predicate, Subject(target, key.V))
	}
}

// referredBy adds an edge that starts at the owning entity and ends at the
// row's subject
func referredBy(predicate quad.IRI, owner Kind, column string, key sql.Null[int64]) entityDecoratorFunc {
	return func(e *entity) {
		if !key.Valid {
			e.err = errors.NewMissingKeyError(string(e.kind), column)
			return
		}
		e.add(Subject(owner, key.V), predicate, e.subject)
	}
}
