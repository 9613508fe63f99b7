package encoding

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/diwise/chinook-rdf/pkg/rdf/types"
)

var rdfType = string(quad.IRI(rdf.Type).Full())

// only plain local names are abbreviated, anything else is written as a full IRI
var localName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// turtleEncoder writes Turtle, or TriG when graphs is set. Consecutive
// statements about the same subject share a block; the statement order is
// otherwise kept as is.
type turtleEncoder struct {
	prefixes Prefixes
	graphs   bool
}

func (e *turtleEncoder) Encode(w io.Writer, statements []types.Statement) error {
	bw := bufio.NewWriter(w)
	labels := e.prefixes.sortedLabels()

	for _, label := range labels {
		bw.WriteString("@prefix " + label + ": <" + e.prefixes[label] + "> .\n")
	}

	wrote := len(labels) > 0
	inBlock := false

	var graph, subject, predicate quad.Value

	closeBlock := func() {
		if inBlock {
			bw.WriteString(" .\n")
			inBlock = false
		}
	}

	for _, st := range statements {
		label := st.Label
		if !e.graphs {
			label = nil
		}

		if label != graph {
			closeBlock()
			if graph != nil {
				bw.WriteString("}\n")
			}
			if label != nil {
				if wrote {
					bw.WriteString("\n")
				}
				bw.WriteString(e.term(label, false) + " {\n")
				wrote = false
			}
			graph = label
		}

		indent := ""
		if graph != nil {
			indent = "    "
		}

		obj := e.term(st.Object, false)

		switch {
		case inBlock && st.Subject == subject && st.Predicate == predicate:
			bw.WriteString(" ,\n" + indent + "        " + obj)
		case inBlock && st.Subject == subject:
			bw.WriteString(" ;\n" + indent + "    " + e.term(st.Predicate, true) + " " + obj)
		default:
			closeBlock()
			if wrote {
				bw.WriteString("\n")
			}
			bw.WriteString(indent + e.term(st.Subject, false) + " " + e.term(st.Predicate, true) + " " + obj)
			inBlock = true
		}

		wrote = true
		subject, predicate = st.Subject, st.Predicate
	}

	closeBlock()
	if graph != nil {
		bw.WriteString("}\n")
	}

	return bw.Flush()
}

func (e *turtleEncoder) term(v quad.Value, isPredicate bool) string {
	switch t := v.(type) {
	case quad.IRI:
		return e.iri(t, isPredicate)
	case quad.String:
		return quote(string(t))
	case quad.TypedString:
		return quote(string(t.Value)) + "^^" + e.iri(t.Type, false)
	case quad.LangString:
		return quote(string(t.Value)) + "@" + t.Lang
	default:
		return v.String()
	}
}

func (e *turtleEncoder) iri(v quad.IRI, isPredicate bool) string {
	full := string(v.Full())

	if isPredicate && full == rdfType {
		return "a"
	}

	prefix, namespace := "", ""
	for _, label := range e.prefixes.sortedLabels() {
		ns := e.prefixes[label]
		if ns != "" && len(ns) > len(namespace) && strings.HasPrefix(full, ns) {
			prefix, namespace = label, ns
		}
	}

	if namespace != "" && localName.MatchString(full[len(namespace):]) {
		return prefix + ":" + full[len(namespace):]
	}

	return "<" + full + ">"
}

func quote(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return "\"" + s + "\""
}
