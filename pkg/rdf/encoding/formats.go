package encoding

import (
	"io"
	"sort"
	"strings"

	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"
	"github.com/diwise/chinook-rdf/pkg/rdf/errors"
	"github.com/diwise/chinook-rdf/pkg/rdf/literals"
	"github.com/diwise/chinook-rdf/pkg/rdf/types"
	"github.com/munnerz/goautoneg"
)

// Format specifies the output serialization format
type Format string

const (
	FormatTurtle Format = "turtle"
	FormatTriG   Format = "trig"
	FormatNQuads Format = "nquads"
)

// FormatInfo provides metadata about an output format
type FormatInfo struct {
	Name      Format
	MIMEType  string
	Extension string
}

var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {Name: FormatTurtle, MIMEType: "text/turtle", Extension: ".ttl"},
	FormatTriG:   {Name: FormatTriG, MIMEType: "application/trig", Extension: ".trig"},
	FormatNQuads: {Name: FormatNQuads, MIMEType: "application/n-quads", Extension: ".nq"},
}

// ParseFormat accepts a format name or one of the registered file extensions
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))

	for f, info := range FormatRegistry {
		if n == string(f) || n == info.Extension || n == strings.TrimPrefix(info.Extension, ".") {
			return f, nil
		}
	}

	return "", errors.NewUnsupportedFormatError(name)
}

// FormatFromAccept picks the registered format with the highest q-value in an
// Accept header. Media types with q=0 are refused and wildcards resolve to
// Turtle.
func FormatFromAccept(accept string) (Format, bool) {
	if strings.TrimSpace(accept) == "" {
		return FormatTurtle, true
	}

	for _, clause := range goautoneg.ParseAccept(accept) {
		if clause.Q <= 0 {
			continue
		}

		if clause.Type == "*" || (clause.Type == "text" && clause.SubType == "*") {
			return FormatTurtle, true
		}

		mediaType := strings.ToLower(clause.Type + "/" + clause.SubType)
		for f, info := range FormatRegistry {
			if info.MIMEType == mediaType {
				return f, true
			}
		}
	}

	return "", false
}

// Prefixes maps a prefix label to a namespace IRI. The empty label is the
// default namespace.
type Prefixes map[string]string

// DefaultPrefixes returns the prefixes every document is written with
func DefaultPrefixes(defaultNamespace string) Prefixes {
	return Prefixes{
		"":     defaultNamespace,
		"rdf":  rdf.NS,
		"rdfs": rdfs.NS,
		"xsd":  literals.XSDNamespace,
	}
}

func (p Prefixes) sortedLabels() []string {
	labels := make([]string, 0, len(p))
	for k := range p {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return labels
}

type Encoder interface {
	Encode(w io.Writer, statements []types.Statement) error
}

func NewEncoder(format Format, prefixes Prefixes) (Encoder, error) {
	switch format {
	case FormatTurtle:
		return &turtleEncoder{prefixes: prefixes, graphs: false}, nil
	case FormatTriG:
		return &turtleEncoder{prefixes: prefixes, graphs: true}, nil
	case FormatNQuads:
		return &nquadsEncoder{}, nil
	default:
		return nil, errors.NewUnsupportedFormatError(string(format))
	}
}
