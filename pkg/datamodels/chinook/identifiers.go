package chinook

import (
	"strconv"

	"github.com/cayleygraph/quad"
)

// Subject mints the identifier of the entity of the given kind and primary
// key. The result depends on nothing else, so the same row always maps to the
// same subject and equal keys of different kinds never collide.
func Subject(kind Kind, key int64) quad.IRI {
	return quad.IRI(Namespace + string(kind) + "/" + strconv.FormatInt(key, 10))
}

// Class returns the class IRI used in the rdf:type statement of a kind
func Class(kind Kind) quad.IRI {
	return quad.IRI(Namespace + string(kind))
}
