package encoding

import (
	"fmt"
	"io"

	"github.com/cayleygraph/quad/nquads"
	"github.com/diwise/chinook-rdf/pkg/rdf/types"
)

type nquadsEncoder struct{}

func (nquadsEncoder) Encode(w io.Writer, statements []types.Statement) error {
	nw := nquads.NewWriter(w)

	for _, st := range statements {
		if err := nw.WriteQuad(st); err != nil {
			return fmt.Errorf("failed to write statement: %w", err)
		}
	}

	return nw.Close()
}
