package literals

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/cayleygraph/quad"
	"github.com/diwise/chinook-rdf/pkg/rdf/errors"
)

const XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

const (
	XSDInteger  quad.IRI = XSDNamespace + "integer"
	XSDDecimal  quad.IRI = XSDNamespace + "decimal"
	XSDDateTime quad.IRI = XSDNamespace + "dateTime"
)

// DateTimeLayout is the canonical lexical form of every dateTime literal:
// UTC with exactly three fractional digits.
const DateTimeLayout string = "2006-01-02T15:04:05.000Z"

var decimalPattern = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)$`)

// dateparse reads a bare number as a unix timestamp or a year
var bareNumber = regexp.MustCompile(`^[+-]?[0-9]+$`)

// NewInteger returns an xsd:integer literal in base 10
func NewInteger(value int64) quad.TypedString {
	return quad.TypedString{Value: quad.String(strconv.FormatInt(value, 10)), Type: XSDInteger}
}

// NewDecimal validates a decimal string and keeps it verbatim
func NewDecimal(value string) (quad.TypedString, error) {
	v := strings.TrimSpace(value)
	if !decimalPattern.MatchString(v) {
		return quad.TypedString{}, errors.NewInvalidLiteralError("decimal", value, nil)
	}

	return quad.TypedString{Value: quad.String(v), Type: XSDDecimal}, nil
}

// NewDecimalFromFloat uses the shortest representation that round trips to
// the same float64, so 0.99 stays "0.99".
func NewDecimalFromFloat(value float64) (quad.TypedString, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return quad.TypedString{}, errors.NewInvalidLiteralError("decimal", value, nil)
	}

	return quad.TypedString{
		Value: quad.String(strconv.FormatFloat(value, 'f', -1, 64)),
		Type:  XSDDecimal,
	}, nil
}

// NewDateTime creates an xsd:dateTime literal from a point in time
func NewDateTime(value time.Time) quad.TypedString {
	return quad.TypedString{
		Value: quad.String(value.UTC().Format(DateTimeLayout)),
		Type:  XSDDateTime,
	}
}

// NewDateTimeFromString parses value and returns the same literal NewDateTime
// would return for the parsed instant. Values without a zone are taken as UTC.
func NewDateTimeFromString(value string) (quad.TypedString, error) {
	v := strings.TrimSpace(value)
	if v == "" || bareNumber.MatchString(v) {
		return quad.TypedString{}, errors.NewInvalidLiteralError("dateTime", value, nil)
	}

	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		t, err = dateparse.ParseIn(v, time.UTC)
		if err != nil {
			return quad.TypedString{}, errors.NewInvalidLiteralError("dateTime", value, err)
		}
	}

	return NewDateTime(t), nil
}

// NewText returns a plain string literal
func NewText(value string) quad.String {
	return quad.String(value)
}
