package chinook

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/diwise/chinook-rdf/pkg/rdf/literals"
)

// Present wraps a value that is known to be non-null
func Present[T any](v T) sql.Null[T] {
	return sql.Null[T]{V: v, Valid: true}
}

// Timestamp is a nullable point in time. Drivers hand back either a time.Time
// or the stored text, and both are kept until the literal is built.
type Timestamp struct {
	Time   time.Time
	Text   string
	IsText bool
	Valid  bool
}

func TimestampOf(t time.Time) Timestamp {
	return Timestamp{Time: t, Valid: true}
}

func TimestampFromText(s string) Timestamp {
	return Timestamp{Text: s, IsText: true, Valid: true}
}

func (ts *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ts = Timestamp{}
	case time.Time:
		*ts = TimestampOf(v)
	case string:
		*ts = TimestampFromText(v)
	case []byte:
		*ts = TimestampFromText(string(v))
	default:
		return fmt.Errorf("unable to scan %T into a timestamp", src)
	}

	return nil
}

func (ts Timestamp) Literal() (quad.TypedString, error) {
	if ts.IsText {
		return literals.NewDateTimeFromString(ts.Text)
	}

	return literals.NewDateTime(ts.Time), nil
}

// Decimal is a nullable monetary amount, kept as the driver's text when
// there is one so that no precision is lost on the way to the literal
type Decimal struct {
	Float  float64
	Text   string
	IsText bool
	Valid  bool
}

func DecimalOf(f float64) Decimal {
	return Decimal{Float: f, Valid: true}
}

func DecimalFromText(s string) Decimal {
	return Decimal{Text: s, IsText: true, Valid: true}
}

func (d *Decimal) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Decimal{}
	case float64:
		*d = DecimalOf(v)
	case float32:
		*d = DecimalOf(float64(v))
	case int64:
		*d = DecimalFromText(strconv.FormatInt(v, 10))
	case string:
		*d = DecimalFromText(v)
	case []byte:
		*d = DecimalFromText(string(v))
	default:
		return fmt.Errorf("unable to scan %T into a decimal", src)
	}

	return nil
}

func (d Decimal) Literal() (quad.TypedString, error) {
	if d.IsText {
		return literals.NewDecimal(d.Text)
	}

	return literals.NewDecimalFromFloat(d.Float)
}
