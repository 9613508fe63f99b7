package chinook

import (
	"testing"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/matryer/is"
)

func TestTimestampScan(t *testing.T) {
	is := is.New(t)

	var ts Timestamp
	is.NoErr(ts.Scan(nil))
	is.True(!ts.Valid)

	is.NoErr(ts.Scan("2009-01-01 00:00:00"))
	is.True(ts.Valid)
	is.True(ts.IsText)

	is.NoErr(ts.Scan(time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC)))
	is.True(ts.Valid)
	is.True(!ts.IsText)

	is.True(ts.Scan(3.14) != nil) // floats are not timestamps
}

func TestTimestampLiteralIsIndependentOfRepresentation(t *testing.T) {
	is := is.New(t)

	fromTime, err := TimestampOf(time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC)).Literal()
	is.NoErr(err)

	fromText, err := TimestampFromText("2009-01-01 00:00:00").Literal()
	is.NoErr(err)

	is.Equal(fromTime, fromText)
}

func TestDecimalScan(t *testing.T) {
	is := is.New(t)

	var d Decimal
	is.NoErr(d.Scan(0.99))
	lit, err := d.Literal()
	is.NoErr(err)
	is.Equal(lit.Value, quad.String("0.99"))

	is.NoErr(d.Scan([]byte("1.980")))
	lit, err = d.Literal()
	is.NoErr(err)
	is.Equal(lit.Value, quad.String("1.980"))

	is.NoErr(d.Scan(int64(2)))
	lit, err = d.Literal()
	is.NoErr(err)
	is.Equal(lit.Value, quad.String("2"))

	is.NoErr(d.Scan(nil))
	is.True(!d.Valid)
}
