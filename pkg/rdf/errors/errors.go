package errors

import (
	"fmt"
)

var ErrMissingKey = fmt.Errorf("missing key")
var ErrInvalidLiteral = fmt.Errorf("invalid literal")
var ErrUnsupportedFormat = fmt.Errorf("unsupported format")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

func NewMissingKeyError(entityKind, column string) error {
	return &myError{
		msg:    fmt.Sprintf("%s row has no value for required column %s", entityKind, column),
		target: ErrMissingKey,
	}
}

func NewInvalidLiteralError(datatype string, value any, cause error) error {
	msg := fmt.Sprintf("value %q is not a valid %s", fmt.Sprint(value), datatype)
	if cause != nil {
		msg = fmt.Sprintf("%s (%s)", msg, cause.Error())
	}

	return &myError{
		msg:    msg,
		target: ErrInvalidLiteral,
	}
}

func NewUnsupportedFormatError(format string) error {
	return &myError{
		msg:    fmt.Sprintf("format %q is not supported", format),
		target: ErrUnsupportedFormat,
	}
}
