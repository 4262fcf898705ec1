package builder

import (
	"io"
	"strconv"
)

// Value is the capability an attribute value must provide. RenderValue
// writes the value's textual form to w. The writer handed in escapes for
// the attribute-value context, so implementations write their raw text
// and never escape themselves.
//
// Built-in implementations exist for strings, integers, and booleans;
// callers can implement Value on their own types (enums, class lists)
// to render them as attribute values.
type Value interface {
	RenderValue(w io.StringWriter) error
}

// String renders as-is, escaped for the attribute context.
type String string

func (v String) RenderValue(w io.StringWriter) error {
	_, err := w.WriteString(string(v))
	return err
}

// Int renders in decimal form.
type Int int

func (v Int) RenderValue(w io.StringWriter) error {
	_, err := w.WriteString(strconv.Itoa(int(v)))
	return err
}

// Int64 renders in decimal form.
type Int64 int64

func (v Int64) RenderValue(w io.StringWriter) error {
	_, err := w.WriteString(strconv.FormatInt(int64(v), 10))
	return err
}

// Uint64 renders in decimal form.
type Uint64 uint64

func (v Uint64) RenderValue(w io.StringWriter) error {
	_, err := w.WriteString(strconv.FormatUint(uint64(v), 10))
	return err
}

// Bool renders as "true" or "false".
type Bool bool

func (v Bool) RenderValue(w io.StringWriter) error {
	_, err := w.WriteString(strconv.FormatBool(bool(v)))
	return err
}
