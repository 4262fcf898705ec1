package builder

import "strings"

// AttrPolicy selects which characters are escaped inside double-quoted
// attribute values.
type AttrPolicy int

const (
	// AttrEscapeQuotes replaces only `"` with &quot;. Because values are
	// always rendered inside double quotes, this is sufficient to keep a
	// value from terminating the attribute. This is the default.
	AttrEscapeQuotes AttrPolicy = iota

	// AttrEscapeFull additionally replaces `&` with &amp; and `<` with
	// &lt;, for callers that want attribute values safe to round-trip
	// through entity-decoding consumers.
	AttrEscapeFull
)

// escapeText writes s to the sink with text-content escaping applied:
// `&` becomes &amp; and `<` becomes &lt;. Spans without either character
// are written directly from the input string; input with nothing to
// escape is a single write of the original string.
func escapeText(sink Sink, s string) error {
	for {
		i := strings.IndexAny(s, "&<")
		if i < 0 {
			break
		}
		if i > 0 {
			if _, err := sink.WriteString(s[:i]); err != nil {
				return err
			}
		}
		ent := "&lt;"
		if s[i] == '&' {
			ent = "&amp;"
		}
		if _, err := sink.WriteString(ent); err != nil {
			return err
		}
		s = s[i+1:]
	}
	if len(s) == 0 {
		return nil
	}
	_, err := sink.WriteString(s)
	return err
}

// attrEscaper streams attribute-value text into the sink with the
// writer's attribute policy applied. Attribute values render through it,
// so custom Value implementations get the same escaping as built-ins
// without building an intermediate string.
type attrEscaper struct {
	sink   Sink
	policy AttrPolicy
}

func (a *attrEscaper) WriteString(s string) (int, error) {
	specials := `"`
	if a.policy == AttrEscapeFull {
		specials = `"&<`
	}
	total := len(s)
	for {
		i := strings.IndexAny(s, specials)
		if i < 0 {
			break
		}
		if i > 0 {
			if _, err := a.sink.WriteString(s[:i]); err != nil {
				return 0, err
			}
		}
		var ent string
		switch s[i] {
		case '"':
			ent = "&quot;"
		case '&':
			ent = "&amp;"
		case '<':
			ent = "&lt;"
		}
		if _, err := a.sink.WriteString(ent); err != nil {
			return 0, err
		}
		s = s[i+1:]
	}
	if len(s) > 0 {
		if _, err := a.sink.WriteString(s); err != nil {
			return 0, err
		}
	}
	return total, nil
}
