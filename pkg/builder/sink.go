package builder

// Sink is the append-only destination a Writer emits markup into.
//
// It is identical in shape to io.StringWriter, so *strings.Builder and
// other text-oriented writers satisfy it directly. Byte-stream writers
// can be adapted with the sink package. A Sink must treat every call as
// an append; the writer never seeks and never rewrites emitted bytes.
type Sink interface {
	WriteString(s string) (n int, err error)
}
