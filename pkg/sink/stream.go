package sink

import (
	"io"
	"net/http"
)

// Stream adapts a byte-oriented io.Writer to the text write contract.
// If the underlying writer implements io.StringWriter the string is
// passed through without conversion.
type Stream struct {
	w       io.Writer
	flusher http.Flusher
}

// NewStream wraps w. If w implements http.Flusher (as
// http.ResponseWriter does), Flush pushes buffered bytes to the client,
// which lets a build stream incrementally for faster time-to-first-byte.
func NewStream(w io.Writer) *Stream {
	flusher, _ := w.(http.Flusher)
	return &Stream{w: w, flusher: flusher}
}

// WriteString appends s to the underlying writer.
func (s *Stream) WriteString(p string) (int, error) {
	return io.WriteString(s.w, p)
}

// Flush flushes the underlying writer if it supports flushing and is a
// no-op otherwise.
func (s *Stream) Flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}
