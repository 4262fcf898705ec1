package sink

import "strings"

// Buffer is an in-memory growable text sink. The zero value is ready to
// use. String returns the accumulated markup without copying it.
type Buffer struct {
	sb strings.Builder
}

// WriteString appends s to the buffer. It never fails.
func (b *Buffer) WriteString(s string) (int, error) {
	return b.sb.WriteString(s)
}

// String returns the accumulated contents.
func (b *Buffer) String() string {
	return b.sb.String()
}

// Len returns the number of accumulated bytes.
func (b *Buffer) Len() int {
	return b.sb.Len()
}

// Grow pre-allocates capacity for n more bytes.
func (b *Buffer) Grow(n int) {
	b.sb.Grow(n)
}

// Reset empties the buffer so it can back a new build.
func (b *Buffer) Reset() {
	b.sb.Reset()
}
