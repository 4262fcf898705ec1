package builder

import (
	"errors"
	"fmt"
	"strings"
)

const doctype = "<!DOCTYPE html>"

// ErrOpenElements is returned by Result when elements are still open.
var ErrOpenElements = errors.New("unclosed elements remain")

// Writer emits HTML to a Sink. It represents the body states of the
// build: nothing open yet, or inside an element's content region. The
// open-tag state lives on Element; see Node.
//
// A Writer is not safe for concurrent use. Two Writers over two
// independent sinks share nothing and need no coordination.
type Writer struct {
	sink    Sink
	buf     *strings.Builder
	stack   []string
	policy  AttrPolicy
	pending string
	started bool
	err     error
}

// Option configures a Writer.
type Option func(*Writer)

// WithAttrPolicy sets the attribute-value escaping policy.
func WithAttrPolicy(p AttrPolicy) Option {
	return func(w *Writer) {
		w.policy = p
	}
}

// New creates a Writer backed by an internal in-memory buffer. The
// built document is retrieved with Result.
func New(opts ...Option) *Writer {
	var sb strings.Builder
	w := NewWriter(&sb, opts...)
	w.buf = &sb
	return w
}

// NewWriter creates a Writer emitting into the given sink. The writer
// owns the sink for the duration of the build; the caller reads the
// result from the sink once the build is done and Err reports nil.
func NewWriter(sink Sink, opts ...Option) *Writer {
	w := &Writer{sink: sink}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Doctype writes the HTML5 doctype literal. It is only legal before any
// other output and panics otherwise; emitting a doctype mid-document is
// a programming error that would corrupt the markup.
func (w *Writer) Doctype() *Writer {
	if w.err != nil {
		return w
	}
	w.checkNoPending()
	if w.started {
		panic("builder: Doctype after document output has begun")
	}
	w.write(doctype)
	return w
}

// Node starts an element, writing "<" and the tag name, and moves the
// build into the open-tag state. The returned Element accepts attributes
// and is finished with either Close (self-closing) or Content. Until
// that happens the Writer is suspended: calling any Writer operation
// with the tag unfinished panics.
func (w *Writer) Node(tag string) Element {
	if w.err == nil {
		w.checkNoPending()
	}
	w.write("<")
	w.write(tag)
	w.pending = tag
	return Element{w: w, tag: tag}
}

// Text writes character data with text-content escaping applied.
func (w *Writer) Text(s string) *Writer {
	if w.err != nil {
		return w
	}
	w.checkNoPending()
	w.started = true
	if err := escapeText(w.sink, s); err != nil {
		w.err = err
	}
	return w
}

// Raw writes s without any escaping. The content is trusted to already
// be valid markup; nothing prevents it from corrupting the document.
func (w *Writer) Raw(s string) *Writer {
	if w.err == nil {
		w.checkNoPending()
	}
	w.write(s)
	return w
}

// Err returns the first sink error encountered, if any. Once an error
// has occurred every further operation is a no-op.
func (w *Writer) Err() error {
	return w.err
}

// Depth returns the number of currently open elements.
func (w *Writer) Depth() int {
	return len(w.stack)
}

// Path returns a breadcrumb of the open elements, e.g. "$ > html > head".
// The root with nothing open is "$".
func (w *Writer) Path() string {
	if len(w.stack) == 0 {
		return "$"
	}
	var b strings.Builder
	b.WriteByte('$')
	for _, name := range w.stack {
		b.WriteString(" > ")
		b.WriteString(name)
	}
	return b.String()
}

// Result finishes the build. For a Writer created with New it returns
// the built document; for a caller-supplied sink the contents live in
// that sink and the returned string is empty. It returns the first sink
// error if one occurred, or ErrOpenElements if called while elements are
// still open.
func (w *Writer) Result() (string, error) {
	if w.err != nil {
		return "", w.err
	}
	w.checkNoPending()
	if len(w.stack) > 0 {
		return "", fmt.Errorf("%w: %s", ErrOpenElements, w.Path())
	}
	if w.buf == nil {
		return "", nil
	}
	return w.buf.String(), nil
}

// checkNoPending panics when a tag opened by Node has not been finished
// with Close or Content. The moved-value discipline the API is written
// for cannot stop a caller from also keeping the Writer aliased across
// a Node call, so the suspension is enforced here rather than letting
// interleaved writes corrupt the markup.
func (w *Writer) checkNoPending() {
	if w.pending != "" {
		panic("builder: tag <" + w.pending + " is still open; finish it with Close or Content")
	}
}

// write appends s to the sink, recording the first error and dropping
// all output after it.
func (w *Writer) write(s string) {
	if w.err != nil {
		return
	}
	w.started = true
	if _, err := w.sink.WriteString(s); err != nil {
		w.err = err
	}
}
