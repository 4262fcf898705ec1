// Package builder provides a typed, forward-only HTML writer.
//
// A build walks a small state machine: the body states (nothing open, or
// inside an element's content) live on *Writer, and the open-tag state
// (attribute list still being written) lives on Element. Operations that
// are illegal for a state simply do not exist on its type, so a sequence
// like writing an attribute after the tag has been closed does not
// compile.
//
// Output is written incrementally to a Sink as operations are issued.
// There is no document tree and no way to revisit already-written bytes.
//
// # Basic Usage
//
//	html, err := builder.New().
//		Doctype().
//		Node("html").Attr("lang", "en").Content(func(w *builder.Writer) {
//			w.Node("head").Content(func(w *builder.Writer) {
//				w.Node("meta").Attr("charset", "utf-8").Close()
//				w.Node("title").Content(func(w *builder.Writer) {
//					w.Text("Hello world!")
//				})
//			})
//		}).
//		Result()
//
// # Escaping
//
// Text passed to Text is escaped for the text-content context (& and <).
// Attribute values are always rendered double-quoted and escaped for the
// attribute context; by default only double quotes are replaced, and
// WithAttrPolicy(AttrEscapeFull) extends that to & and <. Raw bypasses
// escaping entirely and must only be used with trusted content.
//
// Matching closing tags are emitted from the writer's open-element stack,
// so a close can never name a different element than the one opened.
//
// # Errors
//
// The first sink error is sticky: every later operation is a no-op and
// the error is reported by Err and Result. Structural misuse that cannot
// be ruled out by the type system (a Doctype after output has begun)
// panics.
package builder
