package builder

// Element is the open-tag state of the build: the element's name has
// been written but the tag is not yet closed, so attributes may still be
// added. An Element is finished with Close (self-closing) or Content.
// While it is unfinished the originating Writer is suspended, and a
// finished Element must not be used again; either misuse panics.
//
// Element is a small value; passing it around allocates nothing.
type Element struct {
	w   *Writer
	tag string
}

// Attr writes a string-valued attribute: ` name="value"` with the
// value escaped per the writer's attribute policy.
func (e Element) Attr(name, value string) Element {
	return e.AttrValue(name, String(value))
}

// AttrValue writes an attribute whose value renders through the Value
// capability. The value's output streams through the attribute escaper,
// so no intermediate copy of the escaped text is built.
func (e Element) AttrValue(name string, v Value) Element {
	w := e.w
	if w.err != nil {
		return e
	}
	e.ensureOpen()
	w.write(" ")
	w.write(name)
	w.write(`="`)
	if w.err == nil {
		esc := attrEscaper{sink: w.sink, policy: w.policy}
		if err := v.RenderValue(&esc); err != nil {
			w.err = err
		}
	}
	w.write(`"`)
	return e
}

// AttrInt writes an integer-valued attribute in decimal form.
func (e Element) AttrInt(name string, v int) Element {
	return e.AttrValue(name, Int(v))
}

// AttrInt64 writes an integer-valued attribute in decimal form.
func (e Element) AttrInt64(name string, v int64) Element {
	return e.AttrValue(name, Int64(v))
}

// AttrBool writes a boolean-valued attribute as "true" or "false".
func (e Element) AttrBool(name string, v bool) Element {
	return e.AttrValue(name, Bool(v))
}

// Flag writes a name-only attribute, e.g. ` checked`.
func (e Element) Flag(name string) Element {
	w := e.w
	if w.err == nil {
		e.ensureOpen()
	}
	w.write(" ")
	w.write(name)
	return e
}

// AttrIf writes the attribute only when cond is true.
func (e Element) AttrIf(cond bool, name, value string) Element {
	if !cond {
		return e
	}
	return e.Attr(name, value)
}

// Close finishes the element as self-closing, writing "/>", and returns
// the build to the enclosing content state. Nothing is pushed on the
// open-element stack for a self-closed element.
func (e Element) Close() *Writer {
	w := e.w
	if w.err == nil {
		e.ensureOpen()
	}
	w.pending = ""
	w.write("/>")
	return w
}

// Content finishes the open tag with ">", pushes the element on the
// open-element stack, runs fn to emit the children, then pops the stack
// and writes the matching closing tag. The closing name is the exact
// name pushed at open time, so a mismatched close cannot be produced.
// fn may be nil for an element with empty content. A child tag left
// unfinished by fn panics before the closing tag is emitted.
func (e Element) Content(fn func(*Writer)) *Writer {
	w := e.w
	if w.err == nil {
		e.ensureOpen()
	}
	w.pending = ""
	w.write(">")
	w.stack = append(w.stack, e.tag)
	if fn != nil {
		fn(w)
	}
	if w.err == nil {
		w.checkNoPending()
	}
	name := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.write("</")
	w.write(name)
	w.write(">")
	return w
}

// ensureOpen panics when the element was already finished with Close or
// Content; a finished Element is a spent value and reusing it would
// emit stray markup.
func (e Element) ensureOpen() {
	if e.w.pending != e.tag {
		panic("builder: element <" + e.tag + "> already finished")
	}
}
