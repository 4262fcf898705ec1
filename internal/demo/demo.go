// Package demo builds the sample document shipped with the tagwright
// CLI. It exercises every writer operation (doctype, nesting, all
// attribute value kinds, flags, text escaping, raw content) and is what
// `tagwright render` emits and the preview server serves.
package demo

import (
	"github.com/tagwright-dev/tagwright/pkg/builder"
)

// Page describes the demo document.
type Page struct {
	// Title is the document title (default: "tagwright demo").
	Title string

	// Lang is the html element's lang attribute (default: "en").
	Lang string

	// LiveReload injects the preview server's reload client script.
	LiveReload bool
}

const styleSheet = `body{font-family:sans-serif;max-width:40rem;margin:2rem auto;padding:0 1rem}` +
	`table{border-collapse:collapse}td,th{border:1px solid #ccc;padding:.3rem .6rem}`

// reloadScript reconnects to the preview server's reload endpoint and
// refreshes the page when a change is broadcast.
const reloadScript = `(function(){` +
	`var ws=new WebSocket("ws://"+location.host+"/__reload");` +
	`ws.onmessage=function(){location.reload()};` +
	`})();`

var features = []string{
	"typed open/attr/content/close sequencing",
	"matching closing tags by construction",
	"context-aware escaping with zero-copy clean spans",
	"pluggable sinks: buffer, stream, metrics, S3",
}

// Render writes the demo document into w. The writer must be fresh; the
// document starts with a doctype.
func (p Page) Render(w *builder.Writer) error {
	title := p.Title
	if title == "" {
		title = "tagwright demo"
	}
	lang := p.Lang
	if lang == "" {
		lang = "en"
	}

	w.Doctype()
	w.Node("html").Attr("lang", lang).Content(func(w *builder.Writer) {
		w.Node("head").Content(func(w *builder.Writer) {
			w.Node("meta").Attr("charset", "utf-8").Close()
			w.Node("meta").Attr("name", "viewport").Attr("content", "width=device-width, initial-scale=1").Close()
			w.Node("title").Content(func(w *builder.Writer) {
				w.Text(title)
			})
			w.Node("style").Content(func(w *builder.Writer) {
				w.Raw(styleSheet)
			})
		})
		w.Node("body").Content(func(w *builder.Writer) {
			w.Node("h1").Content(func(w *builder.Writer) {
				w.Text(title)
			})
			w.Node("p").Content(func(w *builder.Writer) {
				w.Text("A forward-only HTML writer. Special characters like < and & are escaped, \"quotes\" in text are left alone.")
			})
			w.Node("ul").Content(func(w *builder.Writer) {
				for i, feature := range features {
					w.Node("li").AttrInt("data-index", i).Content(func(w *builder.Writer) {
						w.Text(feature)
					})
				}
			})
			w.Node("form").Content(func(w *builder.Writer) {
				w.Node("label").Attr("for", "opt-in").Content(func(w *builder.Writer) {
					w.Text("Opt in & stay <informed>")
				})
				w.Node("input").
					Attr("type", "checkbox").
					Attr("id", "opt-in").
					AttrBool("aria-checked", true).
					Flag("checked").
					Close()
			})
			w.Node("footer").Content(func(w *builder.Writer) {
				w.Node("small").Content(func(w *builder.Writer) {
					w.Text("rendered by tagwright")
				})
			})
			if p.LiveReload {
				w.Node("script").Content(func(w *builder.Writer) {
					w.Raw(reloadScript)
				})
			}
		})
	})
	return w.Err()
}
