package demo

import (
	"strings"
	"testing"

	"github.com/tagwright-dev/tagwright/pkg/builder"
)

func TestRender(t *testing.T) {
	w := builder.New()
	if err := (Page{}).Render(w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html, err := w.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(html, `<!DOCTYPE html><html lang="en">`) {
		t.Errorf("document does not start with doctype and html tag: %.60q", html)
	}
	if !strings.HasSuffix(html, "</body></html>") {
		t.Errorf("document does not end with closing body and html tags: %.40q", html[len(html)-40:])
	}
	if !strings.Contains(html, "<title>tagwright demo</title>") {
		t.Error("missing default title")
	}
	if !strings.Contains(html, `<meta charset="utf-8"/>`) {
		t.Error("missing charset meta tag")
	}
	if !strings.Contains(html, "Opt in &amp; stay &lt;informed>") {
		t.Errorf("label text not escaped for the text context")
	}
	if strings.Contains(html, "Opt in & stay <informed>") {
		t.Error("raw label text leaked unescaped")
	}
	if !strings.Contains(html, `checked/>`) {
		t.Error("missing name-only checked attribute on self-closed input")
	}
	if strings.Contains(html, "__reload") {
		t.Error("reload script present without LiveReload")
	}
}

func TestRenderOptions(t *testing.T) {
	w := builder.New()
	page := Page{Title: "Ma Page", Lang: "fr", LiveReload: true}
	if err := page.Render(w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html, err := w.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(html, `<html lang="fr">`) {
		t.Error("lang option not applied")
	}
	if !strings.Contains(html, "<title>Ma Page</title>") {
		t.Error("title option not applied")
	}
	if !strings.Contains(html, "__reload") {
		t.Error("reload script missing with LiveReload")
	}
}
