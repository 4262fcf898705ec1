package sink

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestBuffer(t *testing.T) {
	var b Buffer
	if b.Len() != 0 {
		t.Errorf("zero value Len() = %d, want 0", b.Len())
	}
	b.Grow(32)
	if _, err := b.WriteString("<p>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.WriteString("hi</p>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.String() != "<p>hi</p>" {
		t.Errorf("got %q, want %q", b.String(), "<p>hi</p>")
	}
	if b.Len() != len("<p>hi</p>") {
		t.Errorf("Len() = %d, want %d", b.Len(), len("<p>hi</p>"))
	}
	b.Reset()
	if b.Len() != 0 || b.String() != "" {
		t.Errorf("Reset left contents %q", b.String())
	}
}

func TestStream(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf)
	if _, err := s.WriteString("<html/>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// No flusher: must be a no-op, not a panic.
	s.Flush()
	if buf.String() != "<html/>" {
		t.Errorf("got %q, want %q", buf.String(), "<html/>")
	}
}

func TestStreamFlushesResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	s := NewStream(rec)
	if _, err := s.WriteString("<p>chunk</p>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Flush()
	if !rec.Flushed {
		t.Error("Flush did not reach the response writer")
	}
	if rec.Body.String() != "<p>chunk</p>" {
		t.Errorf("got %q, want %q", rec.Body.String(), "<p>chunk</p>")
	}
}

// failingWriter fails every write.
type failingWriter struct{ err error }

func (f *failingWriter) WriteString(s string) (int, error) {
	return 0, f.err
}

func TestMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	var buf Buffer
	m := NewMetrics(WithRegistry(registry))
	s := m.Wrap(&buf)

	if _, err := s.WriteString("<div>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.WriteString("</div>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := testutil.ToFloat64(m.writesTotal); got != 2 {
		t.Errorf("writes_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.bytesTotal); got != float64(len("<div></div>")) {
		t.Errorf("bytes_written_total = %v, want %d", got, len("<div></div>"))
	}
	if got := testutil.ToFloat64(m.errorsTotal); got != 0 {
		t.Errorf("write_errors_total = %v, want 0", got)
	}
	if buf.String() != "<div></div>" {
		t.Errorf("wrapped sink got %q, want %q", buf.String(), "<div></div>")
	}
}

func TestMetricsCountsErrors(t *testing.T) {
	registry := prometheus.NewRegistry()
	wantErr := errors.New("sink closed")
	m := NewMetrics(WithRegistry(registry))
	s := m.Wrap(&failingWriter{err: wantErr})

	if _, err := s.WriteString("<div>"); !errors.Is(err, wantErr) {
		t.Fatalf("got error %v, want the sink error", err)
	}
	if got := testutil.ToFloat64(m.errorsTotal); got != 1 {
		t.Errorf("write_errors_total = %v, want 1", got)
	}
}

// Two builds wrapped with the same Metrics share counters.
func TestMetricsSharedAcrossWraps(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(registry))

	var a, b Buffer
	if _, err := m.Wrap(&a).WriteString("x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.Wrap(&b).WriteString("yz"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := testutil.ToFloat64(m.bytesTotal); got != 3 {
		t.Errorf("bytes_written_total = %v, want 3", got)
	}
}
