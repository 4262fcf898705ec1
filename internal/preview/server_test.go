package preview

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestHandleIndex(t *testing.T) {
	s := NewServer(Options{Title: "Preview Test"})
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := string(body)
	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Errorf("body does not start with doctype: %.40q", html)
	}
	if !strings.Contains(html, "<title>Preview Test</title>") {
		t.Error("title option not applied")
	}
	if strings.Contains(html, "__reload") {
		t.Error("reload script injected without a watch path")
	}
}

func TestReloadScriptInjectedWhenWatching(t *testing.T) {
	s := NewServer(Options{Watch: t.TempDir()})
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(body), "__reload") {
		t.Error("reload script missing with a watch path set")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := NewServer(Options{})
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	// Render once so the sink counters have moved.
	if _, err := http.Get(ts.URL + "/"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(body), "tagwright_preview_bytes_written_total") {
		t.Errorf("metrics output missing sink counters:\n%s", body)
	}
}

func TestReloadBroadcast(t *testing.T) {
	s := NewServer(Options{})
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/__reload"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// The upgrade completes before the handler registers the client,
	// so wait for the count to settle.
	deadline := time.Now().Add(2 * time.Second)
	for s.reload.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	s.reload.NotifyReload()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(msg) != "reload" {
		t.Errorf("got message %q, want %q", msg, "reload")
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "page.html")
	if err := os.WriteFile(file, []byte("one"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	changes := make(chan string, 8)
	w := NewWatcher(dir, 10*time.Millisecond, func(path string) {
		changes <- path
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// The initial scan is a baseline, not a change.
	select {
	case p := <-changes:
		t.Fatalf("baseline scan reported %q as a change", p)
	case <-time.After(50 * time.Millisecond):
	}

	// Touch with a future-leaning mtime so coarse filesystem clocks
	// cannot hide the write.
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(file, future, future); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case p := <-changes:
		if p != file {
			t.Errorf("changed path = %q, want %q", p, file)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("change never reported")
	}
}
