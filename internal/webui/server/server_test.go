package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/pkg/browser"

	"defterm/internal/content"
	"defterm/internal/term"
)

func init() { gin.SetMode(gin.TestMode) }

const post = `---
title: Hello GPU
description: Notes on my first CUDA kernel
date: 2024-05-01
tags: [cuda]
---
# Kernels

Some **bold** text.
`

const draftPost = `---
title: Unfinished
description: wip
date: 2024-07-01
draft: true
---
todo
`

func newTestServer(t *testing.T, withPosts bool) *Server {
	t.Helper()
	s := &Server{Log: clog.New(io.Discard)}
	if withPosts {
		dir := t.TempDir()
		for name, body := range map[string]string{"hello-gpu.md": post, "wip.md": draftPost} {
			if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
		}
		c, err := content.Open(dir, s.Log)
		if err != nil {
			t.Fatalf("open collection: %v", err)
		}
		s.Posts = c
	}
	return s
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthAndVersion(t *testing.T) {
	h := newTestServer(t, false).Handler()
	w := get(t, h, "/api/health")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ok"`) {
		t.Fatalf("health: %d %s", w.Code, w.Body.String())
	}
	w = get(t, h, "/api/version")
	var v map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil || v["version"] == "" {
		t.Fatalf("version: %v %s", err, w.Body.String())
	}
}

func TestCommands(t *testing.T) {
	w := get(t, newTestServer(t, false).Handler(), "/api/commands")
	var cmds []term.Command
	if err := json.Unmarshal(w.Body.Bytes(), &cmds); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(cmds) != len(term.Commands()) || cmds[0].Name != "help" {
		t.Fatalf("unexpected commands: %+v", cmds)
	}
}

func TestPosts(t *testing.T) {
	h := newTestServer(t, true).Handler()

	w := get(t, h, "/api/posts")
	var list []postSummary
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || list[0].Slug != "hello-gpu" {
		t.Fatalf("drafts must be hidden: %+v", list)
	}

	w = get(t, h, "/api/posts?q=cuda")
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || len(list) != 1 {
		t.Fatalf("search: %v %s", err, w.Body.String())
	}

	w = get(t, h, "/api/posts/hello-gpu")
	var d postDetail
	if err := json.Unmarshal(w.Body.Bytes(), &d); err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	if !strings.Contains(d.HTML, "<strong>bold</strong>") {
		t.Fatalf("html: %q", d.HTML)
	}

	if w := get(t, h, "/api/posts/wip"); w.Code != http.StatusNotFound {
		t.Fatalf("draft detail: want 404, got %d", w.Code)
	}
	if w := get(t, h, "/api/posts/missing"); w.Code != http.StatusNotFound {
		t.Fatalf("missing: want 404, got %d", w.Code)
	}
}

func TestPosts_NoCollection(t *testing.T) {
	w := get(t, newTestServer(t, false).Handler(), "/api/posts")
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "error") {
		t.Fatalf("want 404 json, got %d %s", w.Code, w.Body.String())
	}
}

func TestIndexAndFallback(t *testing.T) {
	h := newTestServer(t, false).Handler()
	for _, p := range []string{"/", "/index.html", "/blog/some-post"} {
		w := get(t, h, p)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "terminal-input") {
			t.Fatalf("%s: %d", p, w.Code)
		}
	}
	if w := get(t, h, "/api/nope"); w.Code != http.StatusNotFound {
		t.Fatalf("unknown api route must not fall back to index: %d", w.Code)
	}
}

func TestMetricsRoute(t *testing.T) {
	h := newTestServer(t, false).Handler()
	get(t, h, "/api/health")
	w := get(t, h, "/metrics")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "defterm_http_requests_total") {
		t.Fatalf("metrics: %d", w.Code)
	}
}

func readFrame(t *testing.T, conn *websocket.Conn) renderFrame {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var f renderFrame
	if err := conn.ReadJSON(&f); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	return f
}

func TestTerminalWS(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t, false).Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/term/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	f := readFrame(t, conn)
	if !f.Reset || len(f.Lines) != 3 || !f.Focus {
		t.Fatalf("initial frame: %+v", f)
	}

	if err := conn.WriteJSON(clientFrame{Type: "key", Key: "Enter", Value: "echo <hi>"}); err != nil {
		t.Fatal(err)
	}
	f = readFrame(t, conn)
	if f.Reset || f.Input != "" || len(f.Lines) != 3 {
		t.Fatalf("echo frame: %+v", f)
	}
	if !strings.Contains(f.Lines[2], "&lt;hi&gt;") {
		t.Fatalf("output must be escaped: %q", f.Lines[2])
	}

	if err := conn.WriteJSON(clientFrame{Type: "key", Key: "ArrowUp", Value: ""}); err != nil {
		t.Fatal(err)
	}
	f = readFrame(t, conn)
	if f.Input != "echo <hi>" {
		t.Fatalf("history recall: %+v", f)
	}

	if err := conn.WriteJSON(clientFrame{Type: "key", Key: "Enter", Value: "clear"}); err != nil {
		t.Fatal(err)
	}
	f = readFrame(t, conn)
	if !f.Reset || len(f.Lines) != 3 {
		t.Fatalf("clear frame: %+v", f)
	}
}

func TestLineHTML(t *testing.T) {
	got := lineHTML(term.Line{{Text: "a&b", Style: term.Error}})
	want := `<span class="t-error">a&amp;b</span>`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestOpenBrowser(t *testing.T) {
	var got []string
	openURL = func(url string) error {
		got = append(got, url)
		if strings.Contains(url, "fail") {
			return io.ErrUnexpectedEOF
		}
		return nil
	}
	t.Cleanup(func() { openURL = browser.OpenURL })

	log := clog.New(io.Discard)
	if err := OpenBrowser("http://127.0.0.1:8787/", log); err != nil {
		t.Fatalf("open: %v", err)
	}
	err := OpenBrowser("http://fail/", log)
	if !errors.Is(err, io.ErrUnexpectedEOF) || !strings.HasPrefix(err.Error(), "open browser") {
		t.Fatalf("want wrapped launcher error, got %v", err)
	}
	if len(got) != 2 || got[0] != "http://127.0.0.1:8787/" {
		t.Fatalf("unexpected urls: %q", got)
	}
}
