package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pixelfold/albumgrid/internal/extract"
	"github.com/pixelfold/albumgrid/internal/layout"
)

func albumPage(n int) string {
	var b strings.Builder
	b.WriteString(`<html><head><title>fallback</title>`)
	b.WriteString(`<meta property="og:title" content="Test Album">`)
	b.WriteString(`</head><body><script>AF_initDataCallback([`)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, `["%sphoto%d",%d,%d],`, extract.HostPrefix, i, 800+i, 600+i)
	}
	b.WriteString(`]);</script></body></html>`)
	return b.String()
}

func serveHTML(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func readDocument(t *testing.T, path string) Document {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	return doc
}

func TestRun_FullAlbum(t *testing.T) {
	srv := serveHTML(t, albumPage(9))
	out := filepath.Join(t.TempDir(), "grid.json")

	a, err := New(Config{AlbumURL: srv.URL, OutputPath: out})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	doc := readDocument(t, out)
	if doc.Title != "Test Album" {
		t.Fatalf("title: got %q", doc.Title)
	}
	if doc.Unavailable {
		t.Fatalf("unexpected unavailable state")
	}
	if len(doc.Entries) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(doc.Entries))
	}
	if doc.Entries[0].Size != layout.SizeLarge || !doc.Entries[0].Overlay {
		t.Fatalf("entry 0: got %+v", doc.Entries[0])
	}
	if doc.Entries[5].Size != layout.SizeWide || !doc.Entries[5].Overlay {
		t.Fatalf("entry 5: got %+v", doc.Entries[5])
	}
	for i := 1; i <= 4; i++ {
		if doc.Entries[i].Size != layout.SizeSmall || doc.Entries[i].Overlay {
			t.Fatalf("entry %d: got %+v", i, doc.Entries[i])
		}
	}
	// Acceptance order survives the hand-off.
	for i, e := range doc.Entries {
		if want := fmt.Sprintf("%sphoto%d", extract.HostPrefix, i); e.URL != want {
			t.Fatalf("entry %d URL: got %q want %q", i, e.URL, want)
		}
	}
}

func TestRun_PartialAlbum(t *testing.T) {
	srv := serveHTML(t, albumPage(2))
	out := filepath.Join(t.TempDir(), "grid.json")

	a, err := New(Config{AlbumURL: srv.URL, OutputPath: out})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	doc := readDocument(t, out)
	if len(doc.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(doc.Entries))
	}
	if doc.Entries[1].Size != layout.SizeSmall || doc.Entries[1].Overlay {
		t.Fatalf("entry 1: got %+v", doc.Entries[1])
	}
}

func TestRun_NoDescriptors_Unavailable(t *testing.T) {
	srv := serveHTML(t, "<html><body>nothing embedded here</body></html>")
	out := filepath.Join(t.TempDir(), "grid.json")

	a, err := New(Config{AlbumURL: srv.URL, OutputPath: out})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	err = a.Run(context.Background())
	if !errors.Is(err, ErrNoPhotos) {
		t.Fatalf("expected ErrNoPhotos, got %v", err)
	}
	doc := readDocument(t, out)
	if !doc.Unavailable || doc.Message == "" {
		t.Fatalf("expected unavailable document with message, got %+v", doc)
	}
	if len(doc.Entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(doc.Entries))
	}
}

func TestRun_FetchFailure_DegradesNotCrashes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()
	out := filepath.Join(t.TempDir(), "grid.json")

	a, err := New(Config{AlbumURL: srv.URL, OutputPath: out})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	err = a.Run(context.Background())
	if !errors.Is(err, ErrNoPhotos) {
		t.Fatalf("expected ErrNoPhotos, got %v", err)
	}
	doc := readDocument(t, out)
	if !doc.Unavailable {
		t.Fatalf("expected unavailable document, got %+v", doc)
	}
}

func TestRun_WritesContactSheet(t *testing.T) {
	srv := serveHTML(t, albumPage(6))
	dir := t.TempDir()
	out := filepath.Join(dir, "grid.json")
	pdfOut := filepath.Join(dir, "grid.pdf")

	a, err := New(Config{AlbumURL: srv.URL, OutputPath: out, PDFPath: pdfOut})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := os.ReadFile(pdfOut)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if len(b) == 0 || !strings.HasPrefix(string(b), "%PDF") {
		t.Fatalf("expected a PDF file, got %d bytes", len(b))
	}
}

func TestNew_RequiresAlbumURL(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error for missing album URL")
	}
}
