package source_test

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-forge-ssg/internal/source"
	"github.com/goliatone/go-forge-ssg/pkg/testsupport"
)

func TestLoader_File(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteFixture(t, dir, "base_index.html", "<html></html>")

	data, err := source.New(source.Options{}).Load(testsupport.Context(), source.File(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != "<html></html>" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestLoader_FileMissing(t *testing.T) {
	_, err := source.New(source.Options{}).Load(testsupport.Context(), source.File(filepath.Join(t.TempDir(), "nope.html")))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoader_FS(t *testing.T) {
	fsys := fstest.MapFS{
		"site/api/products.json": {Data: []byte(`[]`)},
	}
	loader := source.New(source.Options{FileSystem: fsys})

	data, err := loader.Load(testsupport.Context(), source.FS("./site/api/products.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("unexpected content %q", data)
	}

	if _, err := loader.Load(testsupport.Context(), source.FS("site/missing.json")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoader_FSNotConfigured(t *testing.T) {
	if _, err := source.New(source.Options{}).Load(testsupport.Context(), source.FS("a.html")); err == nil {
		t.Fatalf("expected error without filesystem")
	}
}

func TestLoader_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/properties.json":
			_, _ = w.Write([]byte(`[{"id":1}]`))
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	loader := source.New(source.Options{HTTPClient: server.Client()})

	data, err := loader.Load(testsupport.Context(), source.URL(server.URL+"/api/properties.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != `[{"id":1}]` {
		t.Fatalf("unexpected content %q", data)
	}

	if _, err := loader.Load(testsupport.Context(), source.URL(server.URL+"/dist/App.forge.html")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist for 404, got %v", err)
	}

	_, err = loader.Load(testsupport.Context(), source.URL(server.URL+"/broken"))
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestLoader_HTTPDisabled(t *testing.T) {
	if _, err := source.New(source.Options{}).Load(testsupport.Context(), source.URL("http://example.com/a.json")); err == nil {
		t.Fatalf("expected error when http is disabled")
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteFixture(t, dir, "a.html", "x")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := source.New(source.Options{}).Load(ctx, source.File(path)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLoadText_NormalizesNewlines(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteFixture(t, dir, "crlf.html", "<html>\r\n<body>\r</body>\n</html>")

	text, err := source.New(source.Options{}).LoadText(testsupport.Context(), source.File(path))
	if err != nil {
		t.Fatalf("load text: %v", err)
	}
	if want := "<html>\n<body>\n</body>\n</html>"; text != want {
		t.Fatalf("newline mismatch\nwant: %q\n got: %q", want, text)
	}
}
