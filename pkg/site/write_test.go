package site_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-forge-ssg/pkg/site"
	"github.com/goliatone/go-forge-ssg/pkg/testsupport"
)

func TestWriteOutput_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "public", "shop", "index.html")
	if err := site.WriteOutput(path, []byte("<html></html>")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := testsupport.MustReadFile(t, path); got != "<html></html>" {
		t.Fatalf("unexpected content %q", got)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Fatalf("expected 0644, got %v", info.Mode().Perm())
	}
}

func TestWriteOutput_OverwritesAndKeepsMode(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteFixture(t, dir, "index.html", "old content that is longer")
	if err := os.Chmod(path, 0o600); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	if err := site.WriteOutput(path, []byte("new")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := testsupport.MustReadFile(t, path); got != "new" {
		t.Fatalf("expected overwrite, got %q", got)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected existing mode kept, got %v", info.Mode().Perm())
	}
}
