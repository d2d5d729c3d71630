package installer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "requirements.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()

	if _, found := Locate(dir, "requirements.txt"); found {
		t.Fatal("expected missing manifest")
	}

	writeManifest(t, dir, "fastapi\n")
	path, found := Locate(dir, "requirements.txt")
	if !found {
		t.Fatal("expected manifest found")
	}
	if path != filepath.Join(dir, "requirements.txt") {
		t.Fatalf("unexpected path %s", path)
	}
}

func TestFilterExcludesProtectedPrefix(t *testing.T) {
	dir := t.TempDir()
	src := writeManifest(t, dir, "torch==2.0\nfastapi\nTORCH-vision\n")

	m, err := Filter(src, []string{"torch"})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}

	// The marker matches case-insensitively at line start, so the mixed-case
	// TORCH-vision line is excluded along with torch==2.0.
	if len(m.Entries) != 1 || m.Entries[0] != "fastapi" {
		t.Fatalf("expected only fastapi retained, got %v", m.Entries)
	}

	data, err := os.ReadFile(m.FilteredPath)
	if err != nil {
		t.Fatalf("read filtered manifest: %v", err)
	}
	if got := string(data); got != "fastapi\n" {
		t.Fatalf("expected filtered file content %q, got %q", "fastapi\n", got)
	}
	if filepath.Base(m.FilteredPath) != FilteredName {
		t.Fatalf("expected filtered copy named %s, got %s", FilteredName, m.FilteredPath)
	}
}

func TestFilterMatchesIndentedLines(t *testing.T) {
	dir := t.TempDir()
	src := writeManifest(t, dir, "  torch==2.0\nuvicorn\n")

	m, err := Filter(src, []string{"torch"})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(m.Entries) != 1 || m.Entries[0] != "uvicorn" {
		t.Fatalf("expected indented torch line excluded, got %v", m.Entries)
	}
}

func TestFilterKeepsNonPrefixMatches(t *testing.T) {
	dir := t.TempDir()
	src := writeManifest(t, dir, "pytorch-lightning\nfastapi\n")

	m, err := Filter(src, []string{"torch"})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	// "pytorch-lightning" contains but does not start with the marker.
	if len(m.Entries) != 2 {
		t.Fatalf("expected both lines retained, got %v", m.Entries)
	}
}

func TestFilterMultipleMarkers(t *testing.T) {
	dir := t.TempDir()
	src := writeManifest(t, dir, "torch\ntensorflow==2.16\nfastapi\n")

	m, err := Filter(src, []string{"torch", "tensorflow"})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(m.Entries) != 1 || m.Entries[0] != "fastapi" {
		t.Fatalf("expected only fastapi retained, got %v", m.Entries)
	}
}

func TestFilterMissingSource(t *testing.T) {
	if _, err := Filter(filepath.Join(t.TempDir(), "requirements.txt"), []string{"torch"}); err == nil {
		t.Fatal("expected error for missing source manifest")
	}
}

func TestFilterWindowsLineEndings(t *testing.T) {
	dir := t.TempDir()
	src := writeManifest(t, dir, "torch==2.0\r\nfastapi\r\n")

	m, err := Filter(src, []string{"torch"})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(m.Entries) != 1 || m.Entries[0] != "fastapi" {
		t.Fatalf("expected CRLF input handled, got %v", m.Entries)
	}
	if strings.Contains(m.Entries[0], "\r") {
		t.Fatal("expected carriage returns stripped")
	}
}

func TestManifestRemove(t *testing.T) {
	dir := t.TempDir()
	src := writeManifest(t, dir, "fastapi\n")

	m, err := Filter(src, []string{"torch"})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if err := m.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(m.FilteredPath); !os.IsNotExist(err) {
		t.Fatalf("expected filtered copy deleted, stat err %v", err)
	}

	// Removing a manifest that never produced a filtered copy is a no-op.
	if err := (Manifest{}).Remove(); err != nil {
		t.Fatalf("expected nil for empty manifest, got %v", err)
	}
}
