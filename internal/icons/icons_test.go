package icons

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingManifestFallsBack(t *testing.T) {
	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != Default() {
		t.Errorf("Load without manifest = %+v, want defaults", s)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := `{"collapsed": "v", "expanded": "^"}`
	if err := os.WriteFile(filepath.Join(dir, "indicators.json"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Collapsed != "v" || s.Expanded != "^" {
		t.Errorf("Load = %+v, want v/^", s)
	}
}

func TestLoadPartialManifestKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "indicators.json"), []byte(`{"collapsed": "v"}`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Collapsed != "v" {
		t.Errorf("Collapsed = %q, want v", s.Collapsed)
	}
	if s.Expanded != Default().Expanded {
		t.Errorf("Expanded = %q, want default", s.Expanded)
	}
}

func TestLoadMalformedManifest(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "indicators.json"), []byte(`{not json`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("malformed manifest should error")
	}
}
