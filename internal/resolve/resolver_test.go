package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/appsweep/appsweep/internal/catalog"
)

// testCatalog builds a small catalog rooted inside dir, mirroring the shape
// of the real per-OS catalogs.
func testCatalog(dir string) *catalog.Catalog {
	return &catalog.Catalog{Templates: []catalog.Template{
		{Category: catalog.AppSupport, Kind: catalog.KindExact, Root: filepath.Join(dir, "Application Support"), Pattern: "{name}"},
		{Category: catalog.Cache, Kind: catalog.KindExact, Root: filepath.Join(dir, "Caches"), Pattern: "{bundle}"},
		{Category: catalog.Preference, Kind: catalog.KindExact, Root: filepath.Join(dir, "Preferences"), Pattern: "{bundle}.plist"},
		{Category: catalog.LaunchAgent, Kind: catalog.KindGlob, Root: filepath.Join(dir, "LaunchAgents"), Pattern: "{bundle}*.plist"},
		{Category: catalog.Diagnostic, Kind: catalog.KindPrefix, Root: filepath.Join(dir, "DiagnosticReports")},
	}}
}

func mkfile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveFindsExistingArtifacts(t *testing.T) {
	dir := t.TempDir()
	mkfile(t, filepath.Join(dir, "Application Support", "TestApp", "state.db"))
	mkfile(t, filepath.Join(dir, "Caches", "com.example.TestApp", "blob"))
	mkfile(t, filepath.Join(dir, "Preferences", "com.example.TestApp.plist"))
	mkfile(t, filepath.Join(dir, "LaunchAgents", "com.example.TestApp.agent.plist"))
	mkfile(t, filepath.Join(dir, "DiagnosticReports", "TestApp_2024-05-01-120000.ips"))

	r := New(testCatalog(dir))
	artifacts, warnings := r.Resolve("com.example.TestApp", "TestApp")

	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	want := []string{
		filepath.Join(dir, "Application Support", "TestApp"),
		filepath.Join(dir, "Caches", "com.example.TestApp"),
		filepath.Join(dir, "Preferences", "com.example.TestApp.plist"),
		filepath.Join(dir, "LaunchAgents", "com.example.TestApp.agent.plist"),
		filepath.Join(dir, "DiagnosticReports", "TestApp_2024-05-01-120000.ips"),
	}
	if len(artifacts) != len(want) {
		t.Fatalf("got %d artifacts, want %d: %+v", len(artifacts), len(want), artifacts)
	}
	for i, a := range artifacts {
		if a.Path != want[i] {
			t.Errorf("artifact %d = %q, want %q", i, a.Path, want[i])
		}
		if !filepath.IsAbs(a.Path) {
			t.Errorf("artifact %d is not absolute: %q", i, a.Path)
		}
	}
}

func TestResolveFiltersNonExistent(t *testing.T) {
	dir := t.TempDir()
	mkfile(t, filepath.Join(dir, "Caches", "com.example.TestApp", "blob"))

	r := New(testCatalog(dir))
	artifacts, _ := r.Resolve("com.example.TestApp", "TestApp")

	if len(artifacts) != 1 {
		t.Fatalf("got %d artifacts, want 1: %+v", len(artifacts), artifacts)
	}
	if artifacts[0].Category != catalog.Cache {
		t.Errorf("category = %q, want %q", artifacts[0].Category, catalog.Cache)
	}
}

func TestResolveRejectsPrefixCollisions(t *testing.T) {
	dir := t.TempDir()
	mkfile(t, filepath.Join(dir, "DiagnosticReports", "TestApp.crash"))
	mkfile(t, filepath.Join(dir, "DiagnosticReports", "TestAppPro.crash"))

	r := New(testCatalog(dir))
	artifacts, _ := r.Resolve("com.example.TestApp", "TestApp")

	if len(artifacts) != 1 {
		t.Fatalf("got %d artifacts, want 1: %+v", len(artifacts), artifacts)
	}
	if got := filepath.Base(artifacts[0].Path); got != "TestApp.crash" {
		t.Errorf("matched %q, want TestApp.crash", got)
	}
}

func TestResolveSkipsEmptyIdentifiers(t *testing.T) {
	dir := t.TempDir()
	// A file literally named ".plist" must never match an empty bundle id.
	mkfile(t, filepath.Join(dir, "Preferences", ".plist"))

	r := New(testCatalog(dir))
	artifacts, _ := r.Resolve("", "")

	if len(artifacts) != 0 {
		t.Fatalf("got %d artifacts for empty identifiers, want 0: %+v", len(artifacts), artifacts)
	}
}

func TestResolveMissingRootIsSilent(t *testing.T) {
	dir := t.TempDir()
	r := New(testCatalog(filepath.Join(dir, "does-not-exist")))
	artifacts, warnings := r.Resolve("com.example.TestApp", "TestApp")

	if len(artifacts) != 0 {
		t.Fatalf("got artifacts from nonexistent roots: %+v", artifacts)
	}
	if len(warnings) != 0 {
		t.Fatalf("missing roots should be skipped silently, got %v", warnings)
	}
}
