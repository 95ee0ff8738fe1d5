package orphans

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/appsweep/appsweep/internal/apps"
	"github.com/appsweep/appsweep/internal/catalog"
)

func seed(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.MkdirAll(filepath.Join(dir, n), 0o755); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFindReportsUninstalledVendorData(t *testing.T) {
	dir := t.TempDir()
	caches := filepath.Join(dir, "Caches")
	seed(t, caches,
		"com.example.Installed",
		"com.example.Removed",
		"com.apple.Safari", // system, never reported
	)

	c := &catalog.Catalog{Templates: []catalog.Template{
		{Category: catalog.Cache, Kind: catalog.KindExact, Root: caches, Pattern: "{bundle}"},
	}}
	installed := []apps.App{{DisplayName: "Installed", BundleID: "com.example.Installed"}}

	got := Find(c, installed)
	if len(got) != 1 {
		t.Fatalf("got %d orphans, want 1: %+v", len(got), got)
	}
	if got[0].Identifier != "com.example.Removed" {
		t.Errorf("identifier = %q, want com.example.Removed", got[0].Identifier)
	}
}

func TestFindHandlesSuffixedTemplates(t *testing.T) {
	dir := t.TempDir()
	prefs := filepath.Join(dir, "Preferences")
	if err := os.MkdirAll(prefs, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"com.example.Gone.plist", "com.example.Here.plist", "unrelated.txt"} {
		if err := os.WriteFile(filepath.Join(prefs, f), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	c := &catalog.Catalog{Templates: []catalog.Template{
		{Category: catalog.Preference, Kind: catalog.KindExact, Root: prefs, Pattern: "{bundle}.plist"},
	}}
	installed := []apps.App{{BundleID: "com.example.Here"}}

	got := Find(c, installed)
	if len(got) != 1 {
		t.Fatalf("got %d orphans, want 1: %+v", len(got), got)
	}
	if got[0].Identifier != "com.example.Gone" {
		t.Errorf("identifier = %q, want com.example.Gone", got[0].Identifier)
	}
}

func TestFindSkipsUnreadableRoots(t *testing.T) {
	c := &catalog.Catalog{Templates: []catalog.Template{
		{Category: catalog.Cache, Kind: catalog.KindExact, Root: filepath.Join(t.TempDir(), "missing"), Pattern: "{bundle}"},
	}}
	if got := Find(c, nil); len(got) != 0 {
		t.Fatalf("got %d orphans from missing root, want 0", len(got))
	}
}
