//go:build darwin

package catalog

import (
	"os"
	"path/filepath"
)

// Default returns the macOS path catalog rooted at the current user's home.
func Default() *Catalog {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return ForHome(home)
}

// ForHome builds the macOS catalog for an explicit home directory.
//
// Locations keyed by bundle identifier follow Apple's documented per-app
// storage conventions under ~/Library. Diagnostic reports are keyed by
// executable name, so they go through the prefix guard.
func ForHome(home string) *Catalog {
	lib := filepath.Join(home, "Library")
	return &Catalog{Templates: []Template{
		{Category: AppSupport, Kind: KindExact, Root: filepath.Join(lib, "Application Support"), Pattern: "{name}"},
		{Category: AppSupport, Kind: KindExact, Root: filepath.Join(lib, "Application Support"), Pattern: "{bundle}"},
		{Category: Cache, Kind: KindExact, Root: filepath.Join(lib, "Caches"), Pattern: "{bundle}"},
		{Category: Preference, Kind: KindExact, Root: filepath.Join(lib, "Preferences"), Pattern: "{bundle}.plist"},
		{Category: SavedState, Kind: KindExact, Root: filepath.Join(lib, "Saved Application State"), Pattern: "{bundle}.savedState"},
		{Category: Container, Kind: KindExact, Root: filepath.Join(lib, "Containers"), Pattern: "{bundle}"},
		{Category: GroupContainer, Kind: KindGlob, Root: filepath.Join(lib, "Group Containers"), Pattern: "*.{bundle}"},
		{Category: Log, Kind: KindExact, Root: filepath.Join(lib, "Logs"), Pattern: "{name}"},
		{Category: Log, Kind: KindExact, Root: filepath.Join(lib, "Logs"), Pattern: "{bundle}"},
		{Category: WebStorage, Kind: KindExact, Root: filepath.Join(lib, "HTTPStorages"), Pattern: "{bundle}"},
		{Category: WebStorage, Kind: KindExact, Root: filepath.Join(lib, "WebKit"), Pattern: "{bundle}"},
		{Category: Cookie, Kind: KindExact, Root: filepath.Join(lib, "Cookies"), Pattern: "{bundle}.binarycookies"},
		{Category: LaunchAgent, Kind: KindGlob, Root: filepath.Join(lib, "LaunchAgents"), Pattern: "{bundle}*.plist"},
		{Category: Diagnostic, Kind: KindPrefix, Root: filepath.Join(lib, "Logs", "DiagnosticReports")},
		{Category: Diagnostic, Kind: KindPrefix, Root: filepath.Join(lib, "Application Support", "CrashReporter")},
	}}
}
