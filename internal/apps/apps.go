// Package apps discovers installed applications and carries their identity
// through an uninstall run.
package apps

import (
	"strings"
	"time"
)

// App is one discovered installed (or previously installed) application.
// Records are transient: built during a scan, consumed by the resolver, and
// discarded when the run completes.
type App struct {
	// BundlePath is the application bundle or install location. It may no
	// longer exist at removal time if deleted externally.
	BundlePath string

	// DisplayName is the human-readable name, also used for
	// prefix-collision disambiguation in name-keyed locations.
	DisplayName string

	// BundleID is the reverse-domain identifier (macOS) or the registry
	// product key (Windows). Primary key for vendor data folders.
	BundleID string

	// SizeKB is the bundle's own on-disk footprint in kilobytes, not
	// counting related files. Informational.
	SizeKB int64

	// LastUsed is informational; the zero value means "never".
	LastUsed time.Time
}

// Match reports whether the app matches a user-supplied name: exact
// display-name match, exact bundle-id match, or case-insensitive
// display-name substring.
func (a App) Match(query string) bool {
	if strings.EqualFold(a.DisplayName, query) || strings.EqualFold(a.BundleID, query) {
		return true
	}
	return strings.Contains(strings.ToLower(a.DisplayName), strings.ToLower(query))
}

// Filter returns the apps matching query, exact matches first.
func Filter(all []App, query string) []App {
	var exact, loose []App
	for _, a := range all {
		switch {
		case strings.EqualFold(a.DisplayName, query) || strings.EqualFold(a.BundleID, query):
			exact = append(exact, a)
		case a.Match(query):
			loose = append(loose, a)
		}
	}
	return append(exact, loose...)
}
