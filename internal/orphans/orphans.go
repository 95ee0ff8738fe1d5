// Package orphans finds vendor data folders whose owning application is no
// longer installed.
package orphans

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/appsweep/appsweep/internal/apps"
	"github.com/appsweep/appsweep/internal/catalog"
)

// Orphan is one data path left behind by an uninstalled application.
type Orphan struct {
	Path       string
	Category   catalog.Category
	Identifier string
}

// systemPrefixes are identifiers that belong to the OS vendor, never to a
// user-removable application.
var systemPrefixes = []string{
	"com.apple.",
	"group.com.apple.",
	"microsoft.",
	"windows",
}

// Find enumerates identifier-keyed catalog roots and returns entries whose
// identifier matches no installed application. Roots that cannot be read
// are skipped.
func Find(c *catalog.Catalog, installed []apps.App) []Orphan {
	known := make(map[string]bool)
	for _, a := range installed {
		if a.BundleID != "" {
			known[strings.ToLower(a.BundleID)] = true
		}
		if a.DisplayName != "" {
			known[strings.ToLower(a.DisplayName)] = true
		}
	}

	var orphans []Orphan
	seen := make(map[string]bool)

	for _, t := range c.Templates {
		suffix, keyed := identifierSuffix(t)
		if !keyed {
			continue
		}
		entries, err := os.ReadDir(t.Root)
		if err != nil {
			continue
		}
		for _, e := range entries {
			name := e.Name()
			if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, suffix) {
				continue
			}
			id := strings.TrimSuffix(name, suffix)
			if id == "" || isSystemIdentifier(id) || known[strings.ToLower(id)] {
				continue
			}
			path := filepath.Join(t.Root, name)
			if seen[path] {
				continue
			}
			seen[path] = true
			orphans = append(orphans, Orphan{Path: path, Category: t.Category, Identifier: id})
		}
	}

	sort.Slice(orphans, func(i, j int) bool {
		return orphans[i].Path < orphans[j].Path
	})
	return orphans
}

// identifierSuffix reports whether a template's entries are named directly
// after an application identifier, and with what fixed suffix.
func identifierSuffix(t catalog.Template) (string, bool) {
	if t.Kind != catalog.KindExact {
		return "", false
	}
	switch {
	case t.Pattern == "{bundle}" || t.Pattern == "{name}":
		return "", true
	case strings.HasPrefix(t.Pattern, "{bundle}") && !strings.Contains(t.Pattern[len("{bundle}"):], "{"):
		return t.Pattern[len("{bundle}"):], true
	}
	return "", false
}

func isSystemIdentifier(id string) bool {
	lower := strings.ToLower(id)
	for _, p := range systemPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}
