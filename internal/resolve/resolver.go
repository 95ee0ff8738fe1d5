package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/appsweep/appsweep/internal/catalog"
)

// Artifact is one discovered filesystem entry related to an application.
// Path is always absolute and existed on disk at resolution time.
type Artifact struct {
	Path     string
	Category catalog.Category
}

// Warning records a catalog category that could not be enumerated.
// Warnings are informational; resolution never fails as a whole.
type Warning struct {
	Category catalog.Category
	Root     string
	Err      error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: cannot enumerate %s: %v", w.Category, w.Root, w.Err)
}

// Resolver walks a path catalog to find the on-disk footprint of an
// application identified by bundle identifier and display name.
type Resolver struct {
	Catalog *catalog.Catalog
}

// New returns a Resolver over the given catalog.
func New(c *catalog.Catalog) *Resolver {
	return &Resolver{Catalog: c}
}

// Resolve returns every existing path belonging to the application, in
// catalog insertion order. Candidate paths that do not exist are filtered
// out. A category whose backing directory cannot be read is skipped and
// reported as a warning.
func (r *Resolver) Resolve(bundleID, name string) ([]Artifact, []Warning) {
	var artifacts []Artifact
	var warnings []Warning
	seen := make(map[string]bool)

	add := func(path string, cat catalog.Category) {
		abs, err := filepath.Abs(path)
		if err != nil || seen[abs] {
			return
		}
		if _, err := os.Lstat(abs); err != nil {
			return
		}
		seen[abs] = true
		artifacts = append(artifacts, Artifact{Path: abs, Category: cat})
	}

	for _, t := range r.Catalog.Templates {
		switch t.Kind {
		case catalog.KindExact:
			if !usable(t.Pattern, bundleID, name) {
				continue
			}
			add(filepath.Join(t.Root, catalog.Expand(t.Pattern, bundleID, name)), t.Category)

		case catalog.KindGlob:
			if !usable(t.Pattern, bundleID, name) {
				continue
			}
			pattern := catalog.Expand(t.Pattern, bundleID, name)
			matches, err := filepath.Glob(filepath.Join(t.Root, pattern))
			if err != nil {
				warnings = append(warnings, Warning{Category: t.Category, Root: t.Root, Err: err})
				continue
			}
			for _, m := range matches {
				add(m, t.Category)
			}

		case catalog.KindPrefix:
			if name == "" {
				continue
			}
			entries, err := os.ReadDir(t.Root)
			if err != nil {
				if !os.IsNotExist(err) {
					warnings = append(warnings, Warning{Category: t.Category, Root: t.Root, Err: err})
				}
				continue
			}
			for _, e := range entries {
				if MatchesPrefix(e.Name(), name) {
					add(filepath.Join(t.Root, e.Name()), t.Category)
				}
			}
		}
	}

	return artifacts, warnings
}

// usable reports whether every placeholder in the pattern has a non-empty
// value. A template keyed by bundle identifier is skipped for records that
// only carry a display name, and vice versa.
func usable(pattern, bundleID, name string) bool {
	if strings.Contains(pattern, "{bundle}") && bundleID == "" {
		return false
	}
	if strings.Contains(pattern, "{name}") && name == "" {
		return false
	}
	return true
}
