package catalog

import "strings"

// Category labels the storage convention a template covers. It is used for
// display grouping only; removal never depends on it.
type Category string

const (
	AppSupport     Category = "application support"
	Cache          Category = "cache"
	Preference     Category = "preference"
	Container      Category = "container"
	GroupContainer Category = "group container"
	SavedState     Category = "saved state"
	Log            Category = "log"
	Diagnostic     Category = "diagnostic report"
	LaunchAgent    Category = "launch agent"
	WebStorage     Category = "web storage"
	Cookie         Category = "cookie"
	CrashDump      Category = "crash dump"
	Shortcut       Category = "shortcut"
	Temp           Category = "temporary"
	VendorData     Category = "vendor data"
)

// Kind selects how a template's pattern is resolved against the filesystem.
// The set is closed so the prefix-collision guard stays auditable: only
// KindPrefix performs name-prefix matching, and only through the guard.
type Kind int

const (
	// KindExact joins Root with the expanded pattern and tests existence.
	KindExact Kind = iota

	// KindGlob expands the pattern, then performs filesystem glob expansion.
	// The pattern may contain * segments for versioned vendor folders.
	KindGlob

	// KindPrefix enumerates Root and keeps entries whose name starts with
	// the application's display name followed by a separator boundary.
	KindPrefix
)

// Template is one (category, location pattern) pair of the path catalog.
// Pattern may reference {bundle} (bundle identifier / registry key) and
// {name} (display name); KindPrefix ignores Pattern and matches on name.
type Template struct {
	Category Category
	Kind     Kind
	Root     string
	Pattern  string
}

// Catalog is the ordered set of storage-convention templates for one OS.
// Order is stable insertion order; resolution results follow it.
type Catalog struct {
	Templates []Template
}

// Expand substitutes the application identifier and display name into a
// template pattern.
func Expand(pattern, bundleID, name string) string {
	r := strings.NewReplacer("{bundle}", bundleID, "{name}", name)
	return r.Replace(pattern)
}
