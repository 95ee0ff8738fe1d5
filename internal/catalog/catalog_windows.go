//go:build windows

package catalog

import (
	"os"
	"path/filepath"
)

// localAppData returns %LOCALAPPDATA%, falling back to the profile-relative
// default when unset.
func localAppData() string {
	if p := os.Getenv("LOCALAPPDATA"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Local")
}

// appData returns the roaming app data directory.
func appData() string {
	if p := os.Getenv("APPDATA"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
}

// programData returns the ProgramData directory.
// Falls back to C:\ProgramData only if %PROGRAMDATA% is not set.
func programData() string {
	if p := os.Getenv("PROGRAMDATA"); p != "" {
		return p
	}
	return `C:\ProgramData`
}

// Default returns the Windows path catalog for the current user.
//
// Application data on Windows is keyed by display name (sometimes nested
// under a publisher folder); crash dumps and Start Menu shortcuts are keyed
// by executable name and go through the prefix guard.
func Default() *Catalog {
	local := localAppData()
	roaming := appData()
	return &Catalog{Templates: []Template{
		{Category: AppSupport, Kind: KindExact, Root: local, Pattern: "{name}"},
		{Category: AppSupport, Kind: KindExact, Root: roaming, Pattern: "{name}"},
		{Category: VendorData, Kind: KindGlob, Root: local, Pattern: "*\\{name}"},
		{Category: VendorData, Kind: KindExact, Root: programData(), Pattern: "{name}"},
		{Category: Cache, Kind: KindGlob, Root: filepath.Join(local, "Temp"), Pattern: "{name}*"},
		{Category: CrashDump, Kind: KindPrefix, Root: filepath.Join(local, "CrashDumps")},
		{Category: Shortcut, Kind: KindPrefix, Root: filepath.Join(roaming, "Microsoft", "Windows", "Start Menu", "Programs")},
	}}
}
