//go:build windows

package apps

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/sys/windows/registry"
)

// registrySource describes one registry hive + path to scan.
type registrySource struct {
	root registry.Key
	path string
}

// uninstallSources are the three standard locations for installed programs.
var uninstallSources = []registrySource{
	{registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`},
	{registry.LOCAL_MACHINE, `SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`},
	{registry.CURRENT_USER, `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`},
}

// kbPattern matches Windows update identifiers like KB1234567.
var kbPattern = regexp.MustCompile(`(?i)\bKB\d{6,}\b`)

// Scan reads installed applications from the Windows registry, skipping
// system components and Windows updates. The registry subkey name serves
// as the product key (BundleID).
func Scan() ([]App, error) {
	seen := make(map[string]bool)
	var apps []App

	for _, src := range uninstallSources {
		found, err := readAppsFromKey(src.root, src.path)
		if err != nil {
			// Registry path may not exist (e.g., WOW6432Node on 32-bit);
			// skip silently.
			continue
		}
		for _, app := range found {
			key := strings.ToLower(app.DisplayName + "|" + app.BundleID)
			if seen[key] {
				continue
			}
			seen[key] = true
			if app.DisplayName == "" || kbPattern.MatchString(app.DisplayName) {
				continue
			}
			apps = append(apps, app)
		}
	}

	// Largest first.
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].SizeKB > apps[j].SizeKB
	})
	return apps, nil
}

func readAppsFromKey(root registry.Key, path string) ([]App, error) {
	key, err := registry.OpenKey(root, path, registry.ENUMERATE_SUB_KEYS|registry.QUERY_VALUE)
	if err != nil {
		return nil, err
	}
	defer key.Close()

	subkeys, err := key.ReadSubKeyNames(-1)
	if err != nil {
		return nil, err
	}

	var apps []App
	for _, name := range subkeys {
		app, skip := readAppFromSubKey(root, path+`\`+name, name)
		if skip {
			continue
		}
		apps = append(apps, app)
	}
	return apps, nil
}

func readAppFromSubKey(root registry.Key, path, subkey string) (App, bool) {
	key, err := registry.OpenKey(root, path, registry.QUERY_VALUE)
	if err != nil {
		return App{}, true
	}
	defer key.Close()

	app := App{
		DisplayName: readStringValue(key, "DisplayName"),
		BundlePath:  readStringValue(key, "InstallLocation"),
		BundleID:    subkey,
	}
	if app.DisplayName == "" {
		return App{}, true
	}

	// SystemComponent is a DWORD (1 = system).
	if sc, _, scErr := key.GetIntegerValue("SystemComponent"); scErr == nil && sc == 1 {
		return App{}, true
	}

	// EstimatedSize is stored in KB as a DWORD.
	if size, _, sizeErr := key.GetIntegerValue("EstimatedSize"); sizeErr == nil {
		app.SizeKB = int64(size)
	}

	return app, false
}

// readStringValue safely reads a string value from a registry key.
// Returns an empty string on any error.
func readStringValue(key registry.Key, name string) string {
	val, _, err := key.GetStringValue(name)
	if err != nil {
		return ""
	}
	return val
}
