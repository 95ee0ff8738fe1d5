//go:build darwin

package apps

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// bundleIDTimeout bounds one `defaults read` invocation.
const bundleIDTimeout = 5 * time.Second

// Scan enumerates application bundles under /Applications and
// ~/Applications. Bundles whose Info.plist cannot be read still appear in
// the result with an empty bundle id; name-keyed discovery still works for
// them.
func Scan() ([]App, error) {
	roots := []string{"/Applications"}
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, filepath.Join(home, "Applications"))
	}

	var apps []App
	for _, root := range roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !strings.HasSuffix(e.Name(), ".app") {
				continue
			}
			bundlePath := filepath.Join(root, e.Name())
			app := App{
				BundlePath:  bundlePath,
				DisplayName: strings.TrimSuffix(e.Name(), ".app"),
				BundleID:    readBundleID(bundlePath),
			}
			if info, infoErr := e.Info(); infoErr == nil {
				app.LastUsed = info.ModTime()
			}
			apps = append(apps, app)
		}
	}

	sort.Slice(apps, func(i, j int) bool {
		return strings.ToLower(apps[i].DisplayName) < strings.ToLower(apps[j].DisplayName)
	})
	return apps, nil
}

// readBundleID resolves CFBundleIdentifier from the bundle manifest.
// `defaults read` handles both XML and binary plists, so no plist parser is
// needed here.
func readBundleID(bundlePath string) string {
	ctx, cancel := context.WithTimeout(context.Background(), bundleIDTimeout)
	defer cancel()

	plist := filepath.Join(bundlePath, "Contents", "Info")
	out, err := exec.CommandContext(ctx, "defaults", "read", plist, "CFBundleIdentifier").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
