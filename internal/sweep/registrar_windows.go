//go:build windows

package sweep

import (
	"os"
	"path/filepath"

	"github.com/appsweep/appsweep/internal/apps"
	"github.com/appsweep/appsweep/internal/resolve"
)

// StartMenuRegistrar removes the application's Start Menu shortcuts.
type StartMenuRegistrar struct{}

// Unregister deletes .lnk entries matching the app name under the user's
// Start Menu Programs folder. Name matching goes through the same prefix
// guard as discovery so "Foo.lnk" never takes "Foobar.lnk" with it.
func (StartMenuRegistrar) Unregister(app apps.App) error {
	roaming := os.Getenv("APPDATA")
	if roaming == "" || app.DisplayName == "" {
		return nil
	}
	programs := filepath.Join(roaming, "Microsoft", "Windows", "Start Menu", "Programs")
	entries, err := os.ReadDir(programs)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".lnk" {
			continue
		}
		if resolve.MatchesPrefix(e.Name(), app.DisplayName) {
			_ = os.Remove(filepath.Join(programs, e.Name()))
		}
	}
	return nil
}

// DefaultRegistrar returns the platform launcher integration.
func DefaultRegistrar() Registrar {
	return StartMenuRegistrar{}
}
