package sweep

import "github.com/appsweep/appsweep/internal/apps"

// Registrar removes an application from launcher/dock integration after its
// files are gone. Best-effort: failures are recorded as warnings.
type Registrar interface {
	Unregister(app apps.App) error
}

// NoopRegistrar performs no unregistration. Used in dry runs and tests.
type NoopRegistrar struct{}

func (NoopRegistrar) Unregister(apps.App) error { return nil }
