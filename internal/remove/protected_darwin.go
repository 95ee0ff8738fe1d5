//go:build darwin

package remove

import (
	"os"
	"path/filepath"
)

// ProtectedRoots returns the paths the remover must never delete outright.
// Children of these directories are fair targets; the roots themselves are
// a defense against a resolver bug producing an overly broad candidate.
func ProtectedRoots() []string {
	home, _ := os.UserHomeDir()
	roots := []string{
		"/",
		"/Applications",
		"/Library",
		"/System",
		"/Users",
		"/bin",
		"/usr",
		"/private",
		"/var",
		"/etc",
		"/Volumes",
	}
	if home != "" {
		roots = append(roots,
			home,
			filepath.Join(home, "Library"),
			filepath.Join(home, "Documents"),
			filepath.Join(home, "Desktop"),
			filepath.Join(home, "Downloads"),
			filepath.Join(home, "Applications"),
		)
	}
	return roots
}
