// Package remove deletes validated absolute paths with privilege escalation
// only when required.
package remove

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Elevator performs a removal with elevated privileges. Implementations
// shell out to the platform escalation mechanism; tests inject fakes.
type Elevator interface {
	Remove(path string) error
}

// UnsafePathError reports a removal target the remover refuses to touch.
type UnsafePathError struct {
	Path   string
	Reason string
}

func (e *UnsafePathError) Error() string {
	return fmt.Sprintf("refusing to remove %q: %s", e.Path, e.Reason)
}

// PermissionError reports a path that survived both the unprivileged
// attempt and the elevated retry.
type PermissionError struct {
	Path string
	Err  error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("cannot remove %q: %v", e.Path, e.Err)
}

func (e *PermissionError) Unwrap() error { return e.Err }

// Remover deletes one path at a time so callers can report partial
// progress. It refuses relative paths and protected roots, treats
// already-absent paths as success, and escalates through the Elevator only
// after an unprivileged attempt fails with a permission error.
type Remover struct {
	protected []string
	elevator  Elevator
	dryRun    bool

	// The elevation decision is made once per run, not per path.
	authorize     func() bool
	authorizeOnce sync.Once
	authorized    bool
}

// Option configures a Remover.
type Option func(*Remover)

// WithElevator sets the privilege-escalation capability. authorize is
// consulted at most once per run, before the first elevated retry; a nil
// authorize allows elevation unconditionally.
func WithElevator(e Elevator, authorize func() bool) Option {
	return func(r *Remover) {
		r.elevator = e
		r.authorize = authorize
	}
}

// WithDryRun makes Remove validate but never mutate the filesystem.
func WithDryRun(dryRun bool) Option {
	return func(r *Remover) { r.dryRun = dryRun }
}

// New returns a Remover that refuses to operate on any of the given
// protected roots (compared after cleaning, case-insensitively).
func New(protected []string, opts ...Option) *Remover {
	r := &Remover{}
	for _, p := range protected {
		if p != "" {
			r.protected = append(r.protected, filepath.Clean(p))
		}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Remove deletes path, recursively for directories. Removing an
// already-absent path is a success.
func (r *Remover) Remove(path string) error {
	if !filepath.IsAbs(path) {
		return &UnsafePathError{Path: path, Reason: "path is not absolute"}
	}
	cleaned := filepath.Clean(path)

	if isFilesystemRoot(cleaned) {
		return &UnsafePathError{Path: path, Reason: "path is a filesystem root"}
	}
	for _, p := range r.protected {
		if strings.EqualFold(cleaned, p) {
			return &UnsafePathError{Path: path, Reason: "path is a protected root"}
		}
	}

	if _, err := os.Lstat(cleaned); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if r.dryRun {
		return nil
	}

	err := os.RemoveAll(cleaned)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrPermission) || r.elevator == nil {
		return err
	}

	if !r.elevationAllowed() {
		return &PermissionError{Path: path, Err: err}
	}
	if elevErr := r.elevator.Remove(cleaned); elevErr != nil {
		return &PermissionError{Path: path, Err: elevErr}
	}
	return nil
}

// elevationAllowed resolves the cached per-run elevation decision.
func (r *Remover) elevationAllowed() bool {
	r.authorizeOnce.Do(func() {
		if r.authorize == nil {
			r.authorized = true
			return
		}
		r.authorized = r.authorize()
	})
	return r.authorized
}

// isFilesystemRoot reports whether the cleaned path is "/" or a Windows
// volume root like "C:\".
func isFilesystemRoot(cleaned string) bool {
	if cleaned == string(filepath.Separator) {
		return true
	}
	vol := filepath.VolumeName(cleaned)
	return vol != "" && len(cleaned) <= len(vol)+1
}
