//go:build darwin

package remove

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

// elevateTimeout bounds a single elevated removal, including the time the
// user spends at the sudo password prompt.
const elevateTimeout = 120 * time.Second

// SudoElevator removes paths through sudo. sudo caches credentials for the
// session, so repeated removals after the first prompt do not re-prompt.
type SudoElevator struct{}

// Remove deletes path with root privileges.
func (SudoElevator) Remove(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), elevateTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sudo", "-p", "Password required to remove protected files: ", "rm", "-rf", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("elevated removal failed: %w (%s)", err, trimOutput(output))
	}
	return nil
}

// DefaultElevator returns the platform escalation capability.
func DefaultElevator() Elevator {
	return SudoElevator{}
}

func trimOutput(output []byte) string {
	s := string(output)
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
