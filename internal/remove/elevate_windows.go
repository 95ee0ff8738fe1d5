//go:build windows

package remove

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sys/windows"
)

const elevateTimeout = 120 * time.Second

// UACElevator removes paths through an elevated PowerShell invocation,
// which triggers a single UAC consent prompt. When the current process
// already holds an elevated token, removal runs directly instead.
type UACElevator struct{}

// Remove deletes path with administrator privileges.
func (UACElevator) Remove(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), elevateTimeout)
	defer cancel()

	if IsElevated() {
		cmd := exec.CommandContext(ctx, "cmd", "/C", "rd", "/s", "/q", path)
		output, err := cmd.CombinedOutput()
		if err != nil {
			return fmt.Errorf("elevated removal failed: %w (%s)", err, trimOutput(output))
		}
		return nil
	}

	// -Verb RunAs raises the UAC prompt; -Wait keeps failures observable.
	script := fmt.Sprintf(
		`Start-Process -FilePath cmd -ArgumentList '/C','rd','/s','/q','%s' -Verb RunAs -Wait -WindowStyle Hidden`,
		escapePS(path),
	)
	cmd := exec.CommandContext(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("elevated removal failed: %w (%s)", err, trimOutput(output))
	}
	return nil
}

// IsElevated reports whether the current process token carries
// administrator rights.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// DefaultElevator returns the platform escalation capability.
func DefaultElevator() Elevator {
	return UACElevator{}
}

func escapePS(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func trimOutput(output []byte) string {
	s := string(output)
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
