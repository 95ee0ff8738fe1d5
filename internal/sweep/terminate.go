package sweep

import (
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// Terminator stops running instances of an application before its files
// are removed. Implementations are best-effort: an error is recorded as a
// warning and never blocks file removal.
type Terminator interface {
	Terminate(name string) error
}

// ProcessTerminator matches processes by executable name, asks them to
// exit, and escalates to a forceful kill after a grace period.
type ProcessTerminator struct {
	// Grace is how long to wait between the graceful signal and the kill.
	Grace time.Duration
}

const defaultGrace = 2 * time.Second

// Terminate signals every process whose name matches the application.
// Waiting for the grace period blocks this application's removal step
// only; no error is returned when no matching process is running.
func (t ProcessTerminator) Terminate(name string) error {
	grace := t.Grace
	if grace <= 0 {
		grace = defaultGrace
	}

	procs, err := process.Processes()
	if err != nil {
		return fmt.Errorf("cannot enumerate processes: %w", err)
	}

	var matched []*process.Process
	for _, p := range procs {
		pname, nameErr := p.Name()
		if nameErr != nil {
			continue
		}
		if matchesProcessName(pname, name) {
			matched = append(matched, p)
		}
	}
	if len(matched) == 0 {
		return nil
	}

	for _, p := range matched {
		_ = p.Terminate()
	}

	deadline := time.Now().Add(grace)
	for time.Now().Before(deadline) {
		if !anyRunning(matched) {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}

	var stubborn []string
	for _, p := range matched {
		if running, _ := p.IsRunning(); !running {
			continue
		}
		if killErr := p.Kill(); killErr != nil {
			stubborn = append(stubborn, fmt.Sprintf("pid %d: %v", p.Pid, killErr))
		}
	}
	if len(stubborn) > 0 {
		return fmt.Errorf("could not stop %s: %s", name, strings.Join(stubborn, "; "))
	}
	return nil
}

func anyRunning(procs []*process.Process) bool {
	for _, p := range procs {
		if running, _ := p.IsRunning(); running {
			return true
		}
	}
	return false
}

// matchesProcessName compares a process executable name against an app
// name, tolerating the .exe suffix and case differences.
func matchesProcessName(procName, appName string) bool {
	procName = strings.TrimSuffix(strings.ToLower(procName), ".exe")
	return procName == strings.ToLower(appName)
}
