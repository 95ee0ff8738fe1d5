package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// interactive reports whether stdin is attached to a terminal.
func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// confirmFunc returns the batch confirmation used by an orchestrated run.
// With assumeYes the prompt is skipped; without a terminal, confirmation
// is impossible and the batch aborts rather than proceeding silently.
func confirmFunc(assumeYes bool) func(string) bool {
	if assumeYes {
		return func(string) bool { return true }
	}
	if !interactive() {
		return func(string) bool {
			fmt.Fprintln(os.Stderr, "stdin is not a terminal; pass --yes to confirm")
			return false
		}
	}
	return func(prompt string) bool {
		fmt.Printf("%s [y/N] ", prompt)
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}

// authorizeElevation asks once per run whether protected files may be
// removed with elevated privileges.
func authorizeElevation(assumeYes bool) func() bool {
	confirm := confirmFunc(assumeYes)
	return func() bool {
		return confirm("Some files require elevated privileges to remove. Elevate")
	}
}
