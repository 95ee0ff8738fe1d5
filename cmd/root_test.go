package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestExecuteSurfacesRunLevelErrors(t *testing.T) {
	var errOut bytes.Buffer
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"decode", "!!!not-base64!!!"})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected a decode failure")
	}
	if !strings.Contains(errOut.String(), "not valid base64") {
		t.Errorf("run-level error was not reported: %q", errOut.String())
	}
}
