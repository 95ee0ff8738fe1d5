package sweep

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/appsweep/appsweep/internal/apps"
	"github.com/appsweep/appsweep/internal/core"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func renderAppHeader(app apps.App, totalBytes int64) string {
	id := app.BundleID
	if id == "" {
		id = "no bundle id"
	}
	return headerStyle.Render(app.DisplayName) + " " +
		dimStyle.Render(fmt.Sprintf("(%s, %s)", id, core.FormatSize(totalBytes)))
}

func renderBundleLine(path string, bytes int64) string {
	return fmt.Sprintf("%-58s %10s  %s", path, core.FormatSize(bytes), dimStyle.Render("bundle"))
}

func renderArtifactLine(path, category string, bytes int64) string {
	return fmt.Sprintf("%-58s %10s  %s", path, core.FormatSize(bytes), dimStyle.Render(category))
}

func renderMoreLine(hidden int) string {
	return dimStyle.Render(fmt.Sprintf("+%d more %s", hidden, core.Plural(hidden, "file", "files")))
}

func renderSummary(s *Summary, dryRun bool) string {
	verb := "Removed"
	if dryRun {
		verb = "Would remove"
	}
	line := successStyle.Render(fmt.Sprintf("%s %d %s (%s) across %d %s",
		verb,
		s.FilesRemoved, core.Plural(s.FilesRemoved, "file", "files"),
		core.FormatSize(s.BytesRemoved),
		s.AppsProcessed, core.Plural(s.AppsProcessed, "app", "apps")))
	if len(s.Failures) > 0 {
		line += "\n" + failStyle.Render(fmt.Sprintf("%d %s failed:",
			len(s.Failures), core.Plural(len(s.Failures), "path", "paths")))
	}
	return line
}

func renderFailure(f Failure) string {
	return failStyle.Render(fmt.Sprintf("%s: %s: %v", f.App, f.Path, f.Err))
}

func renderWarning(w string) string {
	return warnStyle.Render("warning: " + w)
}
