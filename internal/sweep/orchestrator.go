// Package sweep drives the end-to-end batch uninstall flow: preview,
// confirmation, process termination, removal, and summary.
package sweep

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/appsweep/appsweep/internal/apps"
	"github.com/appsweep/appsweep/internal/catalog"
	"github.com/appsweep/appsweep/internal/core"
	"github.com/appsweep/appsweep/internal/resolve"
	"github.com/appsweep/appsweep/internal/size"
)

// RunMode selects whether removals mutate the filesystem.
type RunMode int

const (
	Live RunMode = iota
	DryRun
)

// DefaultPreviewCap is the default number of related files listed per app
// before the preview collapses the tail into a "+K more" line.
const DefaultPreviewCap = 5

// ErrNoSelection is returned when Run is invoked with no applications.
var ErrNoSelection = errors.New("no applications selected")

// ErrAllFailed is returned when every removal in the batch failed.
var ErrAllFailed = errors.New("no application could be processed")

// PathRemover is the slice of the safe remover the orchestrator needs.
type PathRemover interface {
	Remove(path string) error
}

// Config wires the orchestrator's collaborators. Mode is passed explicitly
// to every mutating step; there is no ambient dry-run state.
type Config struct {
	Catalog    *catalog.Catalog
	Remover    PathRemover
	Terminator Terminator
	Registrar  Registrar
	Mode       RunMode
	PreviewCap int
	Out        io.Writer

	// Confirm blocks for the single batch confirmation. Any response other
	// than true aborts with no side effects. nil never confirms.
	Confirm func(prompt string) bool

	// Debug surfaces discovery warnings that are otherwise silent.
	Debug bool
}

// Failure records one path that could not be removed.
type Failure struct {
	App  string
	Path string
	Err  error
}

// Summary accumulates the results of one orchestrated run. It is owned by
// the run and never shared; there are no process-wide counters.
type Summary struct {
	AppsProcessed int
	FilesRemoved  int
	BytesRemoved  int64
	Failures      []Failure
	Warnings      []string
	Aborted       bool
}

// pathEntry is one removal target with its pre-removal size.
type pathEntry struct {
	path     string
	category catalog.Category
	bytes    int64
	isBundle bool
}

// appPlan is the fixed removal batch for one application. Membership never
// grows after confirmation; entries are only skipped on individual failure.
type appPlan struct {
	app        apps.App
	entries    []pathEntry
	totalBytes int64
}

// Orchestrator runs one batch uninstall. It holds no state across runs.
type Orchestrator struct {
	cfg Config
}

// New returns an orchestrator for the given configuration.
func New(cfg Config) *Orchestrator {
	if cfg.PreviewCap <= 0 {
		cfg.PreviewCap = DefaultPreviewCap
	}
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	if cfg.Terminator == nil {
		cfg.Terminator = ProcessTerminator{}
	}
	if cfg.Registrar == nil {
		cfg.Registrar = NoopRegistrar{}
	}
	return &Orchestrator{cfg: cfg}
}

// Run executes the full flow for the selected applications:
// Preview → Confirm → Terminating → Removing → Summarized.
func (o *Orchestrator) Run(selected []apps.App) (*Summary, error) {
	if len(selected) == 0 {
		return nil, ErrNoSelection
	}

	summary := &Summary{}
	plans := o.preview(selected, summary)

	if !o.confirm(plans) {
		summary.Aborted = true
		fmt.Fprintln(o.cfg.Out, "Aborted. Nothing was removed.")
		return summary, nil
	}

	for _, plan := range plans {
		o.removeApp(plan, summary)
	}

	o.summarize(summary)

	if summary.AppsProcessed == 0 {
		return summary, ErrAllFailed
	}
	return summary, nil
}

// preview resolves each application's footprint and renders the capped
// file list. The returned plans are the fixed removal batches.
func (o *Orchestrator) preview(selected []apps.App, summary *Summary) []appPlan {
	var plans []appPlan
	for _, app := range selected {
		artifacts, warnings := resolve.New(o.cfg.Catalog).Resolve(app.BundleID, app.DisplayName)
		if o.cfg.Debug {
			for _, w := range warnings {
				fmt.Fprintf(os.Stderr, "debug: %s\n", w)
			}
		}

		plan := appPlan{app: app}
		if app.BundlePath != "" {
			if _, err := os.Lstat(app.BundlePath); err == nil {
				plan.entries = append(plan.entries, pathEntry{
					path:     app.BundlePath,
					bytes:    size.Of(app.BundlePath),
					isBundle: true,
				})
			} else {
				// Bundle already gone (deleted externally); removal of the
				// remaining footprint still proceeds.
				plan.entries = append(plan.entries, pathEntry{path: app.BundlePath, isBundle: true})
			}
		}
		for _, a := range artifacts {
			plan.entries = append(plan.entries, pathEntry{
				path:     a.Path,
				category: a.Category,
				bytes:    size.Of(a.Path),
			})
		}
		for _, e := range plan.entries {
			plan.totalBytes += e.bytes
		}

		o.renderPreview(plan)
		plans = append(plans, plan)
	}
	return plans
}

// renderPreview lists an application's related files, collapsing the tail
// only when collapsing actually saves lines: with cap entries plus one, the
// "+1 more" line would occupy the line the entry itself needs, so the full
// list is shown instead.
func (o *Orchestrator) renderPreview(plan appPlan) {
	out := o.cfg.Out
	fmt.Fprintf(out, "%s\n", renderAppHeader(plan.app, plan.totalBytes))

	var related []pathEntry
	for _, e := range plan.entries {
		if e.isBundle {
			fmt.Fprintf(out, "  %s\n", renderBundleLine(e.path, e.bytes))
			continue
		}
		related = append(related, e)
	}

	limit := o.cfg.PreviewCap
	shown := related
	if len(related) > limit+1 {
		shown = related[:limit]
	}
	for _, e := range shown {
		fmt.Fprintf(out, "  %s\n", renderArtifactLine(e.path, string(e.category), e.bytes))
	}
	if hidden := len(related) - len(shown); hidden > 0 {
		fmt.Fprintf(out, "  %s\n", renderMoreLine(hidden))
	}
}

// confirm issues the single blocking batch prompt.
func (o *Orchestrator) confirm(plans []appPlan) bool {
	if o.cfg.Confirm == nil {
		return false
	}
	var files int
	var bytes int64
	for _, p := range plans {
		files += len(p.entries)
		bytes += p.totalBytes
	}
	verb := "Remove"
	if o.cfg.Mode == DryRun {
		verb = "Preview removal of"
	}
	prompt := fmt.Sprintf("%s %d %s (%s) for %d %s?",
		verb,
		files, core.Plural(files, "file", "files"),
		core.FormatSize(bytes),
		len(plans), core.Plural(len(plans), "app", "apps"))
	return o.cfg.Confirm(prompt)
}

// removeApp terminates the application's processes, removes every entry in
// its plan, and unregisters launcher integration. Removals are independent:
// one failure never blocks the next path.
func (o *Orchestrator) removeApp(plan appPlan, summary *Summary) {
	name := plan.app.DisplayName

	if o.cfg.Mode == Live {
		if err := o.cfg.Terminator.Terminate(name); err != nil {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("%s: %v", name, err))
		}
	}

	removedAny := false
	for _, e := range plan.entries {
		if err := o.cfg.Remover.Remove(e.path); err != nil {
			summary.Failures = append(summary.Failures, Failure{App: name, Path: e.path, Err: err})
			continue
		}
		removedAny = true
		summary.FilesRemoved++
		summary.BytesRemoved += e.bytes
	}

	if o.cfg.Mode == Live {
		if err := o.cfg.Registrar.Unregister(plan.app); err != nil {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("%s: launcher cleanup: %v", name, err))
		}
	}

	if removedAny || len(plan.entries) == 0 {
		summary.AppsProcessed++
	}
}

// summarize writes the run report: totals always, failures and warnings
// when present.
func (o *Orchestrator) summarize(summary *Summary) {
	out := o.cfg.Out
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderSummary(summary, o.cfg.Mode == DryRun))
	for _, f := range summary.Failures {
		fmt.Fprintf(out, "  %s\n", renderFailure(f))
	}
	for _, w := range summary.Warnings {
		fmt.Fprintf(out, "  %s\n", renderWarning(w))
	}
}
