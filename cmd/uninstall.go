package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/appsweep/appsweep/internal/apps"
	"github.com/appsweep/appsweep/internal/catalog"
	"github.com/appsweep/appsweep/internal/remove"
	"github.com/appsweep/appsweep/internal/sweep"
	"github.com/appsweep/appsweep/internal/ui"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall [app...]",
	Short: "Remove apps completely",
	Long: `Thoroughly remove applications along with their caches, preferences,
containers, logs, crash reports, and other hidden remnants.

With no arguments and a terminal, an interactive picker lists the
installed applications for selection.`,
	RunE: runUninstall,
}

var (
	uninstallDryRun bool
	uninstallYes    bool
	uninstallCap    int
	uninstallSearch string
)

func init() {
	uninstallCmd.Flags().BoolVar(&uninstallDryRun, "dry-run", false, "Preview without uninstalling")
	uninstallCmd.Flags().BoolVar(&uninstallYes, "yes", false, "Skip the confirmation prompt")
	uninstallCmd.Flags().IntVar(&uninstallCap, "cap", sweep.DefaultPreviewCap, "Max related files listed per app in the preview")
	uninstallCmd.Flags().StringVar(&uninstallSearch, "search", "", "Search for apps by name")
}

func runUninstall(cmd *cobra.Command, args []string) error {
	selected, err := selectApps(args)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return fmt.Errorf("no applications selected")
	}

	mode := sweep.Live
	if uninstallDryRun {
		mode = sweep.DryRun
	}

	remover := remove.New(remove.ProtectedRoots(),
		remove.WithElevator(remove.DefaultElevator(), authorizeElevation(uninstallYes)),
		remove.WithDryRun(uninstallDryRun),
	)

	o := sweep.New(sweep.Config{
		Catalog:    catalog.Default(),
		Remover:    remover,
		Terminator: sweep.ProcessTerminator{},
		Registrar:  sweep.DefaultRegistrar(),
		Mode:       mode,
		PreviewCap: uninstallCap,
		Out:        os.Stdout,
		Confirm:    confirmFunc(uninstallYes),
		Debug:      debug,
	})

	_, err = o.Run(selected)
	return err
}

// selectApps resolves the applications to uninstall from the command line,
// the --search flag, or the interactive picker.
func selectApps(args []string) ([]apps.App, error) {
	if uninstallSearch != "" {
		args = append(args, uninstallSearch)
	}

	if len(args) == 0 {
		if !interactive() {
			return nil, fmt.Errorf("no applications named; pass app names or run on a terminal")
		}
		return ui.RunPicker(apps.Scan)
	}

	installed, err := apps.Scan()
	if err != nil {
		return nil, fmt.Errorf("cannot scan installed applications: %w", err)
	}

	var selected []apps.App
	seen := make(map[string]bool)
	for _, arg := range args {
		matches := apps.Filter(installed, arg)
		if len(matches) == 0 {
			return nil, fmt.Errorf("no installed application matches %q", arg)
		}
		// Exact matches sort first; take the best one per argument.
		app := matches[0]
		if seen[app.BundlePath+app.BundleID] {
			continue
		}
		seen[app.BundlePath+app.BundleID] = true
		selected = append(selected, app)
	}
	return selected, nil
}
