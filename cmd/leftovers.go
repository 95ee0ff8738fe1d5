package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/appsweep/appsweep/internal/apps"
	"github.com/appsweep/appsweep/internal/catalog"
	"github.com/appsweep/appsweep/internal/core"
	"github.com/appsweep/appsweep/internal/orphans"
	"github.com/appsweep/appsweep/internal/remove"
	"github.com/appsweep/appsweep/internal/size"
)

var leftoversCmd = &cobra.Command{
	Use:   "leftovers",
	Short: "Find data from uninstalled apps",
	Long: `Scan the per-app storage locations for vendor data whose owning
application is no longer installed, then optionally remove it.`,
	RunE: runLeftovers,
}

var (
	leftoversDryRun bool
	leftoversYes    bool
)

func init() {
	leftoversCmd.Flags().BoolVar(&leftoversDryRun, "dry-run", false, "Preview without deleting")
	leftoversCmd.Flags().BoolVar(&leftoversYes, "yes", false, "Skip the confirmation prompt")
}

func runLeftovers(cmd *cobra.Command, args []string) error {
	installed, err := apps.Scan()
	if err != nil {
		return fmt.Errorf("cannot scan installed applications: %w", err)
	}

	found := orphans.Find(catalog.Default(), installed)
	if len(found) == 0 {
		fmt.Println("No orphaned application data found.")
		return nil
	}

	var totalBytes int64
	for _, o := range found {
		bytes := size.Of(o.Path)
		totalBytes += bytes
		fmt.Printf("  %-58s %10s  %s\n", o.Path, core.FormatSize(bytes), o.Category)
	}
	fmt.Printf("\n%d orphaned %s, %s total\n",
		len(found), core.Plural(len(found), "entry", "entries"), core.FormatSize(totalBytes))

	prompt := fmt.Sprintf("Remove %d orphaned %s (%s)?",
		len(found), core.Plural(len(found), "entry", "entries"), core.FormatSize(totalBytes))
	if !confirmFunc(leftoversYes)(prompt) {
		fmt.Println("Aborted. Nothing was removed.")
		return nil
	}

	remover := remove.New(remove.ProtectedRoots(),
		remove.WithElevator(remove.DefaultElevator(), authorizeElevation(leftoversYes)),
		remove.WithDryRun(leftoversDryRun),
	)

	var removed, failed int
	for _, o := range found {
		if err := remover.Remove(o.Path); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "  failed: %s: %v\n", o.Path, err)
			continue
		}
		removed++
	}

	verb := "Removed"
	if leftoversDryRun {
		verb = "Would remove"
	}
	fmt.Printf("%s %d %s", verb, removed, core.Plural(removed, "entry", "entries"))
	if failed > 0 {
		fmt.Printf(" (%d failed)", failed)
	}
	fmt.Println()

	if removed == 0 && failed > 0 {
		return fmt.Errorf("no orphaned entry could be removed")
	}
	return nil
}
