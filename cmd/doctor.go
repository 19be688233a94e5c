package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/square360/pantheon-workflows/pkg/provision"
	"github.com/square360/pantheon-workflows/pkg/style"
	"github.com/square360/pantheon-workflows/pkg/utils"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the project setup for the workflow hooks",
	Long:  `Verify composer.json, the vendor directory and the package templates needed by the hooks.`,
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s Checking pantheon-workflows setup\n\n", style.Arrow())

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(w, "%s %v\n", style.Cross(), err)
		return fmt.Errorf("setup issues detected")
	}

	allGood := true

	// Check 1: composer.json
	if cfg.Found {
		fmt.Fprintf(w, "%s %s found\n", style.Check(), cfg.ComposerFile)
	} else {
		fmt.Fprintf(w, "%s %s not found, using defaults\n", style.Warn(), cfg.ComposerFile)
	}

	// Check 2: vendor dir
	if utils.DirExists(fsys, cfg.VendorDir) {
		fmt.Fprintf(w, "%s vendor dir %s\n", style.Check(), cfg.VendorDir)
	} else {
		fmt.Fprintf(w, "%s vendor dir %s does not exist\n", style.Cross(), cfg.VendorDir)
		fmt.Fprintf(w, "  Fix: composer install\n")
		allGood = false
	}

	pctx, err := provision.Resolve(cfg.VendorDir, cfg.Package)
	if err != nil {
		fmt.Fprintf(w, "%s %v\n", style.Cross(), err)
		return fmt.Errorf("setup issues detected")
	}

	// Check 3: package installed
	if utils.DirExists(fsys, pctx.PackageRoot) {
		fmt.Fprintf(w, "%s %s installed\n", style.Check(), cfg.Package)
	} else {
		fmt.Fprintf(w, "%s %s not installed in %s\n", style.Cross(), cfg.Package, pctx.PackageRoot)
		fmt.Fprintf(w, "  Fix: composer require --dev %s\n", cfg.Package)
		allGood = false
	}

	// Check 4: templates present
	for _, f := range provision.DefaultManagedFiles(pctx) {
		if utils.FileExists(fsys, f.Source) {
			fmt.Fprintf(w, "%s template %s\n", style.Check(), f.Name)
		} else {
			fmt.Fprintf(w, "%s template %s missing\n", style.Cross(), f.Name)
			allGood = false
		}
	}

	fmt.Fprintln(w)

	if !allGood {
		return fmt.Errorf("setup issues detected")
	}
	fmt.Fprintf(w, "%s Setup OK\n", style.Check())
	return nil
}
