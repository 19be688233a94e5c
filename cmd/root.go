package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	clog "github.com/square360/pantheon-workflows/pkg/log"
	"github.com/square360/pantheon-workflows/pkg/style"
)

var (
	quiet      bool
	verbose    bool
	projectDir string
)

var rootCmd = &cobra.Command{
	Use:   "pantheon-workflows",
	Short: "Install Square360 Pantheon GitHub workflows from Composer hooks",
	Long: `pantheon-workflows keeps a project's Pantheon deployment workflows in sync
with the square360/pantheon-github-workflows Composer package.

Wire it into composer.json so it runs after every install and update:

  "scripts": {
    "post-install-cmd": "vendor/bin/pantheon-workflows post-install",
    "post-update-cmd": "vendor/bin/pantheon-workflows post-update"
  }

The deploy workflows in .github/workflows/ are overwritten on every run.
CHANGELOG-WORKFLOWS.md and .github/workflows/README.md are created once.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load .env from the project if it exists
		_ = godotenv.Load(filepath.Join(projectDir, ".env"))

		applyLogFlags()
		return nil
	},
}

// applyLogFlags lets -v and -q win over the configured log level.
func applyLogFlags() {
	if verbose {
		clog.SetVerbose(true)
	}
	clog.SetQuiet(quiet)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	style.SetupHelp(rootCmd)

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&projectDir, "project-dir", "C", ".", "Project root containing composer.json")
}
