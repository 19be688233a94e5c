package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/square360/pantheon-workflows/pkg/style"
)

var configCmd = &cobra.Command{
	Use:   "config [key]",
	Short: "Show resolved configuration",
	Long: `Show the settings the hooks resolve from composer.json and the environment.

Sources, highest priority first:
  COMPOSER_VENDOR_DIR          vendor directory (Composer's own override)
  PANTHEON_WORKFLOWS_PACKAGE   package name
  PANTHEON_WORKFLOWS_LOG_LEVEL debug, info, warn or error
  composer.json                config.vendor-dir, name

Examples:
  pantheon-workflows config
  pantheon-workflows config vendor_dir`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	if len(args) == 1 {
		val, err := cfg.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(w, val)
		return nil
	}

	all := cfg.All()
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(w, "%s: %s\n", style.Cyan(k), all[k])
	}
	return nil
}
