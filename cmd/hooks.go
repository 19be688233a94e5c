package cmd

import (
	"github.com/spf13/cobra"

	"github.com/square360/pantheon-workflows/pkg/console"
	"github.com/square360/pantheon-workflows/pkg/hooks"
	clog "github.com/square360/pantheon-workflows/pkg/log"
	"github.com/square360/pantheon-workflows/pkg/provision"
)

var postInstallCmd = &cobra.Command{
	Use:   "post-install",
	Short: "Run the Composer post-install-cmd hook",
	Long: `Install the Pantheon workflows after 'composer install'.

Copies the managed workflows into .github/workflows/, replacing any existing
copies, and creates CHANGELOG-WORKFLOWS.md and .github/workflows/README.md if
they do not exist yet.

Failures are reported but never fail the Composer run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHook(cmd, hooks.Subscriber.OnPostInstall)
	},
}

var postUpdateCmd = &cobra.Command{
	Use:   "post-update",
	Short: "Run the Composer post-update-cmd hook",
	Long: `Update the Pantheon workflows after 'composer update'.

Behaves exactly like post-install: managed workflows are always overwritten
with the package version, documentation files are left alone once created.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHook(cmd, hooks.Subscriber.OnPostUpdate)
	},
}

func init() {
	rootCmd.AddCommand(postInstallCmd)
	rootCmd.AddCommand(postUpdateCmd)
}

func runHook(cmd *cobra.Command, hook func(hooks.Subscriber, hooks.Event) *provision.Report) error {
	out := console.New(quiet)
	out.Out = cmd.OutOrStdout()
	out.Err = cmd.ErrOrStderr()

	cfg, err := loadConfig()
	if err != nil {
		// Never fail the host's install over our own config
		out.Error("❌ " + err.Error())
		return nil
	}

	plugin := &hooks.Plugin{
		Package: cfg.Package,
		Options: []provision.Option{provision.WithFs(fsys)},
	}
	report := hook(plugin, console.NewEvent(out, cfg.VendorDir))

	clog.Debug("hook finished",
		"hook", cmd.Name(),
		"entries", len(report.Entries),
		"failures", len(report.Failures()),
	)
	return nil
}
