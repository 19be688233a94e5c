package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/square360/pantheon-workflows/pkg/provision"
	"github.com/square360/pantheon-workflows/pkg/style"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check installed workflows against the package",
	Long: `Compare the workflows in .github/workflows/ with the versions shipped by
the installed package. Nothing is written.

Exits non-zero when a managed workflow is modified or missing, so it can be
used as a CI guard. Run 'composer update' or 'pantheon-workflows post-update'
to restore the package versions.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := newProvisioner(cfg)
	if err != nil {
		return err
	}

	status, err := p.Status()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	pctx := p.Context()

	fmt.Fprintf(w, "%s Managed workflows\n\n", style.Arrow())
	for _, m := range status.Managed {
		mark := style.Check()
		if m.State != provision.UpToDate {
			mark = style.Cross()
		}
		fmt.Fprintf(w, "%s %s %s\n", mark, style.Cyan(pctx.Rel(m.Path)), style.Gray("("+m.State.String()+")"))
		if m.YAMLErr != nil {
			fmt.Fprintf(w, "  %s invalid YAML: %v\n", style.Warn(), m.YAMLErr)
		}
	}

	fmt.Fprintf(w, "\n%s Documentation\n\n", style.Arrow())
	for _, a := range status.Auxiliary {
		if a.Present {
			fmt.Fprintf(w, "%s %s\n", style.Check(), style.Cyan(pctx.Rel(a.Path)))
		} else {
			fmt.Fprintf(w, "%s %s %s\n", style.Warn(), style.Cyan(pctx.Rel(a.Path)), style.Gray("(not created)"))
		}
	}
	fmt.Fprintln(w)

	if drifted := status.Drifted(); len(drifted) > 0 {
		return fmt.Errorf("%d managed workflow(s) out of date", len(drifted))
	}
	fmt.Fprintf(w, "%s Workflows up to date\n", style.Check())
	return nil
}
