package cmd

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/square360/pantheon-workflows/pkg/config"
	clog "github.com/square360/pantheon-workflows/pkg/log"
	"github.com/square360/pantheon-workflows/pkg/provision"
)

// fsys is swapped for an in-memory filesystem in tests
var fsys afero.Fs = afero.NewOsFs()

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFs(fsys, projectDir)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	// A bad level must not fail a Composer hook, so fall back to warn
	if err := clog.SetLevel(cfg.LogLevel); err != nil {
		_ = clog.SetLevel("warn")
		clog.Warn("ignoring log level", "error", err)
	}
	applyLogFlags()

	clog.Debug("loaded config",
		"composer_file", cfg.ComposerFile,
		"found", cfg.Found,
		"vendor_dir", cfg.VendorDir,
		"package", cfg.Package,
	)
	return cfg, nil
}

// newProvisioner resolves the run paths from cfg.
func newProvisioner(cfg *config.Config) (*provision.Provisioner, error) {
	pctx, err := provision.Resolve(cfg.VendorDir, cfg.Package)
	if err != nil {
		return nil, err
	}
	return provision.New(pctx, provision.WithFs(fsys), provision.WithPackage(cfg.Package)), nil
}
