package provision

import (
	"fmt"
	"time"

	"github.com/spf13/afero"

	clog "github.com/square360/pantheon-workflows/pkg/log"
	"github.com/square360/pantheon-workflows/pkg/utils"
	"github.com/square360/pantheon-workflows/pkg/workflow"
)

// Provisioner installs the workflow files for one Context. It keeps no state
// between runs.
type Provisioner struct {
	pctx      Context
	fs        afero.Fs
	now       func() time.Time
	pkg       string
	managed   []ManagedFile
	auxiliary []AuxiliaryFile
}

// Option configures a Provisioner.
type Option func(*Provisioner)

// WithFs sets the filesystem. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(p *Provisioner) { p.fs = fs }
}

// WithClock sets the time source passed to auxiliary content generators.
func WithClock(now func() time.Time) Option {
	return func(p *Provisioner) { p.now = now }
}

// WithAuxiliaryFiles replaces the default auxiliary file list. It takes
// precedence over WithPackage regardless of option order.
func WithAuxiliaryFiles(files []AuxiliaryFile) Option {
	return func(p *Provisioner) { p.auxiliary = files }
}

// WithPackage sets the package name rendered into the default auxiliary
// files.
func WithPackage(pkg string) Option {
	return func(p *Provisioner) { p.pkg = pkg }
}

// New returns a Provisioner for pctx.
func New(pctx Context, opts ...Option) *Provisioner {
	p := &Provisioner{
		pctx:    pctx,
		fs:      afero.NewOsFs(),
		now:     time.Now,
		pkg:     workflow.DefaultPackage,
		managed: DefaultManagedFiles(pctx),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.auxiliary == nil {
		p.auxiliary = DefaultAuxiliaryFiles(p.pctx, p.pkg)
	}
	return p
}

// Context returns the paths the Provisioner was built with.
func (p *Provisioner) Context() Context {
	return p.pctx
}

// Run provisions every file and returns the per-file outcomes. It never
// returns early except when the package directory is missing.
func (p *Provisioner) Run() *Report {
	report := &Report{}
	log := clog.With("project", p.pctx.ProjectRoot)

	if !utils.DirExists(p.fs, p.pctx.PackageRoot) {
		log.Debug("package directory missing", "path", p.pctx.PackageRoot)
		report.add(Entry{
			Name:    p.pctx.PackageRoot,
			Path:    p.pctx.PackageRoot,
			Outcome: Failed,
			Detail:  "package directory not found",
			Err:     fmt.Errorf("%w: %s", ErrMissingPackageDirectory, p.pctx.PackageRoot),
		})
		return report
	}

	if p.ensureTargetDir(report) {
		for _, f := range p.managed {
			e := p.copyManaged(f)
			log.Debug("managed file", "file", f.Name, "outcome", e.Outcome, "error", e.Err)
			report.add(e)
		}
	} else {
		log.Debug("skipping managed files", "target", p.pctx.TargetDir)
	}

	now := p.now()
	for _, f := range p.auxiliary {
		e := p.createAuxiliary(f, now)
		log.Debug("auxiliary file", "file", f.Name, "outcome", e.Outcome, "error", e.Err)
		report.add(e)
	}

	return report
}

func (p *Provisioner) ensureTargetDir(report *Report) bool {
	dir := p.pctx.TargetDir
	if utils.DirExists(p.fs, dir) {
		return true
	}

	if err := p.fs.MkdirAll(dir, utils.DirMode); err != nil {
		report.add(Entry{
			Name:    p.pctx.Rel(dir),
			Path:    dir,
			Outcome: Failed,
			Detail:  "could not create directory",
			Err:     fmt.Errorf("%w: %s: %v", ErrDirectoryCreate, dir, err),
		})
		return false
	}

	report.DirectoryCreated = true
	return true
}

func (p *Provisioner) copyManaged(f ManagedFile) Entry {
	e := Entry{Name: f.Name, Path: f.Dest}

	if !utils.FileExists(p.fs, f.Source) {
		e.Outcome = Failed
		e.Detail = f.Source
		e.Err = fmt.Errorf("%w: %s", ErrSourceFileMissing, f.Source)
		return e
	}

	existed := utils.Exists(p.fs, f.Dest)
	if err := utils.CopyFile(p.fs, f.Source, f.Dest); err != nil {
		e.Outcome = Failed
		e.Detail = "failed to copy"
		e.Err = fmt.Errorf("%w: %s: %v", ErrCopyFailure, f.Name, err)
		return e
	}

	if existed {
		e.Outcome = Updated
		e.Detail = "overwritten with package version"
	} else {
		e.Outcome = Installed
		e.Detail = "installed from package"
	}
	return e
}

func (p *Provisioner) createAuxiliary(f AuxiliaryFile, now time.Time) Entry {
	e := Entry{Name: f.Name, Path: f.Dest}

	if utils.Exists(p.fs, f.Dest) {
		e.Outcome = Preserved
		e.Detail = "preserved existing"
		return e
	}

	content, err := f.Generate(now)
	if err == nil {
		err = afero.WriteFile(p.fs, f.Dest, []byte(content), utils.FileMode)
	}
	if err != nil {
		e.Outcome = Failed
		e.Detail = "failed to create"
		e.Err = fmt.Errorf("%w: %s: %v", ErrWriteFailure, f.Name, err)
		return e
	}

	e.Outcome = Installed
	e.Detail = "created"
	return e
}
