package provision

import (
	"path/filepath"
	"time"

	"github.com/square360/pantheon-workflows/pkg/workflow"
)

// ManagedFile is a workflow copied from the package on every run.
type ManagedFile struct {
	Name   string
	Source string
	Dest   string
}

// AuxiliaryFile is created once from Generate and preserved afterwards.
type AuxiliaryFile struct {
	Name     string
	Dest     string
	Generate func(now time.Time) (string, error)
}

// DefaultManagedFiles returns the deployment workflows shipped by the package.
func DefaultManagedFiles(pctx Context) []ManagedFile {
	templates := filepath.Join(pctx.PackageRoot, filepath.FromSlash(workflow.TemplatesDir))

	files := make([]ManagedFile, 0, len(workflow.Managed))
	for _, name := range workflow.Managed {
		files = append(files, ManagedFile{
			Name:   name,
			Source: filepath.Join(templates, name),
			Dest:   filepath.Join(pctx.TargetDir, name),
		})
	}
	return files
}

// DefaultAuxiliaryFiles returns the changelog and workflows README for pkg.
func DefaultAuxiliaryFiles(pctx Context, pkg string) []AuxiliaryFile {
	return []AuxiliaryFile{
		{
			Name: workflow.ChangelogName,
			Dest: filepath.Join(pctx.ProjectRoot, workflow.ChangelogName),
			Generate: func(now time.Time) (string, error) {
				return workflow.Changelog(pkg, now)
			},
		},
		{
			Name: workflow.ReadmeName,
			Dest: filepath.Join(pctx.TargetDir, workflow.ReadmeName),
			Generate: func(time.Time) (string, error) {
				return workflow.Readme(pkg)
			},
		},
	}
}
