package provision

import (
	"fmt"
	"path/filepath"

	"github.com/square360/pantheon-workflows/pkg/workflow"
)

// Context holds the paths for one provisioning run. It is resolved once and
// not modified afterwards.
type Context struct {
	PackageRoot string
	ProjectRoot string
	TargetDir   string
}

// Resolve derives the run paths from the host's vendor directory. The
// project root is the parent of the vendor directory.
func Resolve(vendorDir, pkg string) (Context, error) {
	if vendorDir == "" {
		return Context{}, fmt.Errorf("vendor directory is not set")
	}
	if pkg == "" {
		pkg = workflow.DefaultPackage
	}

	abs, err := filepath.Abs(vendorDir)
	if err != nil {
		return Context{}, fmt.Errorf("failed to resolve vendor directory %s: %w", vendorDir, err)
	}

	projectRoot := filepath.Dir(abs)
	return Context{
		PackageRoot: filepath.Join(abs, filepath.FromSlash(pkg)),
		ProjectRoot: projectRoot,
		TargetDir:   filepath.Join(projectRoot, filepath.FromSlash(workflow.TargetDir)),
	}, nil
}

// Rel returns path relative to the project root, falling back to path.
func (c Context) Rel(path string) string {
	rel, err := filepath.Rel(c.ProjectRoot, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
