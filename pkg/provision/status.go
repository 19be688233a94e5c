package provision

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/square360/pantheon-workflows/pkg/utils"
)

// State describes an installed managed file relative to the package.
type State int

const (
	UpToDate State = iota
	Modified
	Missing
	SourceMissing
)

func (s State) String() string {
	switch s {
	case UpToDate:
		return "up to date"
	case Modified:
		return "modified"
	case Missing:
		return "missing"
	case SourceMissing:
		return "source missing"
	}
	return "unknown"
}

// ManagedStatus is the drift state of one managed workflow.
type ManagedStatus struct {
	Name  string
	Path  string
	State State
	// YAMLErr is set when the installed file does not parse.
	YAMLErr error
}

// AuxiliaryStatus reports whether an auxiliary file has been created.
type AuxiliaryStatus struct {
	Name    string
	Path    string
	Present bool
}

// StatusReport is the read-only view produced by Status.
type StatusReport struct {
	Managed   []ManagedStatus
	Auxiliary []AuxiliaryStatus
}

// Drifted returns the managed files that a run would change or cannot fix.
func (s *StatusReport) Drifted() []ManagedStatus {
	var out []ManagedStatus
	for _, m := range s.Managed {
		if m.State != UpToDate {
			out = append(out, m)
		}
	}
	return out
}

// Status compares the installed files against the package without writing
// anything.
func (p *Provisioner) Status() (*StatusReport, error) {
	if !utils.DirExists(p.fs, p.pctx.PackageRoot) {
		return nil, fmt.Errorf("%w: %s", ErrMissingPackageDirectory, p.pctx.PackageRoot)
	}

	report := &StatusReport{}
	for _, f := range p.managed {
		report.Managed = append(report.Managed, p.managedStatus(f))
	}
	for _, f := range p.auxiliary {
		report.Auxiliary = append(report.Auxiliary, AuxiliaryStatus{
			Name:    f.Name,
			Path:    f.Dest,
			Present: utils.Exists(p.fs, f.Dest),
		})
	}
	return report, nil
}

func (p *Provisioner) managedStatus(f ManagedFile) ManagedStatus {
	st := ManagedStatus{Name: f.Name, Path: f.Dest}

	src, err := utils.HashFile(p.fs, f.Source)
	if err != nil {
		st.State = SourceMissing
		return st
	}
	dst, err := utils.HashFile(p.fs, f.Dest)
	if err != nil {
		st.State = Missing
		return st
	}

	if src == dst {
		st.State = UpToDate
	} else {
		st.State = Modified
	}

	data, err := utils.ReadFile(p.fs, f.Dest)
	if err == nil {
		var node yaml.Node
		if err := yaml.Unmarshal([]byte(data), &node); err != nil {
			st.YAMLErr = err
		}
	}
	return st
}
