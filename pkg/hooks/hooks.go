// Package hooks connects Composer lifecycle events to the provisioner.
package hooks

import (
	"errors"
	"fmt"

	"github.com/square360/pantheon-workflows/pkg/provision"
	"github.com/square360/pantheon-workflows/pkg/workflow"
)

// IO is the host's leveled output channel.
type IO interface {
	Info(msg string)
	Error(msg string)
	Comment(msg string)
}

// Event is what the host hands to a lifecycle hook.
type Event interface {
	IO() IO
	// VendorDir is the host's configured dependency directory.
	VendorDir() string
}

// Subscriber receives the post-install and post-update events.
type Subscriber interface {
	OnPostInstall(ev Event) *provision.Report
	OnPostUpdate(ev Event) *provision.Report
}

// Plugin provisions the workflows on both events. Install and update
// converge on the same files, so both hooks do the same thing.
type Plugin struct {
	// Package is the Composer package name; empty means workflow.DefaultPackage.
	Package string
	// Options are passed through to provision.New.
	Options []provision.Option
}

var _ Subscriber = (*Plugin)(nil)

func (p *Plugin) OnPostInstall(ev Event) *provision.Report {
	return p.install(ev)
}

func (p *Plugin) OnPostUpdate(ev Event) *provision.Report {
	return p.install(ev)
}

func (p *Plugin) pkg() string {
	if p.Package == "" {
		return workflow.DefaultPackage
	}
	return p.Package
}

func (p *Plugin) install(ev Event) *provision.Report {
	out := ev.IO()
	out.Info("\n🚀 Installing Square360 Pantheon GitHub Workflows...")

	pctx, err := provision.Resolve(ev.VendorDir(), p.pkg())
	if err != nil {
		report := &provision.Report{Entries: []provision.Entry{{
			Name:    ev.VendorDir(),
			Outcome: provision.Failed,
			Detail:  err.Error(),
			Err:     fmt.Errorf("%w: %v", provision.ErrMissingPackageDirectory, err),
		}}}
		Render(out, pctx, report)
		return report
	}

	opts := append([]provision.Option{provision.WithPackage(p.pkg())}, p.Options...)
	report := provision.New(pctx, opts...).Run()
	Render(out, pctx, report)
	return report
}

// Render writes a report to out the way Composer users expect to see it.
func Render(out IO, pctx provision.Context, report *provision.Report) {
	if report.DirectoryCreated {
		out.Info("📁 Created directory: " + pctx.Rel(pctx.TargetDir) + "/")
	}

	for _, e := range report.Entries {
		rel := pctx.Rel(e.Path)
		switch e.Outcome {
		case provision.Installed:
			if workflow.IsManaged(e.Name) {
				out.Info("✅ Installed: " + rel)
			} else {
				out.Info("✅ Created: " + rel)
			}
		case provision.Updated:
			out.Info("✅ Updated: " + rel)
		case provision.Preserved:
			out.Comment("⚡ Preserved existing: " + rel)
		case provision.Failed:
			out.Error("❌ " + failureMessage(e, rel))
		}
	}

	if report.Aborted() {
		return
	}

	if report.OK() {
		out.Info("🎉 Square360 Pantheon workflows installation complete!")
	} else {
		out.Error(fmt.Sprintf("⚠️  Workflows installed with %d error(s)", len(report.Failures())))
	}
	out.Comment("ℹ️  Workflow files are managed by this package and will be overwritten on updates.")
	out.Comment("ℹ️  Add custom workflows with different names to avoid conflicts.")
}

func failureMessage(e provision.Entry, rel string) string {
	switch {
	case errors.Is(e.Err, provision.ErrMissingPackageDirectory):
		if e.Path == "" {
			return "Package directory not found: " + e.Detail
		}
		return "Package directory not found: " + e.Path
	case errors.Is(e.Err, provision.ErrDirectoryCreate):
		return "Could not create directory: " + e.Path
	case errors.Is(e.Err, provision.ErrSourceFileMissing):
		return "Source file not found: " + e.Detail
	case errors.Is(e.Err, provision.ErrCopyFailure):
		return "Failed to copy: " + e.Name
	case errors.Is(e.Err, provision.ErrWriteFailure):
		return "Failed to create: " + rel
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "Failed: " + rel
}
