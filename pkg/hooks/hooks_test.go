package hooks

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/square360/pantheon-workflows/pkg/provision"
)

type recordingIO struct {
	lines []string
}

func (r *recordingIO) Info(msg string)    { r.lines = append(r.lines, "info: "+msg) }
func (r *recordingIO) Error(msg string)   { r.lines = append(r.lines, "error: "+msg) }
func (r *recordingIO) Comment(msg string) { r.lines = append(r.lines, "comment: "+msg) }

func (r *recordingIO) has(prefix, substr string) bool {
	for _, l := range r.lines {
		if strings.HasPrefix(l, prefix) && strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

type testEvent struct {
	io        *recordingIO
	vendorDir string
}

func (e testEvent) IO() IO            { return e.io }
func (e testEvent) VendorDir() string { return e.vendorDir }

func newPlugin(t *testing.T, fs afero.Fs) *Plugin {
	t.Helper()
	now := func() time.Time { return time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC) }
	return &Plugin{Options: []provision.Option{provision.WithFs(fs), provision.WithClock(now)}}
}

func seed(t *testing.T, fs afero.Fs) {
	t.Helper()
	dir := filepath.FromSlash("/app/vendor/square360/pantheon-github-workflows/workflow-configuration/templates")
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"deploy-to-dev.yml", "deploy-multidev.yml"} {
		if err := afero.WriteFile(fs, filepath.Join(dir, name), []byte("on: push\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestPostInstallRendersReport(t *testing.T) {
	fs := afero.NewMemMapFs()
	seed(t, fs)
	out := &recordingIO{}

	report := newPlugin(t, fs).OnPostInstall(testEvent{io: out, vendorDir: "/app/vendor"})

	if !report.OK() {
		t.Fatalf("Expected success, got failures %v", report.Failures())
	}
	for _, want := range []struct{ prefix, substr string }{
		{"info", "Installing Square360 Pantheon GitHub Workflows"},
		{"info", "Created directory: .github/workflows/"},
		{"info", "Installed: .github/workflows/deploy-to-dev.yml"},
		{"info", "Installed: .github/workflows/deploy-multidev.yml"},
		{"info", "Created: CHANGELOG-WORKFLOWS.md"},
		{"info", "Created: .github/workflows/README.md"},
		{"info", "installation complete"},
		{"comment", "will be overwritten on updates"},
	} {
		if !out.has(want.prefix, want.substr) {
			t.Errorf("Expected %s line containing %q, got:\n%s", want.prefix, want.substr, strings.Join(out.lines, "\n"))
		}
	}
}

func TestPostUpdateMatchesPostInstall(t *testing.T) {
	installFs := afero.NewMemMapFs()
	updateFs := afero.NewMemMapFs()
	seed(t, installFs)
	seed(t, updateFs)

	installOut := &recordingIO{}
	updateOut := &recordingIO{}
	newPlugin(t, installFs).OnPostInstall(testEvent{io: installOut, vendorDir: "/app/vendor"})
	newPlugin(t, updateFs).OnPostUpdate(testEvent{io: updateOut, vendorDir: "/app/vendor"})

	if diff := cmp.Diff(installOut.lines, updateOut.lines); diff != "" {
		t.Errorf("post-update output differs from post-install (-install +update):\n%s", diff)
	}
}

func TestSecondRunReportsUpdatedAndPreserved(t *testing.T) {
	fs := afero.NewMemMapFs()
	seed(t, fs)
	p := newPlugin(t, fs)
	p.OnPostInstall(testEvent{io: &recordingIO{}, vendorDir: "/app/vendor"})

	out := &recordingIO{}
	p.OnPostUpdate(testEvent{io: out, vendorDir: "/app/vendor"})

	if !out.has("info", "Updated: .github/workflows/deploy-to-dev.yml") {
		t.Errorf("Expected Updated line, got:\n%s", strings.Join(out.lines, "\n"))
	}
	if !out.has("comment", "Preserved existing: CHANGELOG-WORKFLOWS.md") {
		t.Errorf("Expected Preserved line, got:\n%s", strings.Join(out.lines, "\n"))
	}
	if out.has("info", "Created directory") {
		t.Error("Directory should not be reported as created on the second run")
	}
}

func TestMissingPackageAborts(t *testing.T) {
	fs := afero.NewMemMapFs()
	out := &recordingIO{}

	report := newPlugin(t, fs).OnPostInstall(testEvent{io: out, vendorDir: "/app/vendor"})

	if !report.Aborted() {
		t.Fatalf("Expected aborted report, got %+v", report.Entries)
	}
	if !out.has("error", "Package directory not found") {
		t.Errorf("Expected error line, got:\n%s", strings.Join(out.lines, "\n"))
	}
	if out.has("info", "installation complete") {
		t.Error("Completion banner should not be printed after an abort")
	}
}

func TestEmptyVendorDir(t *testing.T) {
	out := &recordingIO{}

	report := newPlugin(t, afero.NewMemMapFs()).OnPostInstall(testEvent{io: out})

	if len(report.Entries) != 1 || !errors.Is(report.Entries[0].Err, provision.ErrMissingPackageDirectory) {
		t.Fatalf("Expected single MissingPackageDirectory failure, got %+v", report.Entries)
	}
	if !out.has("error", "vendor directory is not set") {
		t.Errorf("Expected vendor dir error, got:\n%s", strings.Join(out.lines, "\n"))
	}
}

func TestRenderPartialFailure(t *testing.T) {
	pctx := provision.Context{
		PackageRoot: "/app/vendor/pkg",
		ProjectRoot: "/app",
		TargetDir:   "/app/.github/workflows",
	}
	report := &provision.Report{Entries: []provision.Entry{
		{Name: "deploy-to-dev.yml", Path: "/app/.github/workflows/deploy-to-dev.yml", Outcome: provision.Failed,
			Detail: "/app/vendor/pkg/workflow-configuration/templates/deploy-to-dev.yml", Err: provision.ErrSourceFileMissing},
		{Name: "deploy-multidev.yml", Path: "/app/.github/workflows/deploy-multidev.yml", Outcome: provision.Updated},
	}}
	out := &recordingIO{}

	Render(out, pctx, report)

	if !out.has("error", "Source file not found: /app/vendor/pkg/workflow-configuration/templates/deploy-to-dev.yml") {
		t.Errorf("Expected source path in error, got:\n%s", strings.Join(out.lines, "\n"))
	}
	if !out.has("error", "1 error(s)") {
		t.Errorf("Expected error summary, got:\n%s", strings.Join(out.lines, "\n"))
	}
}
