package workflow

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
	"time"
)

//go:embed defaults/CHANGELOG-WORKFLOWS.md
var defaultChangelog string

//go:embed defaults/README.md
var defaultReadme string

const (
	// DefaultPackage is the Composer package that ships the templates.
	DefaultPackage = "square360/pantheon-github-workflows"

	TemplatesDir  = "workflow-configuration/templates"
	TargetDir     = ".github/workflows"
	ChangelogName = "CHANGELOG-WORKFLOWS.md"
	ReadmeName    = "README.md"

	// DateLayout is the date format written into the changelog.
	DateLayout = "2006-01-02"
)

// Managed lists the workflow files overwritten on every run, in copy order.
var Managed = []string{
	"deploy-to-dev.yml",
	"deploy-multidev.yml",
}

var (
	changelogTmpl = template.Must(template.New(ChangelogName).Parse(defaultChangelog))
	readmeTmpl    = template.Must(template.New(ReadmeName).Parse(defaultReadme))
)

type templateData struct {
	Package string
	Date    string
}

// Changelog renders the initial CHANGELOG-WORKFLOWS.md for a package
// installed at now.
func Changelog(pkg string, now time.Time) (string, error) {
	return render(changelogTmpl, templateData{Package: pkgOrDefault(pkg), Date: now.Format(DateLayout)})
}

// Readme renders the initial .github/workflows/README.md.
func Readme(pkg string) (string, error) {
	return render(readmeTmpl, templateData{Package: pkgOrDefault(pkg)})
}

// IsManaged reports whether name is one of the package-owned workflows.
func IsManaged(name string) bool {
	for _, m := range Managed {
		if m == name {
			return true
		}
	}
	return false
}

func render(t *template.Template, data templateData) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", t.Name(), err)
	}
	return sb.String(), nil
}

func pkgOrDefault(pkg string) string {
	if pkg == "" {
		return DefaultPackage
	}
	return pkg
}
