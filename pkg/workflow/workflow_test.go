package workflow

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestChangelogContainsDate(t *testing.T) {
	now := time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)

	content, err := Changelog("", now)
	if err != nil {
		t.Fatalf("Changelog() error: %v", err)
	}

	if !strings.Contains(content, "## [2026-10-18] - Package Installation") {
		t.Errorf("Expected changelog to contain install date, got:\n%s", content)
	}
	if !strings.Contains(content, DefaultPackage) {
		t.Errorf("Expected changelog to mention %s", DefaultPackage)
	}
}

func TestChangelogIsDeterministic(t *testing.T) {
	now := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)

	a, err := Changelog("acme/workflows", now)
	if err != nil {
		t.Fatalf("Changelog() error: %v", err)
	}
	b, _ := Changelog("acme/workflows", now)
	if a != b {
		t.Error("Changelog() should be deterministic for the same inputs")
	}
	if !strings.Contains(a, "`acme/workflows`") {
		t.Errorf("Expected custom package name in changelog, got:\n%s", a)
	}
}

func TestReadme(t *testing.T) {
	content, err := Readme("")
	if err != nil {
		t.Fatalf("Readme() error: %v", err)
	}

	for _, want := range []string{
		"# GitHub Actions Workflows",
		"composer update " + DefaultPackage,
		"PANTHEON_SITE",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("Expected README to contain %q", want)
		}
	}
	for _, name := range Managed {
		if !strings.Contains(content, name) {
			t.Errorf("Expected README to list managed workflow %s", name)
		}
	}
}

func TestIsManaged(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"deploy-to-dev.yml", true},
		{"deploy-multidev.yml", true},
		{"custom-deployment.yml", false},
		{"README.md", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsManaged(tt.name); got != tt.want {
				t.Errorf("IsManaged(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestShippedTemplatesParse(t *testing.T) {
	dir := filepath.Join("..", "..", filepath.FromSlash(TemplatesDir))

	for _, name := range Managed {
		t.Run(name, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				t.Fatalf("template %s not shipped: %v", name, err)
			}

			var wf struct {
				Name string         `yaml:"name"`
				On   yaml.Node      `yaml:"on"`
				Jobs map[string]any `yaml:"jobs"`
			}
			if err := yaml.Unmarshal(data, &wf); err != nil {
				t.Fatalf("template %s is not valid YAML: %v", name, err)
			}
			if wf.Name == "" || len(wf.Jobs) == 0 {
				t.Errorf("template %s should define a name and jobs", name)
			}
		})
	}
}
