package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/square360/pantheon-workflows/pkg/workflow"
)

// Config is what the hooks need from the host project.
type Config struct {
	ProjectDir   string
	ComposerFile string
	// Found is false when there is no composer.json and defaults were used.
	Found bool

	Name      string
	VendorDir string
	Package   string
	LogLevel  string
}

const (
	defaultComposerFile = "composer.json"
	defaultVendorDir    = "vendor"
	envPrefix           = "PANTHEON_WORKFLOWS"
)

// composerFile can be pointed elsewhere by tests
var composerFile = ""

// ComposerFile returns the manifest name, honouring Composer's COMPOSER
// environment variable.
func ComposerFile() string {
	if composerFile != "" {
		return composerFile
	}
	if name := os.Getenv("COMPOSER"); name != "" {
		return name
	}
	return defaultComposerFile
}

// LoadFs reads the project's composer.json from fsys. A missing manifest is
// not an error; defaults apply.
func LoadFs(fsys afero.Fs, projectDir string) (*Config, error) {
	if projectDir == "" {
		projectDir = "."
	}
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project dir: %w", err)
	}

	v := newViper(fsys, filepath.Join(abs, ComposerFile()))

	cfg := Config{ProjectDir: abs, ComposerFile: v.ConfigFileUsed(), Found: true}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", cfg.ComposerFile, err)
		}
		cfg.Found = false
	}

	cfg.Name = v.GetString("name")
	cfg.Package = v.GetString("package")
	cfg.LogLevel = v.GetString("log_level")
	cfg.VendorDir = v.GetString("config.vendor-dir")
	if !filepath.IsAbs(cfg.VendorDir) {
		cfg.VendorDir = filepath.Join(abs, cfg.VendorDir)
	}
	return &cfg, nil
}

func newViper(fsys afero.Fs, file string) *viper.Viper {
	v := viper.New()
	v.SetFs(fsys)
	v.SetConfigFile(file)
	v.SetConfigType("json")

	// Defaults
	v.SetDefault("config.vendor-dir", defaultVendorDir)
	v.SetDefault("package", workflow.DefaultPackage)
	v.SetDefault("log_level", "warn")

	// Composer's own override wins over composer.json
	_ = v.BindEnv("config.vendor-dir", "COMPOSER_VENDOR_DIR")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	_ = v.BindEnv("package")
	_ = v.BindEnv("log_level")
	return v
}

// All returns the resolved settings for display.
func (c *Config) All() map[string]string {
	return map[string]string{
		"project_dir":   c.ProjectDir,
		"composer_file": c.ComposerFile,
		"name":          c.Name,
		"vendor_dir":    c.VendorDir,
		"package":       c.Package,
		"log_level":     c.LogLevel,
	}
}

// Get returns a single resolved setting.
func (c *Config) Get(key string) (string, error) {
	val, ok := c.All()[key]
	if !ok {
		return "", fmt.Errorf("unknown config key: %s (valid: project_dir, composer_file, name, vendor_dir, package, log_level)", key)
	}
	return val, nil
}

// ResetForTest points Load at a different manifest name (only use in tests)
func ResetForTest(name string) {
	composerFile = name
}
