package config

import (
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/arthur-debert/gulps/pkg/errors"
	"github.com/arthur-debert/gulps/pkg/features"
)

// Config is the decoded configuration.
type Config struct {
	Generator Generator `koanf:"generator" toml:"generator" yaml:"generator" json:"generator"`
	Install   Install   `koanf:"install" toml:"install" yaml:"install" json:"install"`
	Output    Output    `koanf:"output" toml:"output" yaml:"output" json:"output"`
}

// Generator configures what gets written.
type Generator struct {
	TaskDir           string   `koanf:"task_dir" toml:"task_dir" yaml:"task_dir" json:"task_dir"`
	DefaultRepository string   `koanf:"default_repository" toml:"default_repository" yaml:"default_repository" json:"default_repository"`
	DefaultTasks      []string `koanf:"default_tasks" toml:"default_tasks" yaml:"default_tasks" json:"default_tasks"`
}

// Install configures the package manager call.
type Install struct {
	Client  string        `koanf:"client" toml:"client" yaml:"client" json:"client"`
	Dev     bool          `koanf:"dev" toml:"dev" yaml:"dev" json:"dev"`
	Skip    bool          `koanf:"skip" toml:"skip" yaml:"skip" json:"skip"`
	Timeout time.Duration `koanf:"timeout" toml:"timeout" yaml:"timeout" json:"timeout"`
}

// Output configures terminal output.
type Output struct {
	Color string `koanf:"color" toml:"color" yaml:"color" json:"color"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	knownClients = []string{"npm", "yarn", "pnpm"}
	knownColors  = []string{ColorAuto, ColorAlways, ColorNever}
)

// Validate checks the decoded values.
func (c *Config) Validate() error {
	if !slices.Contains(knownClients, c.Install.Client) {
		return invalid("install.client", c.Install.Client, "must be one of %s", strings.Join(knownClients, ", "))
	}
	if c.Install.Timeout <= 0 {
		return invalid("install.timeout", c.Install.Timeout, "must be positive")
	}
	if !slices.Contains(knownColors, c.Output.Color) {
		return invalid("output.color", c.Output.Color, "must be one of %s", strings.Join(knownColors, ", "))
	}

	dir := c.Generator.TaskDir
	if dir == "" || filepath.IsAbs(dir) || strings.HasPrefix(filepath.Clean(dir), "..") {
		return invalid("generator.task_dir", dir, "must be a relative path inside the project")
	}

	for _, name := range c.Generator.DefaultTasks {
		if _, err := features.ParseFeature(name); err != nil {
			return invalid("generator.default_tasks", name, "unknown task")
		}
	}
	return nil
}

func invalid(key string, value interface{}, format string, args ...interface{}) error {
	return errors.Newf(errors.ErrConfigValid, key+" "+format, args...).
		WithDetail("key", key).
		WithDetail("value", value)
}
