package config

import (
	"strings"

	"github.com/arthur-debert/gulps/pkg/errors"
	gotoml "github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent returns the defaults file with every value commented
// out, ready to be saved as a project or user config.
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultsContent())
}

// Marshal renders cfg as TOML.
func Marshal(cfg *Config) ([]byte, error) {
	out, err := gotoml.Marshal(tomlView(cfg))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return out, nil
}

// tomlView renders durations as strings so the output can be loaded back.
func tomlView(cfg *Config) map[string]interface{} {
	return map[string]interface{}{
		"generator": map[string]interface{}{
			"task_dir":           cfg.Generator.TaskDir,
			"default_repository": cfg.Generator.DefaultRepository,
			"default_tasks":      append([]string{}, cfg.Generator.DefaultTasks...),
		},
		"install": map[string]interface{}{
			"client":  cfg.Install.Client,
			"dev":     cfg.Install.Dev,
			"skip":    cfg.Install.Skip,
			"timeout": cfg.Install.Timeout.String(),
		},
		"output": map[string]interface{}{
			"color": cfg.Output.Color,
		},
	}
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
