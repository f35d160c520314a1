package gulps

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/gulps/pkg/errors"
	"github.com/arthur-debert/gulps/pkg/generator"
	"github.com/arthur-debert/gulps/pkg/planner"
)

const formatText = "text"

// planView is the serialized form of a resolved selection and its plan.
type planView struct {
	Tasks        []string `json:"tasks" yaml:"tasks" toml:"tasks"`
	Platforms    []string `json:"platforms" yaml:"platforms" toml:"platforms"`
	Repository   string   `json:"repository,omitempty" yaml:"repository,omitempty" toml:"repository,omitempty"`
	Files        []string `json:"files" yaml:"files" toml:"files"`
	Dependencies []string `json:"dependencies" yaml:"dependencies" toml:"dependencies"`
	CSS          []string `json:"css" yaml:"css" toml:"css"`
	Fonts        []string `json:"fonts" yaml:"fonts" toml:"fonts"`
	Messages     []string `json:"messages" yaml:"messages" toml:"messages"`
}

func newPlanView(flags planner.ResolvedFlags, plan planner.ArtifactPlan, taskDir string) planView {
	v := planView{
		Tasks:        make([]string, 0),
		Platforms:    make([]string, 0),
		Repository:   flags.Repository(),
		Files:        make([]string, 0),
		Dependencies: append([]string{}, plan.Dependencies...),
		CSS:          append([]string{}, plan.CSSRefs...),
		Fonts:        append([]string{}, plan.FontGlobs...),
		Messages:     append([]string{}, planner.DescribePostInstallMessages(flags)...),
	}
	for _, f := range flags.Tasks() {
		v.Tasks = append(v.Tasks, f.String())
	}
	for _, p := range flags.Platforms() {
		v.Platforms = append(v.Platforms, p.String())
	}
	for _, tmpl := range plan.Files() {
		v.Files = append(v.Files, generator.Destination(tmpl, taskDir))
	}
	return v
}

type planEncoder func(planView) ([]byte, error)

var planEncoders = map[string]planEncoder{
	"json": func(v planView) ([]byte, error) {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	},
	"yaml": func(v planView) ([]byte, error) {
		return yaml.Marshal(v)
	},
	"toml": func(v planView) ([]byte, error) {
		return toml.Marshal(v)
	},
}

// planFormats lists every --format value, text first.
func planFormats() []string {
	names := make([]string, 0, len(planEncoders)+1)
	for name := range planEncoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{formatText}, names...)
}

// writeCompletion writes the completion script for shell.
func writeCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown shell: %s", shell)
	}
}
