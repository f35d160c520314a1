package style

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/gulps/pkg/config"
	"github.com/arthur-debert/gulps/pkg/errors"
	"github.com/arthur-debert/gulps/pkg/features"
	"github.com/arthur-debert/gulps/pkg/generator"
	"github.com/arthur-debert/gulps/pkg/planner"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestMarkupParser(t *testing.T) {
	p := NewMarkupParser()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "no tags here", want: "no tags here"},
		{name: "single", input: "Run [command]gulp lint[/command] now", want: "Run gulp lint now"},
		{name: "nested", input: "[bold][command]gulp[/command][/bold]", want: "gulp"},
		{name: "unknown tag kept", input: "[nope]x[/nope]", want: "[nope]x[/nope]"},
		{name: "mismatched kept", input: "[bold]x[/command]", want: "[bold]x[/command]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Strip(tt.input))
			assert.NotContains(t, p.Render(tt.input), "[command]")
		})
	}
}

func TestMarkupParser_AddStyle(t *testing.T) {
	p := NewMarkupParser()
	p.AddStyle("x.y", lipgloss.NewStyle())
	assert.Equal(t, "hi", p.Strip("[x.y]hi[/x.y]"))
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, ColorEnabled(config.ColorAlways, &buf))
	assert.False(t, ColorEnabled(config.ColorNever, &buf))

	t.Setenv("CLICOLOR_FORCE", "")
	assert.False(t, ColorEnabled(config.ColorAuto, &buf), "a buffer is not a terminal")
}

func TestStatusLabel(t *testing.T) {
	for _, s := range []Status{StatusWritten, StatusSkipped, StatusPlanned} {
		assert.Len(t, StatusLabel(s), 7, s)
		assert.NotNil(t, StatusStyle(s))
	}
}

func sampleResult(dir string) *generator.Result {
	flags := planner.NewResolvedFlags([]features.FeatureFlag{features.Lint}, nil, "")
	return &generator.Result{
		Dir:       dir,
		AppName:   "my-app",
		Flags:     flags,
		Plan:      planner.PlanArtifacts(flags),
		Written:   []string{filepath.Join(dir, "gulpfile.js")},
		Skipped:   []string{filepath.Join(dir, "gulp", "tasks", "lint.js")},
		Installed: []string{"gulp", "gulp-eslint"},
		Notes:     planner.PostInstallNotes(flags),
		Messages:  planner.DescribePostInstallMessages(flags),
	}
}

func TestPlainRenderer_RenderResult(t *testing.T) {
	dir := t.TempDir()
	out := NewPlainRenderer().RenderResult(sampleResult(dir))

	assert.Contains(t, out, "create  gulpfile.js")
	assert.Contains(t, out, "skip    gulp/tasks/lint.js")
	assert.Contains(t, out, "npm installed 2 packages")
	assert.Contains(t, out, "Woot! "+MsgSuccess)
	assert.Contains(t, out, "Run the command gulp lint to lint your files.")
	assert.NotContains(t, out, dir)
}

func TestRenderResult_DryRun(t *testing.T) {
	res := sampleResult(t.TempDir())
	res.DryRun = true
	res.Installed = nil

	for name, r := range map[string]Renderer{"plain": NewPlainRenderer(), "terminal": NewTerminalRenderer()} {
		t.Run(name, func(t *testing.T) {
			out := r.RenderResult(res)
			assert.Contains(t, out, MsgDryRun)
			assert.Contains(t, out, "plan")
			assert.NotContains(t, out, "Woot!")
		})
	}
}

func TestRenderResult_NothingSelected(t *testing.T) {
	res := &generator.Result{NothingSelected: true}
	assert.Equal(t, MsgNothingSelected, NewPlainRenderer().RenderResult(res))
	assert.Contains(t, NewTerminalRenderer().RenderResult(res), MsgNothingSelected)
}

func TestTerminalRenderer_RenderResult(t *testing.T) {
	out := NewTerminalRenderer().RenderResult(sampleResult(t.TempDir()))
	assert.Contains(t, out, "gulpfile.js")
	assert.Contains(t, out, "Woot!")
	assert.Contains(t, out, "use --force to overwrite")
	assert.Contains(t, out, "gulp lint")
	assert.NotContains(t, out, "[command]")
}

func TestRenderPlan(t *testing.T) {
	flags := planner.NewResolvedFlags(
		[]features.FeatureFlag{features.Serve, features.Changelog},
		[]features.PlatformFlag{features.Bootstrap},
		"https://github.com/me/app",
	)
	plan := planner.PlanArtifacts(flags)

	plain := NewPlainRenderer().RenderPlan(flags, plan)
	lines := strings.Split(plain, "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "Tasks         serve, changelog", lines[0])
	assert.Equal(t, "Platforms     bootstrap", lines[1])
	assert.Equal(t, "Repository    https://github.com/me/app", lines[2])
	assert.Contains(t, lines[3], "gulpfile.js")

	boxed := NewTerminalRenderer().RenderPlan(flags, plan)
	assert.Contains(t, boxed, "Plan")
	assert.Contains(t, boxed, "╭")
	assert.Contains(t, boxed, "changelog")
	assert.Contains(t, boxed, "https://github.com/me/app")
}

func TestRenderPlan_Placeholders(t *testing.T) {
	flags := planner.NewResolvedFlags([]features.FeatureFlag{features.Lint}, nil, "")
	out := NewPlainRenderer().RenderPlan(flags, planner.PlanArtifacts(flags))
	assert.Contains(t, out, "Platforms     none")
	assert.Contains(t, out, "Stylesheets   none")
	assert.Contains(t, out, "Fonts         none")
	assert.NotContains(t, out, "Repository")
}

func TestRenderError(t *testing.T) {
	err := errors.New(errors.ErrInstall, "npm install failed")

	assert.Equal(t, "Error: [INSTALL] npm install failed", NewPlainRenderer().RenderError(err))
	assert.Contains(t, NewTerminalRenderer().RenderError(err), "npm install failed")
	assert.Empty(t, NewPlainRenderer().RenderError(nil))
	assert.Empty(t, NewTerminalRenderer().RenderError(nil))
}

func TestNewRenderer(t *testing.T) {
	assert.IsType(t, &TerminalRenderer{}, NewRenderer(true))
	assert.IsType(t, &PlainRenderer{}, NewRenderer(false))
}
