package gulps

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/gulps/pkg/errors"
	"github.com/arthur-debert/gulps/pkg/prompt"
	"github.com/arthur-debert/gulps/pkg/style"
	"github.com/arthur-debert/gulps/pkg/testutil"
)

type cancelPrompter struct{}

func (cancelPrompter) Ask(context.Context, []prompt.Question) (prompt.Answers, error) {
	return nil, prompt.ErrCancelled
}

type harness struct {
	t         *testing.T
	installer *testutil.FakeInstaller
	deps      Deps
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	testutil.Isolate(t)
	h := &harness{t: t, installer: &testutil.FakeInstaller{}}
	h.deps = Deps{Installer: h.installer, SkipUserConfig: true}
	return h
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	root := NewRootCmdWithDeps(h.deps)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGenerate_WritesAndInstalls(t *testing.T) {
	h := newHarness(t)
	p := testutil.NewProject(t, "web").WithPackageJSON("my_web-app")

	out, err := h.run("generate", p.Dir, "--lint", "--test", "--non-interactive")
	require.NoError(t, err)

	for _, rel := range []string{"gulpfile.js", "gulp/common/constants.js", "gulp/tasks/lint.js", "gulp/tasks/test.js"} {
		assert.True(t, testutil.FileExists(t, p.Path(rel)), rel)
	}
	testutil.AssertNoFile(t, p.Path("gulp/tasks/serve.js"))
	testutil.AssertFileContains(t, p.Path("gulp/common/constants.js"), "appname: 'my-web-app',")

	calls := h.installer.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, p.Dir, calls[0].Dir)
	assert.Contains(t, calls[0].Packages, "gulp")
	assert.True(t, calls[0].Dev)

	assert.Contains(t, out, "Woot!")
	assert.Contains(t, out, "Run the command gulp lint to lint your files.")
	assert.Contains(t, out, "Run the command gulp test to run the tests.")
}

func TestRoot_DefaultsToGenerate(t *testing.T) {
	h := newHarness(t)
	p := testutil.NewProject(t, "app")

	_, err := h.run(p.Dir, "--serve", "--skip-install")
	require.NoError(t, err)

	assert.True(t, testutil.FileExists(t, p.Path("gulp/tasks/serve.js")))
	assert.Empty(t, h.installer.Calls())
}

func TestGenerate_DryRun(t *testing.T) {
	h := newHarness(t)
	p := testutil.NewProject(t, "app")

	out, err := h.run("--dry-run", "generate", p.Dir, "--browserify")
	require.NoError(t, err)

	testutil.AssertNoFile(t, p.Path("gulpfile.js"))
	assert.Empty(t, h.installer.Calls())
	assert.Contains(t, out, style.MsgDryRun)
	assert.Contains(t, out, "gulp/tasks/browserify.js")
}

func TestGenerate_NothingSelected(t *testing.T) {
	tests := []struct {
		name string
		env  string
		args []string
	}{
		{name: "no defaults", args: []string{"--non-interactive"}},
		{name: "direct false beats default task", env: "lint", args: []string{"--non-interactive", "--lint=false"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			if tt.env != "" {
				t.Setenv("GULPS_GENERATOR_DEFAULT_TASKS", tt.env)
			}
			p := testutil.NewProject(t, "app")

			out, err := h.run(append([]string{"generate", p.Dir}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, style.MsgNothingSelected)
			testutil.AssertNoFile(t, p.Path("gulpfile.js"))
			assert.Empty(t, h.installer.Calls())
		})
	}
}

func TestGenerate_DefaultTasksFromConfig(t *testing.T) {
	h := newHarness(t)
	p := testutil.NewProject(t, "app")
	cfgFile := testutil.CreateFile(t, t.TempDir(), "gulps.toml", `
[generator]
default_tasks = ["changelog"]
default_repository = "https://github.com/me/app"
`)

	_, err := h.run("--config", cfgFile, "generate", p.Dir, "--non-interactive", "--skip-install")
	require.NoError(t, err)

	testutil.AssertFileContains(t, p.Path("gulp/common/constants.js"), "https://github.com/me/app")
	assert.True(t, testutil.FileExists(t, p.Path("gulp/tasks/changelog.js")))
}

func TestGenerate_ExistingFiles(t *testing.T) {
	tests := []struct {
		name  string
		force bool
		want  string
	}{
		{name: "kept", want: "// mine"},
		{name: "overwritten with force", force: true, want: "'use strict';"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			p := testutil.NewProject(t, "app").WithFile("gulpfile.js", "// mine\n")

			args := []string{"generate", p.Dir, "--lint", "--skip-install"}
			if tt.force {
				args = append(args, "--force")
			}
			out, err := h.run(args...)
			require.NoError(t, err)

			testutil.AssertFileContains(t, p.Path("gulpfile.js"), tt.want)
			if !tt.force {
				assert.Contains(t, out, "skip")
			}
		})
	}
}

func TestGenerate_TaskDirAndClientOverrides(t *testing.T) {
	h := newHarness(t)
	p := testutil.NewProject(t, "app")

	_, err := h.run("generate", p.Dir, "--style", "--task-dir", "build/gulp", "--skip-install")
	require.NoError(t, err)
	assert.True(t, testutil.FileExists(t, p.Path("build/gulp/tasks/style.js")))
	testutil.AssertFileContains(t, p.Path("gulpfile.js"), "build/gulp/tasks")

	_, err = h.run("generate", p.Dir, "--style", "--client", "bower")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestGenerate_Cancelled(t *testing.T) {
	h := newHarness(t)
	h.deps.Prompter = cancelPrompter{}
	p := testutil.NewProject(t, "app")

	out, err := h.run("generate", p.Dir)
	require.NoError(t, err)
	assert.Contains(t, out, MsgCancelled)
	testutil.AssertNoFile(t, p.Path("gulpfile.js"))
}

func TestGenerate_InstallFailure(t *testing.T) {
	h := newHarness(t)
	h.installer.Err = errors.New(errors.ErrInstall, "npm install failed")
	p := testutil.NewProject(t, "app")

	_, err := h.run("generate", p.Dir, "--lint")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInstall))
	assert.True(t, testutil.FileExists(t, p.Path("gulp/tasks/lint.js")))
}

func TestPlan_Formats(t *testing.T) {
	decoders := map[string]func([]byte, interface{}) error{
		"json": json.Unmarshal,
		"yaml": yaml.Unmarshal,
		"toml": toml.Unmarshal,
	}

	for format, decode := range decoders {
		t.Run(format, func(t *testing.T) {
			h := newHarness(t)
			p := testutil.NewProject(t, "app")

			out, err := h.run("plan", p.Dir, "--serve", "--changelog", "--bootstrap",
				"--repository", "https://github.com/me/app", "--format", format)
			require.NoError(t, err)

			var view planView
			require.NoError(t, decode([]byte(out), &view))
			assert.Equal(t, []string{"serve", "changelog"}, view.Tasks)
			assert.Equal(t, []string{"bootstrap"}, view.Platforms)
			assert.Equal(t, "https://github.com/me/app", view.Repository)
			assert.Equal(t, []string{
				"gulpfile.js",
				"gulp/common/constants.js",
				"gulp/tasks/serve.js",
				"gulp/tasks/changelog.js",
			}, view.Files)
			assert.Contains(t, view.Dependencies, "browser-sync")
			assert.NotEmpty(t, view.CSS)
			assert.NotEmpty(t, view.Fonts)
			assert.Len(t, view.Messages, 3)

			testutil.AssertNoFile(t, p.Path("gulpfile.js"))
			assert.Empty(t, h.installer.Calls())
		})
	}
}

func TestPlan_Text(t *testing.T) {
	h := newHarness(t)
	p := testutil.NewProject(t, "app")

	out, err := h.run("plan", p.Dir, "--lint")
	require.NoError(t, err)
	assert.Contains(t, out, "Tasks")
	assert.Contains(t, out, "lint")
	assert.Contains(t, out, "gulp/tasks/lint.js")
}

func TestPlan_UnknownFormat(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("plan", t.TempDir(), "--lint", "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "text, json, toml, yaml")
}

func TestTasksCmd(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("tasks")
	require.NoError(t, err)
	for _, want := range []string{"lint", "browserify", "changelog", "sass", "bootstrap", "fontawesome"} {
		assert.Contains(t, out, want)
	}
}

func TestConfigCmd(t *testing.T) {
	t.Run("effective", func(t *testing.T) {
		h := newHarness(t)
		t.Setenv("GULPS_INSTALL_CLIENT", "yarn")
		dir := testutil.NewProject(t, "app").WithFile(".gulps.yaml", "generator:\n  task_dir: tools\n").Dir

		out, err := h.run("config", dir)
		require.NoError(t, err)

		var got map[string]map[string]interface{}
		require.NoError(t, toml.Unmarshal([]byte(out), &got))
		assert.Equal(t, "yarn", got["install"]["client"])
		assert.Equal(t, "tools", got["generator"]["task_dir"])
	})

	t.Run("defaults", func(t *testing.T) {
		h := newHarness(t)
		out, err := h.run("config", "--defaults")
		require.NoError(t, err)
		assert.Contains(t, out, "task_dir")
	})

	t.Run("path", func(t *testing.T) {
		h := newHarness(t)
		out, err := h.run("config", "--path")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "gulps", "config.toml")+"\n", out)
	})
}

func TestVersionCmd(t *testing.T) {
	h := newHarness(t)
	out, err := h.run("version")
	require.NoError(t, err)
	assert.Contains(t, out, "gulps version dev")
	assert.Contains(t, out, "commit:")
}

func TestCompletionCmd(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			h := newHarness(t)
			out, err := h.run("completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "gulps")
		})
	}

	h := newHarness(t)
	_, err := h.run("completion", "tcsh")
	assert.Error(t, err)
}

func TestManCmd(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()

	_, err := h.run("man", dir)
	require.NoError(t, err)
	assert.True(t, testutil.FileExists(t, filepath.Join(dir, "gulps.1")))
	assert.True(t, testutil.FileExists(t, filepath.Join(dir, "gulps-generate.1")))
}

func TestHelpTopics(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{topic: "platforms", want: "stylesheet"},
		{topic: "configuration", want: "GULPS_"},
		{topic: "--dry-run", want: "disk"},
		{topic: "tasks", want: "browserify"},
	}

	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			h := newHarness(t)
			out, err := h.run("help", tt.topic)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestTaskCatalogue(t *testing.T) {
	md := taskCatalogue()
	assert.Contains(t, md, "## lint\n")
	assert.Contains(t, md, "* File: `gulp/tasks/style.js`")
	assert.Contains(t, md, "* Run `gulp browsersync` to launch a browsersync server.")
	assert.Contains(t, md, "## bootstrap\n")
	assert.Contains(t, md, "* Fonts: `./bower_components/ionic/release/fonts/*.*`")
}

func TestPlanFormats(t *testing.T) {
	assert.Equal(t, []string{"text", "json", "toml", "yaml"}, planFormats())
}
