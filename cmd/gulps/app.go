package gulps

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/gulps/pkg/config"
	"github.com/arthur-debert/gulps/pkg/features"
	"github.com/arthur-debert/gulps/pkg/filesystem"
	"github.com/arthur-debert/gulps/pkg/generator"
	"github.com/arthur-debert/gulps/pkg/installer"
	"github.com/arthur-debert/gulps/pkg/logging"
	"github.com/arthur-debert/gulps/pkg/planner"
	"github.com/arthur-debert/gulps/pkg/prompt"
	"github.com/arthur-debert/gulps/pkg/style"
	"github.com/arthur-debert/gulps/pkg/types"
	"github.com/arthur-debert/gulps/pkg/utils"
)

// Deps are the collaborators commands are wired with. Zero fields select
// the real implementations.
type Deps struct {
	Prompter  prompt.Prompter
	Installer generator.Installer
	FS        types.FS
	// SkipUserConfig ignores the user config file.
	SkipUserConfig bool
}

// globalOptions are the persistent flags.
type globalOptions struct {
	verbosity  int
	dryRun     bool
	force      bool
	configFile string
}

// selectionOptions are the flags shared by every command that resolves a
// task selection.
type selectionOptions struct {
	repository     string
	nonInteractive bool
	accessible     bool
	client         string
	taskDir        string
}

type app struct {
	deps   Deps
	global *globalOptions
}

func addSelectionFlags(cmd *cobra.Command, opts *selectionOptions) {
	for _, f := range features.AllFeatures() {
		cmd.Flags().Bool(f.String(), false, fmt.Sprintf(MsgFlagFeature, f, features.DescriptionFor(f)))
	}
	for _, p := range features.AllPlatforms() {
		cmd.Flags().Bool(p.String(), false, fmt.Sprintf(MsgFlagPlatform, p))
	}
	cmd.Flags().StringVar(&opts.repository, "repository", "", MsgFlagRepository)
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, MsgFlagNonInteractive)
	cmd.Flags().BoolVar(&opts.accessible, "accessible", false, MsgFlagAccessible)
	cmd.Flags().StringVar(&opts.client, "client", "", MsgFlagClient)
	cmd.Flags().StringVar(&opts.taskDir, "task-dir", "", MsgFlagTaskDir)

	_ = cmd.RegisterFlagCompletionFunc("client", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, c := range installer.Clients() {
			names = append(names, string(c))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// directFlags collects the task and platform flags that were set on the
// command line. Unset flags stay absent.
func directFlags(cmd *cobra.Command) planner.DirectFlags {
	direct := planner.DirectFlags{
		Features:  make(map[features.FeatureFlag]bool),
		Platforms: make(map[features.PlatformFlag]bool),
	}
	for _, f := range features.AllFeatures() {
		if cmd.Flags().Changed(f.String()) {
			v, _ := cmd.Flags().GetBool(f.String())
			direct.Features[f] = v
		}
	}
	for _, p := range features.AllPlatforms() {
		if cmd.Flags().Changed(p.String()) {
			v, _ := cmd.Flags().GetBool(p.String())
			direct.Platforms[p] = v
		}
	}
	return direct
}

// overrides maps explicitly set flags to config keys.
func (o *selectionOptions) overrides(cmd *cobra.Command) map[string]interface{} {
	out := make(map[string]interface{})
	if cmd.Flags().Changed("client") {
		out["install.client"] = o.client
	}
	if cmd.Flags().Changed("task-dir") {
		out["generator.task_dir"] = o.taskDir
	}
	return out
}

func targetDir(args []string) string {
	if len(args) > 0 {
		return utils.ExpandPath(args[0])
	}
	return "."
}

// loadConfig loads the layered config for dir and applies the color setting
// to the command output.
func (a *app) loadConfig(cmd *cobra.Command, dir string, overrides map[string]interface{}) (*config.Config, style.Renderer, bool, error) {
	projectDir, err := filepath.Abs(dir)
	if err != nil {
		projectDir = dir
	}
	cfg, err := config.Load(config.LoadOptions{
		ProjectDir:     projectDir,
		ConfigFile:     a.global.configFile,
		Overrides:      overrides,
		SkipUserConfig: a.deps.SkipUserConfig,
	})
	if err != nil {
		return nil, nil, false, err
	}
	color := style.Configure(cfg.Output.Color, cmd.OutOrStdout())
	return cfg, style.NewRenderer(color), color, nil
}

// prompter returns the injected prompter, a static one when prompts are
// suppressed, or the interactive huh prompter.
func (a *app) prompter(cfg *config.Config, opts *selectionOptions) prompt.Prompter {
	logger := logging.GetLogger("cli")
	if a.deps.Prompter != nil {
		return a.deps.Prompter
	}
	if opts.nonInteractive || prompt.IsHeadless() {
		logger.Debug().Bool("flag", opts.nonInteractive).Msg("Prompts disabled")
		repository := opts.repository
		if repository == "" {
			repository = cfg.Generator.DefaultRepository
		}
		return prompt.NewStaticPrompter(prompt.Answers{
			generator.QuestionTasks:      append([]string{}, cfg.Generator.DefaultTasks...),
			generator.QuestionRepository: repository,
		})
	}
	return prompt.NewHuhPrompter(opts.accessible)
}

func (a *app) installer(cmd *cobra.Command, cfg *config.Config) (generator.Installer, error) {
	if a.deps.Installer != nil {
		return a.deps.Installer, nil
	}
	client, err := installer.ParseClient(cfg.Install.Client)
	if err != nil {
		return nil, err
	}
	return installer.New(client, installer.ExecRunner{Timeout: cfg.Install.Timeout}).
		WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()), nil
}

func (a *app) generator(cmd *cobra.Command, cfg *config.Config, opts *selectionOptions) (*generator.Generator, error) {
	inst, err := a.installer(cmd, cfg)
	if err != nil {
		return nil, err
	}
	fsys := a.deps.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return generator.New(cfg, a.prompter(cfg, opts), inst).WithFS(fsys), nil
}

func (a *app) generatorOptions(cmd *cobra.Command, args []string, opts *selectionOptions, skipInstall bool) generator.Options {
	return generator.Options{
		Dir:         targetDir(args),
		Direct:      directFlags(cmd),
		Repository:  opts.repository,
		DryRun:      a.global.dryRun,
		Force:       a.global.force,
		SkipInstall: skipInstall,
	}
}
