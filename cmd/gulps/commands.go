package gulps

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/gulps/internal/version"
	"github.com/arthur-debert/gulps/pkg/cobrax/topics"
	"github.com/arthur-debert/gulps/pkg/config"
	"github.com/arthur-debert/gulps/pkg/errors"
	"github.com/arthur-debert/gulps/pkg/logging"
)

// NewRootCmd creates the root command wired with the real collaborators.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(Deps{})
}

// NewRootCmdWithDeps creates the root command wired with deps.
func NewRootCmdWithDeps(deps Deps) *cobra.Command {
	initTemplateFormatting()

	global := &globalOptions{}
	a := &app{deps: deps, global: global}
	rootOpts := &generateOptions{}

	rootCmd := &cobra.Command{
		Use:     "gulps [dir]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgGenerateExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(global.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, args, rootOpts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&global.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&global.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVar(&global.force, "force", false, MsgFlagForce)
	rootCmd.PersistentFlags().StringVar(&global.configFile, "config", "", MsgFlagConfig)
	addGenerateFlags(rootCmd, rootOpts)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newGenerateCmd())
	rootCmd.AddCommand(a.newPlanCmd())
	rootCmd.AddCommand(a.newTasksCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	tm, err := topics.InitializeWithOptions(rootCmd, helpTopics(), topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   topics.NewGlamourRendererFor(stdoutIsTerminal(), 0),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	} else {
		tm.Add(&topics.Topic{Name: "tasks", FilePath: "tasks" + topics.Markdown, Content: taskCatalogue()})
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

type generateOptions struct {
	selectionOptions
	skipInstall bool
}

func addGenerateFlags(cmd *cobra.Command, opts *generateOptions) {
	addSelectionFlags(cmd, &opts.selectionOptions)
	cmd.Flags().BoolVar(&opts.skipInstall, "skip-install", false, MsgFlagSkipInstall)
}

func (a *app) newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:     "generate [dir]",
		Short:   MsgGenerateShort,
		Long:    MsgGenerateLong,
		Example: MsgGenerateExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, args, opts)
		},
	}
	addGenerateFlags(cmd, opts)
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, args []string, opts *generateOptions) error {
	cfg, renderer, _, err := a.loadConfig(cmd, targetDir(args), opts.overrides(cmd))
	if err != nil {
		return err
	}
	gen, err := a.generator(cmd, cfg, &opts.selectionOptions)
	if err != nil {
		return err
	}

	res, err := gen.Run(cmd.Context(), a.generatorOptions(cmd, args, &opts.selectionOptions, opts.skipInstall))
	if errors.IsErrorCode(err, errors.ErrCancelled) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), MsgCancelled)
		return nil
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderResult(res))
	return nil
}

func (a *app) newPlanCmd() *cobra.Command {
	opts := &selectionOptions{}
	var format string
	cmd := &cobra.Command{
		Use:     "plan [dir]",
		Short:   MsgPlanShort,
		Long:    MsgPlanLong,
		Example: MsgPlanExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, ok := planEncoders[format]
			if !ok && format != formatText {
				return errors.Newf(errors.ErrInvalidInput, MsgUnknownFormat, format, strings.Join(planFormats(), ", "))
			}

			cfg, renderer, _, err := a.loadConfig(cmd, targetDir(args), opts.overrides(cmd))
			if err != nil {
				return err
			}
			gen, err := a.generator(cmd, cfg, opts)
			if err != nil {
				return err
			}

			flags, plan, err := gen.Plan(cmd.Context(), a.generatorOptions(cmd, args, opts, true))
			if errors.IsErrorCode(err, errors.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), MsgCancelled)
				return nil
			}
			if err != nil {
				return err
			}

			if format == formatText {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPlan(flags, plan))
				return nil
			}
			out, err := enc(newPlanView(flags, plan, cfg.Generator.TaskDir))
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, MsgErrEncodePlan)
			}
			_, _ = cmd.OutOrStdout().Write(out)
			return nil
		},
	}
	addSelectionFlags(cmd, opts)
	cmd.Flags().StringVarP(&format, "format", "f", formatText, MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return planFormats(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func (a *app) newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "tasks",
		Short:   MsgTasksShort,
		Long:    MsgTasksLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, color, err := a.loadConfig(cmd, ".", nil)
			if err != nil {
				return err
			}
			r := topics.NewGlamourRendererFor(color, 0)
			_, _ = fmt.Fprint(cmd.OutOrStdout(), r.Render(taskCatalogue(), topics.Markdown))
			return nil
		},
	}
}

func (a *app) newConfigCmd() *cobra.Command {
	var defaults, showPath bool
	cmd := &cobra.Command{
		Use:     "config [dir]",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case showPath:
				_, _ = fmt.Fprintln(out, config.UserConfigPath())
				return nil
			case defaults:
				_, _ = fmt.Fprint(out, config.GenerateConfigContent())
				return nil
			}

			cfg, _, _, err := a.loadConfig(cmd, targetDir(args), nil)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, _ = out.Write(data)
			return nil
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	cmd.Flags().BoolVar(&showPath, "path", false, MsgFlagPath)
	cmd.MarkFlagsMutuallyExclusive("defaults", "path")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man <dir>",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := doc.GenManTree(cmd.Root(), ManHeader(), args[0]); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, MsgErrManPages)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, args[0])
			return nil
		},
	}
}

// ManHeader is the header shared by the man command and the manpage binary.
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "GULPS",
		Section: "1",
		Source:  "gulps " + version.Version,
		Manual:  "gulps manual",
	}
}

func helpTopics() fs.FS {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return nil
	}
	return sub
}
