package generator

import (
	"context"
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/gulps/pkg/config"
	"github.com/arthur-debert/gulps/pkg/errors"
	"github.com/arthur-debert/gulps/pkg/features"
	"github.com/arthur-debert/gulps/pkg/filesystem"
	"github.com/arthur-debert/gulps/pkg/logging"
	"github.com/arthur-debert/gulps/pkg/planner"
	"github.com/arthur-debert/gulps/pkg/prompt"
	"github.com/arthur-debert/gulps/pkg/synthfs"
	"github.com/arthur-debert/gulps/pkg/templates"
	"github.com/arthur-debert/gulps/pkg/types"
)

// Installer installs npm packages into a project.
type Installer interface {
	Install(ctx context.Context, dir string, packages []string, dev bool) error
}

// Options are the per-run inputs.
type Options struct {
	// Dir is the target project directory.
	Dir string
	// Direct holds the flags passed explicitly on the command line.
	Direct planner.DirectFlags
	// Repository prefills the repository answer.
	Repository  string
	DryRun      bool
	Force       bool
	SkipInstall bool
}

// Result describes a completed run.
type Result struct {
	// Dir is the absolute project directory.
	Dir             string
	AppName         string
	Flags           planner.ResolvedFlags
	Plan            planner.ArtifactPlan
	Written         []string
	Skipped         []string
	Installed       []string
	Notes           []features.Note
	Messages        []string
	NothingSelected bool
	DryRun          bool
}

// Generator wires the workflow collaborators.
type Generator struct {
	cfg       *config.Config
	prompter  prompt.Prompter
	installer Installer
	renderer  *templates.Renderer
	fs        types.FS
}

// New returns a generator. installer may be nil when installs are skipped.
func New(cfg *config.Config, prompter prompt.Prompter, installer Installer) *Generator {
	return &Generator{
		cfg:       cfg,
		prompter:  prompter,
		installer: installer,
		renderer:  templates.NewRenderer(),
		fs:        filesystem.NewOS(),
	}
}

// WithFS replaces the filesystem used for reads and existence checks.
func (g *Generator) WithFS(fsys types.FS) *Generator {
	g.fs = fsys
	return g
}

// Resolve asks the questions and resolves the selection without touching
// the project.
func (g *Generator) Resolve(ctx context.Context, opts Options) (planner.ResolvedFlags, error) {
	logger := logging.GetLogger("generator")

	repoDefault := g.cfg.Generator.DefaultRepository
	if opts.Repository != "" {
		repoDefault = opts.Repository
	}

	questions := Questions(opts.Direct, repoDefault)
	answers, err := g.prompter.Ask(ctx, questions)
	if err != nil {
		return planner.ResolvedFlags{}, err
	}
	logger.Debug().Interface("answers", answers).Msg("Collected answers")

	repository := answers.String(QuestionRepository)
	if repository == "" {
		repository = opts.Repository
	}
	return planner.ResolveFlags(opts.Direct, &planner.Answers{
		Tasks:      answers.Strings(QuestionTasks),
		Repository: repository,
	})
}

// Plan resolves the selection and computes the artifact plan.
func (g *Generator) Plan(ctx context.Context, opts Options) (planner.ResolvedFlags, planner.ArtifactPlan, error) {
	flags, err := g.Resolve(ctx, opts)
	if err != nil {
		return planner.ResolvedFlags{}, planner.ArtifactPlan{}, err
	}
	return flags, planner.PlanArtifacts(flags), nil
}

// Run executes the whole workflow.
func (g *Generator) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("generator")
	done := logging.LogOperationStart(logger, "generate")
	defer done()

	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid directory %s", opts.Dir)
	}

	result := &Result{
		Dir:     dir,
		AppName: AppName(g.fs, dir),
		DryRun:  opts.DryRun,
	}

	flags, plan, err := g.Plan(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Flags = flags
	result.Plan = plan

	if flags.NothingSelected() {
		logger.Warn().Msg("No task selected, nothing to generate")
		result.NothingSelected = true
		return result, nil
	}

	ops, err := g.render(dir, result.AppName, flags, plan)
	if err != nil {
		return nil, err
	}

	report, err := synthfs.NewExecutor(dir, opts.DryRun).
		EnableForce(opts.Force).
		WithFS(g.fs).
		ExecuteOperations(ctx, ops)
	if err != nil {
		return nil, err
	}
	result.Written = report.Written
	result.Skipped = report.Skipped

	switch {
	case opts.DryRun:
		logger.Info().Msg("Dry run, skipping install")
	case opts.SkipInstall || g.cfg.Install.Skip:
		logger.Info().Msg("Install skipped")
	case g.installer == nil:
		return nil, errors.New(errors.ErrInternal, "no installer configured")
	default:
		if err := g.installer.Install(ctx, dir, plan.Dependencies, g.cfg.Install.Dev); err != nil {
			return nil, err
		}
		result.Installed = plan.Dependencies
	}

	result.Notes = planner.PostInstallNotes(flags)
	result.Messages = planner.DescribePostInstallMessages(flags)
	return result, nil
}

// render produces the write operations for every planned file, base
// templates first.
func (g *Generator) render(dir, appName string, flags planner.ResolvedFlags, plan planner.ArtifactPlan) ([]types.Operation, error) {
	ctx := templates.NewContext(appName, g.cfg.Generator.TaskDir, flags, plan)

	files := plan.Files()
	ops := make([]types.Operation, 0, len(files))
	for _, tmpl := range files {
		content, err := g.renderer.Render(tmpl.ID, ctx)
		if err != nil {
			return nil, err
		}
		dest := Destination(tmpl, g.cfg.Generator.TaskDir)
		ops = append(ops, types.NewWriteOperation(
			filepath.Join(dir, filepath.FromSlash(dest)), content, "write "+dest))
	}
	return ops, nil
}

// Destination returns where tmpl is written, relative to the project, with
// the task directory replaced by taskDir.
func Destination(tmpl features.Template, taskDir string) string {
	if taskDir == "" || taskDir == features.TaskDir {
		return tmpl.Dest
	}
	prefix := features.TaskDir + "/"
	if rest, ok := strings.CutPrefix(tmpl.Dest, prefix); ok {
		return path.Join(filepath.ToSlash(taskDir), rest)
	}
	return tmpl.Dest
}
