package templates

import (
	"bytes"
	"embed"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"github.com/arthur-debert/gulps/pkg/errors"
	"github.com/arthur-debert/gulps/pkg/features"
	"github.com/arthur-debert/gulps/pkg/logging"
	"github.com/arthur-debert/gulps/pkg/planner"
)

//go:embed templates/gulps
var embedded embed.FS

const root = "templates/gulps"

// Context is the data every template is executed with.
type Context struct {
	AppName    string
	Repository string
	TaskDir    string

	Lint       bool
	Serve      bool
	Browserify bool
	Release    bool
	Changelog  bool
	Test       bool
	Style      bool

	CSS   []string
	Fonts []string
}

// NewContext builds the render context for a resolved selection and its plan.
func NewContext(appName, taskDir string, r planner.ResolvedFlags, plan planner.ArtifactPlan) Context {
	if taskDir == "" {
		taskDir = features.TaskDir
	}
	return Context{
		AppName:    appName,
		Repository: r.Repository(),
		TaskDir:    taskDir,
		Lint:       r.Enabled(features.Lint),
		Serve:      r.Enabled(features.Serve),
		Browserify: r.Enabled(features.Browserify),
		Release:    r.Enabled(features.Release),
		Changelog:  r.Enabled(features.Changelog),
		Test:       r.Enabled(features.Test),
		Style:      r.Enabled(features.Style),
		CSS:        plan.CSSRefs,
		Fonts:      plan.FontGlobs,
	}
}

// Renderer executes embedded templates.
type Renderer struct {
	fsys  fs.FS
	cache map[features.TemplateID]*template.Template
}

// NewRenderer returns a renderer over the embedded template tree.
func NewRenderer() *Renderer {
	sub, err := fs.Sub(embedded, root)
	if err != nil {
		// root is a compile-time constant matching the embed directive
		panic(err)
	}
	return NewRendererFS(sub)
}

// NewRendererFS returns a renderer over fsys, whose root holds the template
// ids directly.
func NewRendererFS(fsys fs.FS) *Renderer {
	return &Renderer{
		fsys:  fsys,
		cache: make(map[features.TemplateID]*template.Template),
	}
}

// Render executes template id with ctx.
func (r *Renderer) Render(id features.TemplateID, ctx Context) ([]byte, error) {
	logger := logging.GetLogger("templates.render")

	tmpl, err := r.load(id)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplate, "failed to render %s", id).
			WithDetail("template", string(id))
	}

	logger.Trace().Str("template", string(id)).Int("bytes", buf.Len()).Msg("Rendered template")
	return buf.Bytes(), nil
}

// IDs lists every template id in the tree.
func (r *Renderer) IDs() ([]features.TemplateID, error) {
	var ids []features.TemplateID
	err := fs.WalkDir(r.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			ids = append(ids, features.TemplateID(p))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTemplate, "failed to list templates")
	}
	return ids, nil
}

func (r *Renderer) load(id features.TemplateID) (*template.Template, error) {
	if t, ok := r.cache[id]; ok {
		return t, nil
	}

	src, err := fs.ReadFile(r.fsys, string(id))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplate, "template %s not found", id).
			WithDetail("template", string(id))
	}

	t, err := template.New(path.Base(string(id))).
		Option("missingkey=error").
		Funcs(funcMap()).
		Parse(string(src))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplate, "failed to parse %s", id).
			WithDetail("template", string(id))
	}

	r.cache[id] = t
	return t, nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"jsString": jsString,
		"jsArray":  jsArray,
	}
}

var jsEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
)

// jsString renders s as a single-quoted JavaScript string literal.
func jsString(s string) string {
	return "'" + jsEscaper.Replace(s) + "'"
}

// jsArray renders items as a JavaScript array of single-quoted strings.
func jsArray(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = jsString(s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
