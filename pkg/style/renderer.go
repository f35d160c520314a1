package style

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/gulps/pkg/features"
	"github.com/arthur-debert/gulps/pkg/generator"
	"github.com/arthur-debert/gulps/pkg/planner"
)

// Messages shared by every renderer.
const (
	MsgNothingSelected = "You didn't select any gulp task"
	MsgDryRun          = "Dry run, nothing was written or installed"
	MsgSuccess         = "It appears that everything installed correctly."
	MsgNoFiles         = "No files to write"
)

// Renderer formats workflow output for the terminal.
type Renderer interface {
	RenderResult(res *generator.Result) string
	RenderPlan(flags planner.ResolvedFlags, plan planner.ArtifactPlan) string
	RenderError(err error) string
}

// NewRenderer returns a TerminalRenderer when color is on and a
// PlainRenderer otherwise.
func NewRenderer(color bool) Renderer {
	if color {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct {
	width int
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{width: 72}
}

// SetWidth updates the plan box width
func (r *TerminalRenderer) SetWidth(width int) {
	r.width = width
}

// RenderResult renders the file list, the success line and the notes.
func (r *TerminalRenderer) RenderResult(res *generator.Result) string {
	if res.NothingSelected {
		return WarningStyle.Render(MsgNothingSelected)
	}

	var b strings.Builder
	if res.DryRun {
		b.WriteString(fmt.Sprintf("%s %s\n\n", pterm.Warning.Prefix.Text, WarningStyle.Render(MsgDryRun)))
	}

	for _, line := range fileLines(res) {
		badge := StatusStyle(line.status).Sprint(StatusLabel(line.status))
		b.WriteString(fmt.Sprintf("  %s %s\n", badge, PathStyle.Render(line.path)))
	}
	if len(res.Skipped) > 0 {
		b.WriteString(MutedStyle.Render("  existing files were kept, use --force to overwrite") + "\n")
	}

	if len(res.Installed) > 0 {
		b.WriteString(fmt.Sprintf("\n%s installed %d packages\n", MutedStyle.Render("npm"), len(res.Installed)))
	}

	if !res.DryRun {
		b.WriteString("\n" + SuccessStyle.Render("Woot!") + " " + MsgSuccess + "\n")
	}
	for _, n := range res.Notes {
		b.WriteString(Render(noteMarkup(n)) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderPlan renders the resolved selection and plan in a box.
func (r *TerminalRenderer) RenderPlan(flags planner.ResolvedFlags, plan planner.ArtifactPlan) string {
	var rows []string
	row := func(label, value string) {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), value))
	}

	row("Tasks", joinStyled(taskNames(flags.Tasks()), TaskStyle))
	row("Platforms", joinStyled(platformNames(flags.Platforms()), PlatformStyle))
	if flags.Repository() != "" {
		row("Repository", flags.Repository())
	}
	row("Files", lines(destinations(plan)))
	row("Dependencies", lines(plan.Dependencies))
	row("Stylesheets", lines(nonEmpty(plan.CSSRefs)))
	row("Fonts", lines(plan.FontGlobs))

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return TitleStyle.Render("Plan") + "\n" + BoxStyle.Width(r.width).Render(body)
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderResult renders the result without styling.
func (r *PlainRenderer) RenderResult(res *generator.Result) string {
	if res.NothingSelected {
		return MsgNothingSelected
	}

	var b strings.Builder
	if res.DryRun {
		b.WriteString(MsgDryRun + "\n\n")
	}
	for _, line := range fileLines(res) {
		b.WriteString(fmt.Sprintf("  %s %s\n", StatusLabel(line.status), line.path))
	}
	if len(res.Installed) > 0 {
		b.WriteString(fmt.Sprintf("\nnpm installed %d packages\n", len(res.Installed)))
	}
	if !res.DryRun {
		b.WriteString("\nWoot! " + MsgSuccess + "\n")
	}
	for _, m := range res.Messages {
		b.WriteString(m + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderPlan renders the plan as aligned plain text.
func (r *PlainRenderer) RenderPlan(flags planner.ResolvedFlags, plan planner.ArtifactPlan) string {
	var b strings.Builder
	write := func(label string, values []string) {
		b.WriteString(fmt.Sprintf("%-14s%s\n", label, strings.Join(orNone(values), ", ")))
	}
	write("Tasks", taskNames(flags.Tasks()))
	write("Platforms", platformNames(flags.Platforms()))
	if flags.Repository() != "" {
		write("Repository", []string{flags.Repository()})
	}
	write("Files", destinations(plan))
	write("Dependencies", plan.Dependencies)
	write("Stylesheets", nonEmpty(plan.CSSRefs))
	write("Fonts", plan.FontGlobs)
	return strings.TrimRight(b.String(), "\n")
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", err.Error())
}

type fileLine struct {
	status Status
	path   string
}

// fileLines lists written then skipped files relative to the project.
func fileLines(res *generator.Result) []fileLine {
	written := StatusWritten
	if res.DryRun {
		written = StatusPlanned
	}
	lines := make([]fileLine, 0, len(res.Written)+len(res.Skipped))
	for _, p := range res.Written {
		lines = append(lines, fileLine{status: written, path: relative(res.Dir, p)})
	}
	for _, p := range res.Skipped {
		lines = append(lines, fileLine{status: StatusSkipped, path: relative(res.Dir, p)})
	}
	return lines
}

func relative(dir, p string) string {
	if dir == "" {
		return p
	}
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return p
	}
	return filepath.ToSlash(rel)
}

func noteMarkup(n features.Note) string {
	return fmt.Sprintf("Run the command [command]%s[/command] %s", n.Command, n.Purpose)
}

func taskNames(tasks []features.FeatureFlag) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.String())
	}
	return out
}

func platformNames(platforms []features.PlatformFlag) []string {
	out := make([]string, 0, len(platforms))
	for _, p := range platforms {
		out = append(out, p.String())
	}
	return out
}

func destinations(plan planner.ArtifactPlan) []string {
	files := plan.Files()
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Dest)
	}
	return out
}

// nonEmpty drops the "" stylesheet placeholder.
func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func orNone(values []string) []string {
	if len(values) == 0 {
		return []string{"none"}
	}
	return values
}

func lines(values []string) string {
	return strings.Join(orNone(values), "\n")
}

func joinStyled(values []string, s lipgloss.Style) string {
	values = orNone(values)
	styled := make([]string, len(values))
	for i, v := range values {
		styled[i] = s.Render(v)
	}
	return strings.Join(styled, ", ")
}

var (
	_ Renderer = (*TerminalRenderer)(nil)
	_ Renderer = (*PlainRenderer)(nil)
)
