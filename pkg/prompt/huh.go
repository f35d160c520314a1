package prompt

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/arthur-debert/gulps/pkg/errors"
	"github.com/arthur-debert/gulps/pkg/logging"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// HuhPrompter asks questions in the terminal. Each question runs as its own
// form so that When can see every earlier answer.
type HuhPrompter struct {
	theme      *huh.Theme
	accessible bool
}

// NewHuhPrompter returns a terminal prompter. accessible switches huh to its
// line-based mode, which needs no cursor control.
func NewHuhPrompter(accessible bool) *HuhPrompter {
	return &HuhPrompter{theme: newTheme(), accessible: accessible}
}

// Ask implements Prompter.
func (p *HuhPrompter) Ask(ctx context.Context, questions []Question) (Answers, error) {
	logger := logging.GetLogger("prompt.huh")
	answers := Answers{}

	for i := range questions {
		q := questions[i]
		if !q.shouldAsk(answers) {
			logger.Debug().Str("question", q.Name).Msg("Skipping question")
			continue
		}

		field, collect := buildField(q)
		form := huh.NewForm(huh.NewGroup(field)).
			WithTheme(p.theme).
			WithAccessible(p.accessible)

		if err := form.RunWithContext(ctx); err != nil {
			if stderrors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, errors.Wrapf(err, errors.ErrPrompt, "question %s failed", q.Name)
		}

		answers[q.Name] = collect()
		logger.Debug().Str("question", q.Name).Interface("answer", answers[q.Name]).Msg("Answered")
	}

	return answers, nil
}

func buildField(q Question) (huh.Field, func() interface{}) {
	switch q.Kind {
	case Checkbox:
		selected := append([]string(nil), q.Default...)
		opts := make([]huh.Option[string], len(q.Choices))
		for i, c := range q.Choices {
			opts[i] = huh.NewOption(c.Label, c.Value)
		}
		field := huh.NewMultiSelect[string]().
			Title(q.Message).
			Options(opts...).
			Value(&selected)
		return field, func() interface{} {
			if selected == nil {
				return []string{}
			}
			return selected
		}
	default:
		def := ""
		if len(q.Default) > 0 {
			def = q.Default[0]
		}
		value := def
		field := huh.NewInput().
			Title(q.Message).
			Placeholder(def).
			Value(&value)
		return field, func() interface{} {
			v := strings.TrimSpace(value)
			if v == "" {
				return def
			}
			return v
		}
	}
}

func newTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("[ ] ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
