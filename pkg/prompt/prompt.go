package prompt

import (
	"context"
	"os"

	"github.com/arthur-debert/gulps/pkg/errors"
	"github.com/mattn/go-isatty"
)

// Kind is the shape of answer a question expects.
type Kind int

const (
	// Checkbox answers with any subset of Choices.
	Checkbox Kind = iota
	// Input answers with free text.
	Input
)

func (k Kind) String() string {
	switch k {
	case Checkbox:
		return "checkbox"
	case Input:
		return "input"
	default:
		return "unknown"
	}
}

// Choice is one selectable option of a Checkbox question.
type Choice struct {
	Label string
	Value string
}

// Question is a single prompt.
type Question struct {
	Name    string
	Message string
	Kind    Kind
	Choices []Choice
	// Default is the prefilled value of an Input question, or the values
	// checked up front for a Checkbox question.
	Default []string
	// When gates the question on previous answers. Nil means always ask.
	When func(Answers) bool
}

func (q Question) shouldAsk(a Answers) bool {
	return q.When == nil || q.When(a)
}

// Answers maps a question name to its answer: []string for checkboxes and
// string for inputs.
type Answers map[string]interface{}

// Strings returns the checkbox answer for name, or nil.
func (a Answers) Strings(name string) []string {
	switch v := a[name].(type) {
	case []string:
		return v
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

// String returns the input answer for name, or "".
func (a Answers) String(name string) string {
	switch v := a[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

// Contains reports whether value is among the checkbox answers for name.
func (a Answers) Contains(name, value string) bool {
	for _, v := range a.Strings(name) {
		if v == value {
			return true
		}
	}
	return false
}

// Prompter asks questions and collects the answers.
type Prompter interface {
	Ask(ctx context.Context, questions []Question) (Answers, error)
}

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New(errors.ErrCancelled, "prompt cancelled by user")

// IsHeadless reports whether stdin is not an interactive terminal.
func IsHeadless() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
