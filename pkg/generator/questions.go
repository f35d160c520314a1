package generator

import (
	"github.com/arthur-debert/gulps/pkg/features"
	"github.com/arthur-debert/gulps/pkg/planner"
	"github.com/arthur-debert/gulps/pkg/prompt"
)

// Question names.
const (
	QuestionTasks      = "tasks"
	QuestionRepository = "repository"
)

// Questions builds the prompt for a run. Tasks is asked only when no task
// was passed directly as true. Repository is asked when changelog was
// picked or passed directly as true.
func Questions(direct planner.DirectFlags, defaultRepository string) []prompt.Question {
	choices := make([]prompt.Choice, 0, len(features.AllFeatures()))
	for _, f := range features.AllFeatures() {
		choices = append(choices, prompt.Choice{
			Label: f.String() + " - " + features.DescriptionFor(f),
			Value: f.String(),
		})
	}

	hasTaskOption := direct.HasTaskOption()
	changelogDirect := direct.Features[features.Changelog]

	return []prompt.Question{
		{
			Name:    QuestionTasks,
			Message: "What tasks would you like to generate?",
			Kind:    prompt.Checkbox,
			Choices: choices,
			When: func(prompt.Answers) bool {
				return !hasTaskOption
			},
		},
		{
			Name:    QuestionRepository,
			Message: "What is the url of your repository?",
			Kind:    prompt.Input,
			Default: []string{defaultRepository},
			When: func(a prompt.Answers) bool {
				return changelogDirect || a.Contains(QuestionTasks, features.Changelog.String())
			},
		},
	}
}
