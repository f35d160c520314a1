package prompt

import "context"

// StaticPrompter answers from a preset map. A question missing from the map
// gets its Default.
type StaticPrompter struct {
	Preset Answers
}

// NewStaticPrompter returns a prompter that answers from preset.
func NewStaticPrompter(preset Answers) *StaticPrompter {
	return &StaticPrompter{Preset: preset}
}

// Ask implements Prompter.
func (p *StaticPrompter) Ask(ctx context.Context, questions []Question) (Answers, error) {
	answers := Answers{}
	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !q.shouldAsk(answers) {
			continue
		}

		v, ok := p.Preset[q.Name]
		if !ok {
			answers[q.Name] = defaultAnswer(q)
			continue
		}

		switch q.Kind {
		case Checkbox:
			answers[q.Name] = append([]string{}, Answers{q.Name: v}.Strings(q.Name)...)
		default:
			answers[q.Name] = Answers{q.Name: v}.String(q.Name)
		}
	}
	return answers, nil
}

func defaultAnswer(q Question) interface{} {
	if q.Kind == Checkbox {
		return append([]string{}, q.Default...)
	}
	if len(q.Default) > 0 {
		return q.Default[0]
	}
	return ""
}
