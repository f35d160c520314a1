package style

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

type tagStyle struct {
	pattern *regexp.Regexp
	style   lipgloss.Style
}

// MarkupParser renders inline [tag]text[/tag] markup with lipgloss styles.
// Unknown tags are left in place.
type MarkupParser struct {
	tags map[string]tagStyle
}

// NewMarkupParser creates a parser with the default tag set.
func NewMarkupParser() *MarkupParser {
	p := &MarkupParser{tags: make(map[string]tagStyle)}
	for tag, s := range map[string]lipgloss.Style{
		"title":    TitleStyle,
		"success":  SuccessStyle,
		"error":    ErrorStyle,
		"warning":  WarningStyle,
		"muted":    MutedStyle,
		"path":     PathStyle,
		"command":  CommandStyle,
		"task":     TaskStyle,
		"platform": PlatformStyle,
		"bold":     lipgloss.NewStyle().Bold(true),
	} {
		p.AddStyle(tag, s)
	}
	return p
}

// AddStyle registers or replaces a tag.
func (p *MarkupParser) AddStyle(tag string, style lipgloss.Style) {
	quoted := regexp.QuoteMeta(tag)
	p.tags[tag] = tagStyle{
		pattern: regexp.MustCompile(`\[` + quoted + `\](.*?)\[/` + quoted + `\]`),
		style:   style,
	}
}

// Render processes markup text and returns styled output. Tags may nest.
func (p *MarkupParser) Render(text string) string {
	return p.apply(text, func(s lipgloss.Style, content string) string {
		return s.Render(content)
	})
}

// Strip removes known tags and keeps their content unstyled.
func (p *MarkupParser) Strip(text string) string {
	return p.apply(text, func(_ lipgloss.Style, content string) string {
		return content
	})
}

func (p *MarkupParser) apply(text string, fn func(lipgloss.Style, string) string) string {
	result := text
	for {
		prev := result
		for _, t := range p.tags {
			result = t.pattern.ReplaceAllStringFunc(result, func(match string) string {
				sub := t.pattern.FindStringSubmatch(match)
				return fn(t.style, sub[1])
			})
		}
		// Every replacement removes one tag pair, so this terminates.
		if result == prev {
			return result
		}
	}
}

var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// Strip is a convenience function using the default parser
func Strip(text string) string {
	return defaultParser.Strip(text)
}
