package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/gulps/pkg/config"
)

// ColorEnabled decides whether output to w gets color for the given
// output.color mode. In auto mode color is off when termenv detects an
// ASCII-only profile, which includes non-terminals and NO_COLOR.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
}

// Configure applies the color decision to both lipgloss and pterm and
// returns it.
func Configure(mode string, w io.Writer) bool {
	enabled := ColorEnabled(mode, w)
	if !enabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableStyling()
		return false
	}

	profile := termenv.NewOutput(w).EnvColorProfile()
	if profile == termenv.Ascii {
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
	pterm.EnableStyling()
	return true
}
