package style

import (
	"github.com/pterm/pterm"
)

// Status of a single generated file.
type Status string

const (
	StatusWritten Status = "written" // File was written
	StatusSkipped Status = "skipped" // File existed and was left alone
	StatusPlanned Status = "planned" // Dry run: would be written
)

// StatusStyle returns the pterm style for a status badge.
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusWritten:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case StatusSkipped:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StatusLabel is the fixed-width badge text for a status.
func StatusLabel(status Status) string {
	switch status {
	case StatusWritten:
		return "create "
	case StatusSkipped:
		return "skip   "
	case StatusPlanned:
		return "plan   "
	default:
		return string(status)
	}
}
