package style

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Status classifies the run state of a monitored operation or step.
type Status string

const (
	StatusPending Status = "pending" // Not started yet
	StatusRunning Status = "running" // Currently executing
	StatusDone    Status = "done"    // Finished successfully
	StatusFailed  Status = "failed"  // Finished with an error
)

// StatusStyle returns the appropriate pterm style for a run state
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusDone:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	case StatusRunning:
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Indicator returns the glyph for a run state, colored by its style
func Indicator(status Status) string {
	var glyph string
	switch status {
	case StatusPending:
		glyph = "○"
	case StatusRunning:
		glyph = "⟳"
	case StatusDone:
		glyph = "✓"
	case StatusFailed:
		glyph = "✗"
	default:
		glyph = "•"
	}
	return StatusStyle(status).Sprint(glyph)
}

// StepStatus describes one monitored step for terminal rendering
type StepStatus struct {
	Name    string // Step label
	Status  Status // Current run state
	Detail  string // Free-form progress detail
	Elapsed string // Formatted duration, shown when set
}

// RenderStep renders a single step status line
func RenderStep(s StepStatus) string {
	name := fmt.Sprintf("%-15s", s.Name)
	line := fmt.Sprintf("  %s %s", Indicator(s.Status), name)
	if s.Detail != "" {
		line += " : " + s.Detail
	}
	if s.Elapsed != "" {
		line += fmt.Sprintf(" (%s)", s.Elapsed)
	}
	return line
}

// AggregateStatus determines the overall run state from individual
// step states
func AggregateStatus(states []Status) Status {
	if len(states) == 0 {
		return StatusPending
	}

	allDone := true
	for _, s := range states {
		switch s {
		case StatusFailed:
			return StatusFailed
		case StatusRunning:
			return StatusRunning
		case StatusPending:
			allDone = false
		}
	}

	if allDone {
		return StatusDone
	}
	return StatusPending
}
