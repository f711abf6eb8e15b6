package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// ForceColor overrides terminal color detection for both lipgloss
// and pterm rendering. "always" keeps full color without a TTY,
// "never" strips all styling, anything else leaves the detected
// profile alone.
func ForceColor(mode string) {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
		pterm.EnableColor()
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableColor()
	}
}
