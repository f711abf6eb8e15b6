package style

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

func TestForceColorNever(t *testing.T) {
	orig := lipgloss.ColorProfile()
	defer func() {
		lipgloss.SetColorProfile(orig)
		pterm.EnableColor()
	}()

	ForceColor("never")

	rendered := lipgloss.NewStyle().Bold(true).Render("plain")
	if rendered != "plain" {
		t.Errorf("expected unstyled output, got %q", rendered)
	}
}

func TestForceColorAlways(t *testing.T) {
	orig := lipgloss.ColorProfile()
	defer lipgloss.SetColorProfile(orig)

	ForceColor("always")

	rendered := lipgloss.NewStyle().Bold(true).Render("loud")
	if !strings.Contains(rendered, "\x1b[") {
		t.Errorf("expected ANSI styling, got %q", rendered)
	}
	if !strings.Contains(rendered, "loud") {
		t.Errorf("expected content to survive styling, got %q", rendered)
	}
}

func TestForceColorAutoKeepsProfile(t *testing.T) {
	orig := lipgloss.ColorProfile()

	ForceColor("auto")

	if lipgloss.ColorProfile() != orig {
		t.Errorf("auto changed the color profile")
	}
}
