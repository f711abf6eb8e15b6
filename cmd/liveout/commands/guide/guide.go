package guide

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideRaw string

// NewCommand creates the guide command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "guide",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			width, _ := cmd.Flags().GetInt("width")
			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(guideRaw, width))
			return nil
		},
	}

	cmd.Flags().Int("width", 80, "Wrap output at this column (0 disables wrapping)")

	return cmd
}

// renderMarkdown converts the guide to terminal output, falling back
// to the raw markdown when rendering fails.
func renderMarkdown(content string, width int) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
