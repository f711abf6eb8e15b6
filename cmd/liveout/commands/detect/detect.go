package detect

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/liveout/pkg/backend"
	"github.com/arthur-debert/liveout/pkg/config"
	"github.com/arthur-debert/liveout/pkg/shell"
	"github.com/arthur-debert/liveout/pkg/table"
)

// NewCommand creates the detect command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "detect",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			explain, _ := cmd.Flags().GetBool("explain")
			out := cmd.OutOrStdout()

			info := shell.Describe()
			picked, err := backend.Select(nil)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "shell:   %s (%s)\n", info.Kind, info.Name)
			fmt.Fprintf(out, "backend: %s\n", picked.ID())

			if cfg := config.FromContext(cmd.Context()); cfg.Backend != "" {
				fmt.Fprintf(out, "configured: %s (overrides detection)\n", cfg.Backend)
			}

			if explain {
				fmt.Fprintln(out)
				printFacts(out, shell.Observe(shell.System()))
			}
			return nil
		},
	}

	cmd.Flags().Bool("explain", false, "Show the probe facts behind the answer")

	return cmd
}

// printFacts lays the raw probe observations out as a marker table.
func printFacts(w io.Writer, facts shell.Facts) {
	tbl := table.New("Marker", "Value")
	tbl.Append("jupyter parent pid", strconv.FormatBool(facts.JupyterParent))
	tbl.Append("session name", facts.SessionName)
	tbl.Append("kernel session", strconv.FormatBool(facts.HasSession))
	tbl.Append("colab release", strconv.FormatBool(facts.ColabRelease))
	tbl.Append("colab jupyter ip", strconv.FormatBool(facts.ColabJupyterIP))
	tbl.Append("stdout tty", strconv.FormatBool(facts.StdoutTTY))
	tbl.Append("term", facts.Term)
	fmt.Fprintln(w, tbl)
}
