package backends

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/liveout/pkg/backend"
	"github.com/arthur-debert/liveout/pkg/config"
	"github.com/arthur-debert/liveout/pkg/display"
	"github.com/arthur-debert/liveout/pkg/table"
)

// NewCommand creates the backends command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "backends",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())

			sess, err := display.NewSession(cfg.Selector())
			if err != nil {
				return err
			}

			sess.Show(listing(backend.Default()))
			return nil
		},
	}
}

// listing renders the catalog as a table of id, capability and
// description.
func listing(reg *backend.Registry) *table.Table {
	tbl := table.New("ID", "Updates", "Description")
	for _, spec := range reg.Specs() {
		updates := "no"
		if spec.CanUpdate {
			updates = "yes"
		}
		tbl.Append(spec.ID, updates, spec.Description)
	}
	return tbl
}
