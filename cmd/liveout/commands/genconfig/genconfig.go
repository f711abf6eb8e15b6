package genconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/liveout/pkg/config"
	"github.com/arthur-debert/liveout/pkg/errors"
	"github.com/arthur-debert/liveout/pkg/paths"
)

// NewCommand creates the genconfig command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")
			effective, _ := cmd.Flags().GetBool("effective")
			out := cmd.OutOrStdout()

			if effective {
				rendered, err := config.FromContext(cmd.Context()).Effective()
				if err != nil {
					return err
				}
				fmt.Fprint(out, rendered)
				return nil
			}

			content := config.GenerateContent()
			if !write {
				fmt.Fprint(out, content)
				return nil
			}

			path := paths.ConfigFilePath()
			if _, err := os.Stat(path); err == nil {
				return errors.Newf(errors.ErrAlreadyExists, "config file already exists at %s", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "creating config directory for %s", path)
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "writing config file %s", path)
			}
			fmt.Fprintf(out, "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolP("write", "w", false, "Write the template to the default config location")
	cmd.Flags().Bool("effective", false, "Print the resolved settings instead of the template")
	cmd.MarkFlagsMutuallyExclusive("write", "effective")

	return cmd
}
