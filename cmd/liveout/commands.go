package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/liveout/cmd/liveout/commands/backends"
	"github.com/arthur-debert/liveout/cmd/liveout/commands/demo"
	"github.com/arthur-debert/liveout/cmd/liveout/commands/detect"
	"github.com/arthur-debert/liveout/cmd/liveout/commands/genconfig"
	"github.com/arthur-debert/liveout/cmd/liveout/commands/guide"
	"github.com/arthur-debert/liveout/internal/version"
	"github.com/arthur-debert/liveout/pkg/config"
	"github.com/arthur-debert/liveout/pkg/logging"
	"github.com/arthur-debert/liveout/pkg/style"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity   int
		backendFlag string
		colorFlag   string
	)

	rootCmd := &cobra.Command{
		Use:     "liveout",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Flags layer on top of the config file and environment.
			overrides := map[string]any{}
			flags := cmd.Root().PersistentFlags()
			if flags.Changed("backend") {
				overrides["backend"] = backendFlag
			}
			if flags.Changed("color") {
				overrides["color"] = colorFlag
			}
			if verbosity > 0 {
				overrides["verbosity"] = verbosity
			}

			cfg, err := config.Load(overrides)
			if err != nil {
				return err
			}

			style.ForceColor(string(cfg.Color))
			logging.SetupLogger(cfg.Verbosity, cfg.LogFile)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			cmd.SetContext(config.NewContext(cmd.Context(), cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", MsgFlagBackend)
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", MsgFlagColor)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Add all commands
	rootCmd.AddCommand(backends.NewCommand())
	rootCmd.AddCommand(detect.NewCommand())
	rootCmd.AddCommand(demo.NewCommand())
	rootCmd.AddCommand(genconfig.NewCommand())
	rootCmd.AddCommand(guide.NewCommand())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			fmt.Fprintf(out, MsgBuiltFormat, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
