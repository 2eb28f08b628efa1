package linkshell

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/linkshell/internal/version"
	"github.com/arthur-debert/linkshell/pkg/config"
	"github.com/arthur-debert/linkshell/pkg/errors"
	"github.com/arthur-debert/linkshell/pkg/link"
	"github.com/arthur-debert/linkshell/pkg/logging"
	"github.com/arthur-debert/linkshell/pkg/platform"
	"github.com/arthur-debert/linkshell/pkg/style"
)

// NewRootCmd creates and returns the root command. The root command itself
// carries the create operation, matching the boundary contract:
//
//	linkshell --type {hardlink|symlink|junction} --source <path> --target <path>
//
// Bad or missing flag values are usage errors reported before the link
// core is ever invoked; they are distinct from link outcomes.
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		linkType  string
		source    string
		target    string
		colorMode string
	)

	rootCmd := &cobra.Command{
		Use:     "linkshell",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if linkType == "" && source == "" && target == "" {
				_ = cmd.Help()
				return errors.New(errors.ErrInvalidInput, MsgErrNoOperation)
			}

			cfg := loadConfig()
			if linkType == "" {
				linkType = cfg.DefaultType
			}
			if colorMode == "" {
				colorMode = cfg.Color
			}

			kind, err := link.ParseKind(linkType)
			if err != nil {
				return err
			}
			if source == "" {
				return errors.New(errors.ErrInvalidInput, MsgErrSourceMissing)
			}
			if target == "" {
				return errors.New(errors.ErrInvalidInput, MsgErrTargetMissing)
			}

			req, err := link.NewRequest(source, target, kind)
			if err != nil {
				return err
			}

			outcome := link.Create(platform.New(), req)
			if !outcome.Created() {
				return errors.Wrapf(outcome.Err, outcome.Reason,
					"cannot create %s", style.KindLabel[kind])
			}

			renderer := style.NewRenderer(colorMode)
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderOutcome(req, outcome))
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", MsgFlagColor)

	// Create flags, on the root command itself
	rootCmd.Flags().StringVar(&linkType, "type", "", MsgFlagType)
	rootCmd.Flags().StringVar(&source, "source", "", MsgFlagSource)
	rootCmd.Flags().StringVar(&target, "target", "", MsgFlagTarget)
	_ = rootCmd.RegisterFlagCompletionFunc("type",
		func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			var kinds []string
			for _, k := range link.Kinds() {
				kinds = append(kinds, string(k))
			}
			return kinds, cobra.ShellCompDirectiveNoFileComp
		})

	rootCmd.AddCommand(newInspectCmd(&colorMode))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadConfig reads the optional user config; a broken config file is
// logged and ignored rather than blocking the operation.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("Ignoring invalid config file")
		return config.Default()
	}
	return cfg
}

// ExitCode maps a command error onto the process exit code: usage errors
// are distinguished from failed link outcomes.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.IsErrorCode(err, errors.ErrInvalidInput) {
		return 2
	}
	return 1
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "linkshell version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     MsgCompletionShort,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
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
