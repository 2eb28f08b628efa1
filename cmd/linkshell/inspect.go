package linkshell

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/linkshell/pkg/config"
	"github.com/arthur-debert/linkshell/pkg/errors"
	"github.com/arthur-debert/linkshell/pkg/inspect"
	"github.com/arthur-debert/linkshell/pkg/platform"
	"github.com/arthur-debert/linkshell/pkg/style"
)

func newInspectCmd(colorMode *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "inspect <path>",
		Short: MsgInspectShort,
		Long:  MsgInspectLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if output == "" {
				output = cfg.Output
			}
			color := *colorMode
			if color == "" {
				color = cfg.Color
			}

			report, err := inspect.Inspect(platform.New(), args[0])
			if err != nil {
				return err
			}

			switch output {
			case config.OutputJSON:
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return errors.Wrap(err, errors.ErrInternal, "cannot encode report")
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			case config.OutputYAML:
				data, err := yaml.Marshal(report)
				if err != nil {
					return errors.Wrap(err, errors.ErrInternal, "cannot encode report")
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
			case config.OutputText:
				renderer := style.NewRenderer(color)
				fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderReport(report))
			default:
				return errors.Newf(errors.ErrInvalidInput,
					"unknown output format %q (expected text, json or yaml)", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)

	return cmd
}
