package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thirteen37/mdg-convert/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change default settings",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.Keys() {
				value, _ := a.settings.Get(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", name, value)
			}
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting in the configuration file",
		Long: `Change a setting in the configuration file.

Keys:
  convert.format          Default input format (toml, json)
  convert.strip-comments  Strip // comments from JSON input (true, false)
  log.level               TRACE, DEBUG, INFO, WARN or ERROR
  output.color            Colored error output (true, false)

Example:
  mdg-convert config set convert.format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.settings.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := a.settings.Save(a.configPath); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			value, _ := a.settings.Get(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], value)
			return nil
		},
	}

	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(setCmd)
	return configCmd
}
