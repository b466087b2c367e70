package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/thirteen37/mdg-convert/internal/convert"
	"github.com/thirteen37/mdg-convert/internal/samples"
)

func newSampleCmd(a *app) *cobra.Command {
	var convertSample bool

	cmd := &cobra.Command{
		Use:   "sample <toml|json>",
		Short: "Print an example input document",
		Long: `Print the bundled example mods.toml (toml) or quilt.mod.json (json).

With --convert, the example is converted and the resulting script is printed
instead.

Example:
  mdg-convert sample toml > mods.toml
  mdg-convert sample json --convert`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(convert.TOML), string(convert.JSON)},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := convert.ParseFormat(args[0])
			if err != nil {
				return err
			}
			text, err := samples.ForFormat(string(f))
			if err != nil {
				return err
			}

			if convertSample {
				text, err = convert.New(a.log, convert.Options{}).Convert(f, []byte(text))
				if err != nil {
					return err
				}
			}

			_, err = io.WriteString(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().BoolVar(&convertSample, "convert", false, "Print the converted script instead of the input")
	return cmd
}
