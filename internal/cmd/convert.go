package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/thirteen37/mdg-convert/internal/convert"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		formatName    string
		outputFile    string
		stripComments bool
	)

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a mods.toml or quilt.mod.json file",
		Long: `Convert a mods.toml or quilt.mod.json file into a ModsDotGroovy script.

The input is read from the given file, or from stdin when no file (or "-")
is given. The format is never guessed; pass --format or set convert.format
in the configuration file.

Example:
  mdg-convert convert --format toml src/main/resources/META-INF/mods.toml
  cat quilt.mod.json | mdg-convert convert -f json -o mods.groovy`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := formatName
			if name == "" {
				name = a.settings.Format
			}
			f, err := convert.ParseFormat(name)
			if err != nil {
				return err
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			conv := convert.New(a.log, convert.Options{
				StripComments: stripComments || a.settings.StripComments,
			})
			out, err := conv.Convert(f, input)
			if err != nil {
				return err
			}

			return writeOutput(cmd, a, outputFile, out)
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Input format (toml, json)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the script to this file instead of stdout")
	cmd.Flags().BoolVar(&stripComments, "strip-comments", false, "Strip // comments from JSON input")
	return cmd
}

// readInput reads the named file, or stdin when no file is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	filename, err := homedir.Expand(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", args[0], err)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// writeOutput writes the script to outputFile, or stdout when it is empty or "-".
func writeOutput(cmd *cobra.Command, a *app, outputFile, script string) error {
	if outputFile == "" || outputFile == "-" {
		_, err := io.WriteString(cmd.OutOrStdout(), script)
		return err
	}

	filename, err := homedir.Expand(outputFile)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", outputFile, err)
	}
	if err := os.WriteFile(filename, []byte(script), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	a.log.Infof("Wrote %s to %s", humanize.Bytes(uint64(len(script))), filename)
	return nil
}
