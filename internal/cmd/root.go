// Package cmd provides the CLI commands for mdg-convert.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/thirteen37/mdg-convert/internal/config"
	"github.com/thirteen37/mdg-convert/internal/convert"
)

// app holds state shared by all commands of one invocation.
type app struct {
	configPath string
	logLevel   string
	noColor    bool

	settings *config.Settings
	log      *logrus.Logger
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mdg-convert",
		Short: "Convert mod metadata files into ModsDotGroovy scripts",
		Long: `mdg-convert translates Forge mods.toml and Quilt quilt.mod.json files
into equivalent ModsDotGroovy build scripts.

Build placeholders such as ${file.jarVersion} or ${version} are rewritten
to their ModsDotGroovy counterparts so they stay live in the output.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (TRACE, DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newConvertCmd(a))
	rootCmd.AddCommand(newSampleCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	return rootCmd
}

// setup loads the configuration file and configures logging.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(a.configPath)
	a.settings = settings
	a.log.SetOutput(cmd.ErrOrStderr())
	if err != nil {
		if !inConfigCmd(cmd) {
			return fmt.Errorf("failed to load config %s (repair it with 'mdg-convert config set' or choose another file with --config): %w", a.configPath, err)
		}
		a.log.WithError(err).Warn("Ignoring unreadable config values")
	}

	level := settings.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	return setLogLevel(a.log, level)
}

// inConfigCmd reports whether cmd is the config command or one of its subcommands.
// Those run against a broken file so that it can be repaired.
func inConfigCmd(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return true
		}
	}
	return false
}

func setLogLevel(log *logrus.Logger, level string) error {
	switch strings.ToUpper(level) {
	case "TRACE":
		log.SetLevel(logrus.TraceLevel)
	case "DEBUG":
		log.SetLevel(logrus.DebugLevel)
	case "INFO":
		log.SetLevel(logrus.InfoLevel)
	case "WARN", "":
		log.SetLevel(logrus.WarnLevel)
	case "ERROR":
		log.SetLevel(logrus.ErrorLevel)
	default:
		return fmt.Errorf("unknown log level: %s", level)
	}
	return nil
}

// printError writes the user-facing message for err.
func (a *app) printError(w io.Writer, err error) {
	c := color.New(color.FgRed)
	if a.noColor || (a.settings != nil && !a.settings.Color) {
		c.DisableColor()
	}
	c.Fprintln(w, convert.Message(err))
}

// run executes the CLI with the given arguments and returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{log: logrus.New()}
	a.log.SetOutput(stderr)

	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		a.printError(stderr, err)
		return 1
	}
	return 0
}

// Execute runs the root command.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
