// Package convert runs the mods.toml and quilt.mod.json conversion pipelines.
package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/thirteen37/mdg-convert/internal/format"
	"github.com/thirteen37/mdg-convert/internal/format/json"
	"github.com/thirteen37/mdg-convert/internal/format/toml"
	"github.com/thirteen37/mdg-convert/internal/modstoml"
	"github.com/thirteen37/mdg-convert/internal/placeholder"
	"github.com/thirteen37/mdg-convert/internal/quilt"
	"github.com/thirteen37/mdg-convert/internal/tree"
)

// Format selects the input pipeline.
type Format string

const (
	// TOML is a Forge mods.toml file.
	TOML Format = "toml"
	// JSON is a quilt.mod.json file.
	JSON Format = "json"
)

// Formats lists the supported formats.
var Formats = []Format{TOML, JSON}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", &UnknownFormatError{Name: s}
}

// UnknownFormatError is returned for a format name no pipeline handles.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("Unknown language %q; something has gone terribly wrong", e.Name)
}

// ParseError wraps a failure to parse the input text.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Could not parse %s.", strings.ToUpper(string(e.Format)))
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Message returns the text shown to the user in place of the output.
func Message(err error) string {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Error()
	}
	var unknown *UnknownFormatError
	if errors.As(err, &unknown) {
		return unknown.Error()
	}
	return err.Error()
}

// Options configures a Converter.
type Options struct {
	// StripComments removes // comments from JSON input before parsing.
	StripComments bool
}

type pipeline struct {
	handler format.Handler
	rules   []placeholder.Rule
	render  func(tree.Node) (string, error)
}

// Converter turns input documents into ModsDotGroovy scripts.
type Converter struct {
	log       logrus.FieldLogger
	opts      Options
	pipelines map[Format]pipeline
}

// New creates a Converter.
func New(log logrus.FieldLogger, opts Options) *Converter {
	return &Converter{
		log:  log,
		opts: opts,
		pipelines: map[Format]pipeline{
			TOML: {handler: toml.New(), rules: placeholder.Forge, render: modstoml.Convert},
			JSON: {handler: json.New(), rules: placeholder.Quilt, render: quilt.Convert},
		},
	}
}

// Convert renders input, written in format f, as a ModsDotGroovy script.
func (c *Converter) Convert(f Format, input []byte) (string, error) {
	p, ok := c.pipelines[f]
	if !ok {
		return "", &UnknownFormatError{Name: string(f)}
	}
	log := c.log.WithField("format", string(f))
	log.Debugf("Converting %s of input", humanize.Bytes(uint64(len(input))))

	text := placeholder.Apply(string(input), p.rules)
	if text != string(input) {
		log.Trace("Rewrote build placeholders")
	}

	opts := format.ParseOptions{StripComments: c.opts.StripComments && f == JSON}
	root, err := p.handler.Parse([]byte(text), opts)
	if err != nil {
		log.WithError(err).Debug("Parse failed")
		return "", &ParseError{Format: f, Err: err}
	}

	out, err := p.render(root)
	if err != nil {
		log.WithError(err).Debug("Render failed")
		return "", fmt.Errorf("failed to convert %s: %w", f, err)
	}

	log.Debugf("Rendered %s of output", humanize.Bytes(uint64(len(out))))
	return out, nil
}
