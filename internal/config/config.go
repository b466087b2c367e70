// Package config provides configuration file handling for mdg-convert.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/ini.v1"
)

// DefaultPath is where the configuration file lives unless --config says otherwise.
const DefaultPath = "~/.config/mdg-convert/config.ini"

// Settings holds user defaults for the command-line flags.
type Settings struct {
	// Format is the input format used when --format is not given.
	Format string
	// StripComments enables // comment stripping for JSON input.
	StripComments bool
	// LogLevel is one of TRACE, DEBUG, INFO, WARN or ERROR.
	LogLevel string
	// Color enables colored error output.
	Color bool
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		Format:   "toml",
		LogLevel: "WARN",
		Color:    true,
	}
}

// key binds a dotted setting name to its ini section and key.
type key struct {
	section string
	name    string
	get     func(s *Settings) string
	set     func(s *Settings, value string) error
}

var keys = map[string]key{
	"convert.format": {
		section: "convert", name: "format",
		get: func(s *Settings) string { return s.Format },
		set: func(s *Settings, v string) error { s.Format = v; return nil },
	},
	"convert.strip-comments": {
		section: "convert", name: "strip-comments",
		get: func(s *Settings) string { return strconv.FormatBool(s.StripComments) },
		set: func(s *Settings, v string) error { return setBool(&s.StripComments, v) },
	},
	"log.level": {
		section: "log", name: "level",
		get: func(s *Settings) string { return s.LogLevel },
		set: func(s *Settings, v string) error { s.LogLevel = strings.ToUpper(v); return nil },
	},
	"output.color": {
		section: "output", name: "color",
		get: func(s *Settings) string { return strconv.FormatBool(s.Color) },
		set: func(s *Settings, v string) error { return setBool(&s.Color, v) },
	},
}

// setBool leaves dst untouched when v is not a boolean.
func setBool(dst *bool, v string) error {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// Keys returns the names accepted by Set, sorted.
func Keys() []string {
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolvePath expands ~ in filename.
func ResolvePath(filename string) (string, error) {
	resolved, err := homedir.Expand(filename)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", filename, err)
	}
	return resolved, nil
}

// Load reads Settings from a file. A missing file yields the defaults.
//
// The returned Settings are always usable: when the file cannot be parsed or holds
// invalid values, they are the defaults overlaid with every value that could be
// read, and the error describes what was skipped.
func Load(filename string) (*Settings, error) {
	s := Defaults()

	resolved, err := ResolvePath(filename)
	if err != nil {
		return s, err
	}
	if _, err := os.Stat(resolved); os.IsNotExist(err) {
		return s, nil
	}

	cfg, err := ini.Load(resolved)
	if err != nil {
		return s, fmt.Errorf("failed to parse config file: %w", err)
	}

	var problems []error
	for _, name := range Keys() {
		k := keys[name]
		if !cfg.Section(k.section).HasKey(k.name) {
			continue
		}
		value := cfg.Section(k.section).Key(k.name).String()
		if err := k.set(s, value); err != nil {
			problems = append(problems, fmt.Errorf("invalid value %q for %s: %w", value, name, err))
		}
	}

	return s, errors.Join(problems...)
}

// Save writes the Settings to a file, creating its directory if needed.
func (s *Settings) Save(filename string) error {
	resolved, err := ResolvePath(filename)
	if err != nil {
		return err
	}

	cfg := ini.Empty()
	for _, name := range Keys() {
		k := keys[name]
		cfg.Section(k.section).Key(k.name).SetValue(k.get(s))
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := cfg.SaveTo(resolved); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Set updates one setting by its dotted name, e.g. "log.level".
func (s *Settings) Set(name, value string) error {
	k, ok := keys[name]
	if !ok {
		return fmt.Errorf("unknown setting %q (known: %s)", name, strings.Join(Keys(), ", "))
	}
	if err := k.set(s, value); err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", value, name, err)
	}
	return nil
}

// Get returns one setting by its dotted name.
func (s *Settings) Get(name string) (string, bool) {
	k, ok := keys[name]
	if !ok {
		return "", false
	}
	return k.get(s), true
}
