// Package config loads ngroup console utility settings from TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ava12/ngroup/alphabet"
)

// Format is a configuration file format.
type Format int

const (
	// FormatAuto detects format from file extension.
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// Alphabet overrides bracket and delimiter sets; empty fields keep defaults.
// Bracket pairs are two-character strings, the first pair of each kind is canonical.
type Alphabet struct {
	Omissible   []string `toml:"omissible" yaml:"omissible"`
	Alternative []string `toml:"alternative" yaml:"alternative"`
	Delimiters  string   `toml:"delimiters" yaml:"delimiters"`
}

// Config holds console utility settings.
type Config struct {
	// Join is inserted between expanded terms.
	Join string `toml:"join" yaml:"join"`
	// Unique removes duplicate terms.
	Unique bool `toml:"unique" yaml:"unique"`
	// MaxTerms limits the number of expanded terms per input, 0 means no limit.
	MaxTerms int `toml:"max_terms" yaml:"max_terms"`
	// Selector locates the input element in HTML pages.
	Selector string `toml:"selector" yaml:"selector"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string   `toml:"log_level" yaml:"log_level"`
	Alphabet Alphabet `toml:"alphabet" yaml:"alphabet"`
}

// Defaults returns settings used when no file is given.
func Defaults() Config {
	return Config{
		Join:     "；",
		MaxTerms: 10000,
		Selector: "input",
		LogLevel: "warn",
	}
}

// DetectFormat returns format matching file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}
}

// Load reads settings from file, format is detected from extension.
// Missing keys keep default values, unknown keys are rejected.
func Load(path string) (Config, error) {
	format, e := DetectFormat(path)
	if e != nil {
		return Config{}, e
	}

	content, e := os.ReadFile(path)
	if e != nil {
		return Config{}, fmt.Errorf("reading config: %w", e)
	}

	cfg, e := Decode(content, format)
	if e != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, e)
	}
	return cfg, nil
}

// Decode parses settings over defaults and validates them.
func Decode(content []byte, format Format) (Config, error) {
	cfg := Defaults()
	switch format {
	case FormatTOML:
		md, e := toml.Decode(string(content), &cfg)
		if e != nil {
			return Config{}, e
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("unknown key %q", undecoded[0].String())
		}

	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if e := dec.Decode(&cfg); e != nil && !errors.Is(e, io.EOF) {
			return Config{}, e
		}

	default:
		return Config{}, fmt.Errorf("unsupported config format %s", format)
	}

	if e := cfg.Validate(); e != nil {
		return Config{}, e
	}
	return cfg, nil
}

// Validate checks settings consistency.
func (c Config) Validate() error {
	if c.MaxTerms < 0 {
		return fmt.Errorf("max_terms must not be negative, got %d", c.MaxTerms)
	}
	if strings.TrimSpace(c.Selector) == "" {
		return errors.New("selector must not be empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	_, e := c.BuildAlphabet()
	return e
}

// BuildAlphabet returns alphabet.Default if no overrides are set,
// otherwise builds new alphabet from overrides and default sets.
func (c Config) BuildAlphabet() (*alphabet.Alphabet, error) {
	a := c.Alphabet
	if len(a.Omissible) == 0 && len(a.Alternative) == 0 && a.Delimiters == "" {
		return alphabet.Default(), nil
	}

	def := alphabet.DefaultDef
	var e error
	if len(a.Omissible) > 0 {
		def.Omissible, e = alphabet.ParsePairs(a.Omissible)
		if e != nil {
			return nil, e
		}
	}
	if len(a.Alternative) > 0 {
		def.Alternative, e = alphabet.ParsePairs(a.Alternative)
		if e != nil {
			return nil, e
		}
	}
	if a.Delimiters != "" {
		def.Delimiters = a.Delimiters
	}
	return alphabet.New(def)
}
