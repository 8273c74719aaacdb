// Package config holds runtime configuration: defaults, the optional
// corpus.yaml override file, CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// CorpusFile is the optional per-directory configuration file. Values in
// it override the built-in defaults and are in turn overridden by flags.
const CorpusFile = "corpus.yaml"

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overridden by [LoadCorpusFile], and then mutated by the
// per-tool flag parsers before being passed (by pointer) to packages that
// need it.
type Config struct {
	// Corpus layout.
	MdDir  string // Source directory of corpus files. Default: "md".
	OutDir string // Merge output directory. Default: "merged".
	Prefix string // Corpus filename prefix. Default: "KR3k0059".

	// Behavior flags.
	DryRun    bool // Report intended changes without applying them.
	CheckOnly bool // Run corpus diagnostics and exit.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config matching the original corpus layout:
// sources in "md", merge output in "merged", the KR3k0059 prefix.
func DefaultConfig() Config {
	return Config{
		MdDir:     "md",
		OutDir:    "merged",
		Prefix:    "KR3k0059",
		ColorMode: ColorAuto,
	}
}

// corpusFileValues mirrors the keys accepted in corpus.yaml. Only set keys
// override the defaults.
type corpusFileValues struct {
	Prefix string `yaml:"prefix"`
	MdDir  string `yaml:"md_dir"`
	OutDir string `yaml:"out_dir"`
}

// LoadCorpusFile applies overrides from the corpus file at path, if one
// exists. A missing file is not an error; a malformed one is.
func LoadCorpusFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var vals corpusFileValues
	if err := yaml.Unmarshal(data, &vals); err != nil {
		return fmt.Errorf("could not parse config file %s: %w", path, err)
	}

	if vals.Prefix != "" {
		cfg.Prefix = vals.Prefix
	}
	if vals.MdDir != "" {
		cfg.MdDir = vals.MdDir
	}
	if vals.OutDir != "" {
		cfg.OutDir = vals.OutDir
	}
	return nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks the fields both tools rely on.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	if c.Prefix == "" {
		return errors.New("corpus prefix must not be empty")
	}
	if strings.ContainsAny(c.Prefix, "/\\") {
		return fmt.Errorf("corpus prefix %q must not contain path separators", c.Prefix)
	}
	if c.MdDir == "" {
		return errors.New("source directory must not be empty")
	}
	return nil
}

// ValidateMerge additionally checks the merge output directory. Writing
// merged files back into the source directory would overwrite catalog
// files, so the two must differ.
func (c *Config) ValidateMerge() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OutDir == "" {
		return errors.New("output directory must not be empty")
	}
	if NormalizeDirArg(c.OutDir) == NormalizeDirArg(c.MdDir) {
		return errors.New("output directory must differ from source directory")
	}
	return nil
}
