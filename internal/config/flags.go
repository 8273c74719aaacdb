package config

// This file implements CLI flag parsing and help text for both tools.
// krmerge and krrename share the corpus flags; behavior flags differ per
// tool. Color override flags are applied after Parse so the Config default
// holds unless the user passes one.

import (
	"flag"
	"fmt"
	"os"
)

// Tool identifies which binary is parsing flags; it selects the flag set
// and the usage text.
type Tool string

const (
	ToolMerge  Tool = "krmerge"
	ToolRename Tool = "krrename"
)

// ParseFlags parses args (os.Args[1:]) into cfg for the given tool. On
// --help or --version it prints and exits. On error it returns non-nil
// (e.g. unknown flag or unexpected positional argument).
func ParseFlags(tool Tool, cfg *Config, args []string, version string) error {
	fs := flag.NewFlagSet(string(tool), flag.ContinueOnError)
	fs.Usage = func() { printUsage(tool, version) }

	// Color overrides are captured and applied after Parse so that the
	// default from DefaultConfig (or corpus.yaml) holds unless set.
	var forceColor, noColor, showVersion, showHelp bool

	fs.StringVar(&cfg.MdDir, "md-dir", cfg.MdDir, "Source directory of corpus files")
	fs.StringVar(&cfg.Prefix, "prefix", cfg.Prefix, "Corpus filename prefix")
	if tool == ToolMerge {
		fs.StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "Output directory for merged files")
	}
	if tool == ToolRename {
		fs.BoolVar(&cfg.DryRun, "dry-run", false, "Report intended renames without applying them")
		fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	}

	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run corpus diagnostics and exit")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored logs")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&showVersion, "V", false, "Same as --version")
	fs.BoolVar(&showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&showHelp, "h", false, "Same as --help")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if noColor {
		cfg.ColorMode = ColorNever
	} else if forceColor {
		cfg.ColorMode = ColorAlways
	}

	if showHelp {
		printUsage(tool, version)
		os.Exit(0)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, string(tool)+" v"+version)
		os.Exit(0)
	}

	if len(fs.Args()) != 0 {
		return fmt.Errorf("unexpected argument %q", fs.Args()[0])
	}

	cfg.MdDir = NormalizeDirArg(cfg.MdDir)
	cfg.OutDir = NormalizeDirArg(cfg.OutDir)
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(tool Tool, version string) {
	const col1 = 26 // width of "  -x, --long-name <arg>  "

	var lines []struct {
		flags string
		desc  string
	}
	add := func(flags, desc string) {
		lines = append(lines, struct {
			flags string
			desc  string
		}{flags, desc})
	}

	switch tool {
	case ToolMerge:
		add("", "krmerge v"+version+" — merge catalog/content file pairs")
		add("", "")
		add("  krmerge [OPTIONS]", "")
		add("", "")
		add("Corpus", "")
		add("  --md-dir <path>", "Source directory (default: md)")
		add("  --out-dir <path>", "Output directory (default: merged)")
		add("  --prefix <name>", "Corpus filename prefix (default: KR3k0059)")
	case ToolRename:
		add("", "krrename v"+version+" — rename corpus files by chapter heading")
		add("", "")
		add("  krrename [OPTIONS]", "")
		add("", "")
		add("Corpus", "")
		add("  --md-dir <path>", "Source directory (default: md)")
		add("  --prefix <name>", "Corpus filename prefix (default: KR3k0059)")
		add("", "")
		add("Behavior", "")
		add("  -d, --dry-run", "Report intended renames without applying them")
	}

	add("", "")
	add("Display & utility", "")
	add("  --check", "Run corpus diagnostics and exit")
	add("  -v, --verbose", "Verbose output")
	add("  --color / --no-color", "Force or disable colored logs")
	add("  --log <file>", "Append logs to file")
	add("  -V, --version", "Print version and exit")
	add("  -h, --help", "Show this help and exit")
	add("", "")
	add("", "Defaults may also be set in "+CorpusFile+" (keys: prefix, md_dir, out_dir).")

	for _, l := range lines {
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		fmt.Fprintf(os.Stderr, "%-*s%s\n", col1, l.flags, l.desc)
	}
}
