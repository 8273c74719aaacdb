// Command krrename renames corpus files to their canonical chapter names.
//
// It parses the 卷 heading of each Markdown file (e.g. 卷四十三之二) and
// moves the file to the matching NNN.md / NNN_SS.md name, never
// overwriting an existing file. --dry-run previews the renames.
package main

import (
	"fmt"
	"os"

	"github.com/backmassage/krtools/internal/check"
	"github.com/backmassage/krtools/internal/config"
	"github.com/backmassage/krtools/internal/logging"
	"github.com/backmassage/krtools/internal/rename"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultConfig()
	if err := config.LoadCorpusFile(config.CorpusFile, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "krrename: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(config.ToolRename, &cfg, os.Args[1:], version); err != nil {
		fmt.Fprintf(os.Stderr, "krrename: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "krrename: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "krrename: %v\n", err)
		return 1
	}
	defer log.Close()

	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		return 0
	}

	log.Info("=== krrename v%s ===", version)
	log.Info("Dir: %s", cfg.MdDir)
	log.Info("")

	// A missing source directory is the only fatal condition; per-file
	// problems are counted and reported in the summary instead.
	if _, err := rename.Run(&cfg, log); err != nil {
		return 1
	}
	return 0
}
