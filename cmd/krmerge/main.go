// Command krmerge merges catalog/content file pairs of a corpus directory.
//
// Odd-numbered files hold a volume's table of contents, even-numbered files
// hold its body text; krmerge joins each complete pair into one file under
// the output directory, keeping a single frontmatter block.
package main

import (
	"fmt"
	"os"

	"github.com/backmassage/krtools/internal/check"
	"github.com/backmassage/krtools/internal/config"
	"github.com/backmassage/krtools/internal/logging"
	"github.com/backmassage/krtools/internal/merge"
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
	// Bootstrap: the logger doesn't exist yet, so errors go directly to
	// stderr via fmt. Once NewLogger succeeds, all output goes through
	// the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.LoadCorpusFile(config.CorpusFile, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "krmerge: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(config.ToolMerge, &cfg, os.Args[1:], version); err != nil {
		fmt.Fprintf(os.Stderr, "krmerge: %v\n", err)
		return 1
	}
	if err := cfg.ValidateMerge(); err != nil {
		fmt.Fprintf(os.Stderr, "krmerge: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "krmerge: %v\n", err)
		return 1
	}
	defer log.Close()

	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		return 0
	}

	log.Info("=== krmerge v%s ===", version)
	log.Info("In:  %s", cfg.MdDir)
	log.Info("Out: %s", cfg.OutDir)
	log.Info("")

	// Per-pair problems are handled inside the batch; the merge run
	// itself always completes.
	merge.Run(&cfg, log)
	return 0
}
