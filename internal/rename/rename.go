// Package rename implements the chapter-based rename batch: parse each
// document's chapter heading and move the file to its canonical
// NNN.md / NNN_SS.md name.
package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/krtools/internal/chapter"
	"github.com/backmassage/krtools/internal/config"
	"github.com/backmassage/krtools/internal/document"
)

// Logger is the minimal logging interface needed by Run. Defined here
// (rather than importing the logging package) so that rename stays
// testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunStats tracks aggregate counters across a rename run.
type RunStats struct {
	Found   int // markdown files discovered
	Renamed int // renamed (or would-rename under dry-run)
	Skipped int // no chapter heading, or already correctly named
	Failed  int // target occupied or per-file I/O error
}

// Run is the batch entry point. Every .md file in cfg.MdDir is considered,
// so files already carrying their canonical name are recognized and
// reported as already correct, which makes a second run over a renamed
// corpus a no-op. A missing source directory is the only fatal condition;
// every per-file problem is logged, counted, and skipped over.
func Run(cfg *config.Config, log Logger) (RunStats, error) {
	var stats RunStats

	files, err := discoverMarkdown(cfg.MdDir)
	if err != nil {
		log.Error("Directory not found: %s", cfg.MdDir)
		return stats, fmt.Errorf("source directory %s: %w", cfg.MdDir, err)
	}
	stats.Found = len(files)

	log.Info("Found %d files", stats.Found)
	if cfg.DryRun {
		log.Warn("DRY RUN")
	}
	log.Info("")

	for _, path := range files {
		processFile(cfg, log, path, &stats)
	}

	log.Info("")
	log.Info("Renamed: %d  Skipped: %d  Failed: %d", stats.Renamed, stats.Skipped, stats.Failed)
	if cfg.DryRun {
		log.Warn("Dry run only; no files were renamed")
	}
	return stats, nil
}

// processFile handles one file: read, parse the chapter heading, compute
// the target name, and apply the rename policy.
func processFile(cfg *config.Config, log Logger, path string, stats *RunStats) {
	basename := filepath.Base(path)

	doc, err := document.Read(path)
	if err != nil {
		log.Error("Cannot read %s: %v", basename, err)
		stats.Failed++
		return
	}

	ref, ok := chapter.Parse(doc.Body)
	if !ok {
		log.Warn("Skip %s: no chapter heading found", basename)
		stats.Skipped++
		return
	}

	target := ref.FileBase() + ".md"
	if basename == target {
		log.Debug(cfg.Verbose, "Skip %s: already correct", basename)
		stats.Skipped++
		return
	}

	targetPath := filepath.Join(filepath.Dir(path), target)
	if _, err := os.Stat(targetPath); err == nil {
		log.Error("Conflict %s -> %s: target already exists", basename, target)
		stats.Failed++
		return
	}

	if cfg.DryRun {
		log.Success("[DRY] %s -> %s (%s)", basename, target, ref.Label())
		stats.Renamed++
		return
	}

	if err := os.Rename(path, targetPath); err != nil {
		log.Error("Rename %s -> %s failed: %v", basename, target, err)
		stats.Failed++
		return
	}
	log.Success("%s -> %s (%s)", basename, target, ref.Label())
	stats.Renamed++
}

// discoverMarkdown lists the .md files directly in dir, sorted by name for
// deterministic processing order.
func discoverMarkdown(dir string) ([]string, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, de := range des {
		if de.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(de.Name())) != ".md" {
			continue
		}
		files = append(files, filepath.Join(dir, de.Name()))
	}
	sort.Strings(files)
	return files, nil
}
