// Package merge implements the catalog/content pair merge batch: discover
// corpus files, pair each odd-numbered catalog with the content file at
// the next sequence number, and write one merged file per complete pair.
package merge

import (
	"os"
	"path/filepath"

	"github.com/backmassage/krtools/internal/config"
	"github.com/backmassage/krtools/internal/document"
	"github.com/backmassage/krtools/internal/naming"
)

// Logger is the minimal logging interface needed by Run. Defined here
// (rather than importing the logging package) so that merge stays
// testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunStats tracks aggregate counters across a merge run.
type RunStats struct {
	Found    int // corpus files discovered
	Merged   int // pairs merged and written
	Unpaired int // catalogs with no content partner
	Failed   int // pairs that could not be read or written
}

// Run is the batch entry point. It discovers corpus files, merges every
// complete catalog/content pair into the output directory, and returns
// aggregate stats. Input files are never modified or deleted. A catalog
// without its partner is warned about and skipped; per-pair I/O errors are
// logged and do not abort the batch.
func Run(cfg *config.Config, log Logger) RunStats {
	var stats RunStats

	conv := naming.NewConvention(cfg.Prefix)
	entries, err := conv.Discover(cfg.MdDir)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return stats
	}
	stats.Found = len(entries)

	bySeq := make(map[int]string, len(entries))
	for _, e := range entries {
		bySeq[e.Seq] = e.Path
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		log.Error("Cannot create output directory %s: %v", cfg.OutDir, err)
		return stats
	}

	log.Info("Found %d corpus files", stats.Found)

	for _, e := range entries {
		if !naming.IsCatalog(e.Seq) {
			continue
		}
		contentPath, ok := bySeq[naming.PartnerSeq(e.Seq)]
		if !ok {
			log.Warn("No content file for %s", filepath.Base(e.Path))
			stats.Unpaired++
			continue
		}
		if err := mergePair(cfg, log, e.Path, contentPath, filepath.Join(cfg.OutDir, conv.FileName(e.Seq))); err != nil {
			log.Error("Merge failed for %s: %v", filepath.Base(e.Path), err)
			stats.Failed++
			continue
		}
		stats.Merged++
	}

	log.Info("")
	log.Success("Merged %d pairs into %s", stats.Merged, cfg.OutDir)
	return stats
}

// mergePair reads a complete pair, combines it, and writes the result.
func mergePair(cfg *config.Config, log Logger, catalogPath, contentPath, outPath string) error {
	catalog, err := document.Read(catalogPath)
	if err != nil {
		return err
	}
	content, err := document.Read(contentPath)
	if err != nil {
		return err
	}

	log.Info("Merging %s + %s", filepath.Base(catalogPath), filepath.Base(contentPath))
	if cfg.Verbose {
		if m, err := catalog.DecodeMeta(); err == nil && m.Title != "" {
			log.Debug(cfg.Verbose, "  title: %s", m.Title)
		}
	}

	return os.WriteFile(outPath, []byte(Merge(catalog, content)), 0o644)
}

// Merge combines a catalog document and its content partner. The merged
// frontmatter is the catalog's block when present, otherwise the
// content's, never a blend; when neither has one the result carries no
// fence at all. The merged body is the catalog body followed by the
// content body, separated by a single line break, so catalog material
// stays ahead of content material.
func Merge(catalog, content document.Document) string {
	body := catalog.Body + "\n" + content.Body
	switch {
	case catalog.HasMeta:
		return document.Wrap(catalog.Meta, body)
	case content.HasMeta:
		return document.Wrap(content.Meta, body)
	default:
		return body
	}
}
