// Package check provides corpus diagnostics (--check mode): it scans the
// source directory and reports naming, pairing, frontmatter, and chapter
// heading problems without modifying anything.
package check

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/krtools/internal/chapter"
	"github.com/backmassage/krtools/internal/config"
	"github.com/backmassage/krtools/internal/document"
	"github.com/backmassage/krtools/internal/naming"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the informational --check flow over cfg.MdDir: file counts,
// names outside the corpus convention, catalogs missing their content
// partner, documents without frontmatter or a title, and documents without
// a recognizable chapter heading. It does not stop on findings and never
// mutates the corpus.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== Corpus Check ===")
	log.Info("Directory: %s", cfg.MdDir)
	log.Info("Prefix:    %s", cfg.Prefix)

	des, err := os.ReadDir(cfg.MdDir)
	if err != nil {
		log.Error("Cannot read directory: %v", err)
		return
	}

	conv := naming.NewConvention(cfg.Prefix)

	var markdown, conforming []string
	bySeq := map[int]string{}
	for _, de := range des {
		if de.IsDir() || strings.ToLower(filepath.Ext(de.Name())) != ".md" {
			continue
		}
		markdown = append(markdown, de.Name())
		if seq, ok := conv.ParseSeq(de.Name()); ok {
			conforming = append(conforming, de.Name())
			bySeq[seq] = de.Name()
		}
	}

	log.Info("Markdown files: %d (%d matching %s_NNN.md)", len(markdown), len(conforming), cfg.Prefix)

	checkStrayNames(cfg, log, markdown, conv)
	checkPairing(log, bySeq)
	checkDocuments(cfg, log, markdown)
}

// checkStrayNames warns about .md files that follow neither the corpus
// convention nor the canonical chapter name form.
func checkStrayNames(cfg *config.Config, log Logger, markdown []string, conv *naming.Convention) {
	for _, name := range markdown {
		if _, ok := conv.ParseSeq(name); ok {
			continue
		}
		if isCanonicalChapterName(name) {
			log.Debug(cfg.Verbose, "Already renamed: %s", name)
			continue
		}
		log.Warn("Unrecognized name: %s", name)
	}
}

// isCanonicalChapterName reports whether name looks like NNN.md or NNN_SS.md.
func isCanonicalChapterName(name string) bool {
	base := strings.TrimSuffix(name, ".md")
	if base == name {
		return false
	}
	parts := strings.Split(base, "_")
	if len(parts) > 2 {
		return false
	}
	if len(parts[0]) != 3 || !allDigits(parts[0]) {
		return false
	}
	if len(parts) == 2 && (len(parts[1]) != 2 || !allDigits(parts[1])) {
		return false
	}
	return true
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// checkPairing warns about catalog files whose content partner is missing.
func checkPairing(log Logger, bySeq map[int]string) {
	seqs := make([]int, 0, len(bySeq))
	for seq := range bySeq {
		seqs = append(seqs, seq)
	}
	sort.Ints(seqs)

	complete := 0
	for _, seq := range seqs {
		if !naming.IsCatalog(seq) {
			continue
		}
		if _, ok := bySeq[naming.PartnerSeq(seq)]; !ok {
			log.Warn("No content file for %s", bySeq[seq])
			continue
		}
		complete++
	}
	log.Success("Complete catalog/content pairs: %d", complete)
}

// checkDocuments opens each markdown file and reports missing frontmatter,
// missing titles, and missing chapter headings.
func checkDocuments(cfg *config.Config, log Logger, markdown []string) {
	noMeta, noTitle, noChapter := 0, 0, 0
	for _, name := range markdown {
		doc, err := document.Read(filepath.Join(cfg.MdDir, name))
		if err != nil {
			log.Error("Cannot read %s: %v", name, err)
			continue
		}

		if !doc.HasMeta {
			log.Debug(cfg.Verbose, "No frontmatter: %s", name)
			noMeta++
		} else if m, err := doc.DecodeMeta(); err != nil {
			log.Warn("Malformed frontmatter in %s: %v", name, err)
		} else if m.Title == "" {
			log.Debug(cfg.Verbose, "No title: %s", name)
			noTitle++
		}

		if _, ok := chapter.Parse(doc.Body); !ok {
			log.Debug(cfg.Verbose, "No chapter heading: %s", name)
			noChapter++
		}
	}

	if noMeta > 0 {
		log.Warn("Documents without frontmatter: %d", noMeta)
	}
	if noTitle > 0 {
		log.Warn("Documents without a title: %d", noTitle)
	}
	if noChapter > 0 {
		log.Warn("Documents without a chapter heading: %d", noChapter)
	} else {
		log.Success("Every document has a recognizable chapter heading")
	}
}
