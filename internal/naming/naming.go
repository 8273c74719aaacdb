// Package naming implements the corpus filename convention
// <prefix>_<NNN>.md (NNN a zero-padded sequence number) and discovery of
// convention-matching files.
//
// Odd sequence numbers are catalog files, even numbers are the matching
// content files; a catalog's partner is always at NNN+1.
package naming

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// seqWidth is the zero-padding of sequence numbers in output names.
const seqWidth = 3

// Convention binds a corpus prefix to its filename pattern.
type Convention struct {
	Prefix  string
	pattern *regexp.Regexp
}

// NewConvention builds the convention for prefix (e.g. "KR3k0059").
func NewConvention(prefix string) *Convention {
	return &Convention{
		Prefix:  prefix,
		pattern: regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `_(\d+)\.md$`),
	}
}

// ParseSeq extracts the sequence number from a basename. ok is false when
// the name does not follow the convention.
func (c *Convention) ParseSeq(basename string) (seq int, ok bool) {
	m := c.pattern.FindStringSubmatch(basename)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// FileName returns the canonical basename for a sequence number,
// e.g. FileName(7) = "KR3k0059_007.md".
func (c *Convention) FileName(seq int) string {
	return c.Prefix + "_" + pad(seq) + ".md"
}

func pad(n int) string {
	s := strconv.Itoa(n)
	for len(s) < seqWidth {
		s = "0" + s
	}
	return s
}

// IsCatalog reports whether seq numbers a catalog file (odd).
func IsCatalog(seq int) bool { return seq%2 == 1 }

// PartnerSeq returns the sequence number of a catalog's content file.
func PartnerSeq(catalogSeq int) int { return catalogSeq + 1 }

// Entry is one discovered corpus file.
type Entry struct {
	Seq  int
	Path string
}

// Discover lists the files in dir that follow the convention, sorted by
// sequence number for deterministic processing order. Non-matching files
// are ignored.
func (c *Convention) Discover(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, de := range des {
		if de.IsDir() {
			continue
		}
		seq, ok := c.ParseSeq(de.Name())
		if !ok {
			continue
		}
		entries = append(entries, Entry{Seq: seq, Path: filepath.Join(dir, de.Name())})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Seq < entries[j].Seq })
	return entries, nil
}
