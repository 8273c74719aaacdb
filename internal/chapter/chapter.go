// Package chapter extracts a document's chapter reference (卷 volume, 之
// section) from its Markdown heading and formats the canonical filename
// derived from it.
package chapter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/backmassage/krtools/internal/zhnum"
)

// Ref is a document's position in the work: a volume number and an
// optional section number (卷N or 卷N之M). Two refs are equal only when
// both components match, including section presence.
type Ref struct {
	Volume     int
	Section    int
	HasSection bool
}

// Heading shapes, tried in order per heading; first form wins.
//
//	卷四十三之二 ...   volume + section, trailing text allowed
//	卷三目録          volume only, optional 目録 suffix, nothing else
var (
	reVolumeSection = regexp.MustCompile(`^卷([一二三四五六七八九十百]+)之([一二三四五六七八九十百]+)`)
	reVolumeOnly    = regexp.MustCompile(`^卷([一二三四五六七八九十百]+)(?:目録)?$`)
)

var md = goldmark.New()

// Parse scans body's level-1 headings in document order and returns the
// chapter reference of the first heading matching either shape. The
// volume+section form is tried before the volume-only form on every
// heading, and scanning stops at the first match. ok is false when no
// heading in the document matches; callers treat that as "skip", not as
// an error.
func Parse(body string) (ref Ref, ok bool) {
	src := []byte(body)
	doc := md.Parser().Parse(text.NewReader(src))

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, isHeading := n.(*ast.Heading)
		if !isHeading || h.Level != 1 {
			continue
		}
		title := strings.TrimSpace(string(h.Text(src)))

		if m := reVolumeSection.FindStringSubmatch(title); m != nil {
			return Ref{
				Volume:     zhnum.Convert(m[1]),
				Section:    zhnum.Convert(m[2]),
				HasSection: true,
			}, true
		}
		if m := reVolumeOnly.FindStringSubmatch(title); m != nil {
			return Ref{Volume: zhnum.Convert(m[1])}, true
		}
	}
	return Ref{}, false
}

// FileBase returns the canonical filename stem: volume zero-padded to 3
// digits, plus "_SS" when a section is present (003, 043_02, 106_12).
func (r Ref) FileBase() string {
	if r.HasSection {
		return fmt.Sprintf("%03d_%02d", r.Volume, r.Section)
	}
	return fmt.Sprintf("%03d", r.Volume)
}

// Label returns the human-readable form used in status lines: 卷43 or 卷43之2.
func (r Ref) Label() string {
	if r.HasSection {
		return fmt.Sprintf("卷%d之%d", r.Volume, r.Section)
	}
	return fmt.Sprintf("卷%d", r.Volume)
}
