// Package document handles reading corpus files and separating the YAML
// frontmatter block from the Markdown body.
package document

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
)

// Document is one corpus file in memory. Meta is the raw frontmatter text
// without the fence lines; HasMeta distinguishes an absent block from a
// present-but-empty one.
type Document struct {
	Path    string
	Meta    string
	HasMeta bool
	Body    string
}

// reFrontmatter matches a document that starts with a fenced metadata
// block: opening --- line, block content (may span lines, may be empty),
// closing --- line, then the body (may be empty).
var reFrontmatter = regexp.MustCompile(`(?s)^---\n(.*?)\n---\n(.*)$`)

// Split separates a fenced frontmatter block from the body. When text does
// not begin with the fence structure, it returns ("", text, false) and the
// whole text is the body. The metadata content is returned byte-for-byte,
// so Wrap(Split(text)) reproduces the original document.
func Split(text string) (meta, body string, ok bool) {
	m := reFrontmatter.FindStringSubmatch(text)
	if m == nil {
		return "", text, false
	}
	return m[1], m[2], true
}

// Wrap re-fences a metadata block above a body. It is the inverse of Split
// for documents that carry frontmatter.
func Wrap(meta, body string) string {
	return "---\n" + meta + "\n---\n" + body
}

// Read loads a corpus file and splits it.
func Read(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	meta, body, ok := Split(string(data))
	return Document{Path: path, Meta: meta, HasMeta: ok, Body: body}, nil
}

// Meta is the decoded frontmatter. The corpus carries at least a title;
// anything else lands in Extra.
type Meta struct {
	Title string         `yaml:"title"`
	Date  string         `yaml:"date"`
	Extra map[string]any `yaml:",inline"`
}

// DecodeMeta parses the document's frontmatter into a Meta. A document
// without frontmatter decodes to the zero Meta without error.
func (d Document) DecodeMeta() (Meta, error) {
	var m Meta
	if !d.HasMeta {
		return m, nil
	}
	if _, err := frontmatter.Parse(strings.NewReader(Wrap(d.Meta, "")), &m); err != nil {
		return Meta{}, fmt.Errorf("decode frontmatter: %w", err)
	}
	return m, nil
}
