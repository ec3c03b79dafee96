// Package content holds the static patient-facing text shown next to the
// recovery timeline. None of it is derived from the recovery engine.
package content

import (
	"embed"
	"strings"
)

//go:embed docs/*.md
var docsFS embed.FS

type DocumentID string

const (
	DocumentEducation DocumentID = "education"
	DocumentWarnings  DocumentID = "warnings"
	DocumentWellness  DocumentID = "wellness"
)

type Document struct {
	ID       DocumentID
	Title    string
	Markdown string
}

var documentOrder = []DocumentID{DocumentEducation, DocumentWarnings, DocumentWellness}

// Lookup returns the embedded document with the given id.
func Lookup(id DocumentID) (Document, bool) {
	raw, err := docsFS.ReadFile("docs/" + string(id) + ".md")
	if err != nil {
		return Document{}, false
	}
	text := string(raw)
	return Document{ID: id, Title: markdownTitle(text, string(id)), Markdown: text}, true
}

// All returns every document in display order.
func All() []Document {
	out := make([]Document, 0, len(documentOrder))
	for _, id := range documentOrder {
		if doc, ok := Lookup(id); ok {
			out = append(out, doc)
		}
	}
	return out
}

// MustLookup is Lookup for ids known at compile time.
func MustLookup(id DocumentID) Document {
	doc, ok := Lookup(id)
	if !ok {
		panic("content: missing embedded document " + string(id))
	}
	return doc
}

func markdownTitle(text, fallback string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return fallback
}
