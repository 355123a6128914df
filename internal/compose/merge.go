package compose

import (
	"strings"
)

// mergedSection accumulates the distinct bodies contributed under one key.
type mergedSection struct {
	title  string
	level  int
	bodies []string
}

// Document is the result of merging fragments: sections in first-seen order,
// each with its distinct bodies in fragment order.
type Document struct {
	order    []string
	sections map[string]*mergedSection
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{sections: make(map[string]*mergedSection)}
}

// Add parses a fragment and folds its sections into d.
func (d *Document) Add(fragment string) {
	for _, s := range Parse(fragment).List() {
		key := s.Key()
		ms, ok := d.sections[key]
		if !ok {
			ms = &mergedSection{title: s.Title, level: s.Level}
			d.sections[key] = ms
			d.order = append(d.order, key)
		}
		if s.Body == "" || contains(ms.bodies, s.Body) {
			continue
		}
		ms.bodies = append(ms.bodies, s.Body)
	}
}

// Render writes the merged document: a heading, a blank line, then each body
// followed by a blank line. The result is trimmed.
func (d *Document) Render() string {
	var lines []string
	for _, key := range d.order {
		ms := d.sections[key]
		lines = append(lines, strings.Repeat("#", ms.level)+" "+ms.title, "")
		for _, body := range ms.bodies {
			lines = append(lines, body, "")
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Merge merges fragments in order and renders the result.
func Merge(fragments []string) string {
	doc := NewDocument()
	for _, f := range fragments {
		doc.Add(f)
	}
	return doc.Render()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
