package compose

import (
	"regexp"
	"strconv"
	"strings"
)

var headingPattern = regexp.MustCompile(`^(#{1,2})\s+(.+)$`)

// Section is one heading-delimited unit of a fragment.
type Section struct {
	Title string
	Level int
	Body  string
}

// Key returns the identity used to merge sections across fragments.
func (s Section) Key() string {
	return strconv.Itoa(s.Level) + "-" + strings.ToLower(s.Title)
}

// Sections is an insertion-ordered mapping of section key to Section.
type Sections struct {
	order []string
	byKey map[string]Section
}

func newSections() *Sections {
	return &Sections{byKey: make(map[string]Section)}
}

// put stores s under its key. A repeated key replaces the earlier section but
// keeps its position.
func (ss *Sections) put(s Section) {
	key := s.Key()
	if _, ok := ss.byKey[key]; !ok {
		ss.order = append(ss.order, key)
	}
	ss.byKey[key] = s
}

// Len returns the number of distinct sections.
func (ss *Sections) Len() int { return len(ss.order) }

// List returns the sections in first-seen order.
func (ss *Sections) List() []Section {
	out := make([]Section, 0, len(ss.order))
	for _, key := range ss.order {
		out = append(out, ss.byKey[key])
	}
	return out
}

// Parse splits text into sections. Lines before the first heading are
// dropped. CRLF line endings are read as LF. Bodies are trimmed of
// surrounding whitespace.
func Parse(text string) *Sections {
	sections := newSections()

	var (
		current *Section
		body    []string
	)
	flush := func() {
		if current == nil {
			return
		}
		current.Body = strings.TrimSpace(strings.Join(body, "\n"))
		sections.put(*current)
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			flush()
			current = &Section{Title: m[2], Level: len(m[1])}
			body = nil
			continue
		}
		if current != nil {
			body = append(body, line)
		}
	}
	flush()

	return sections
}
