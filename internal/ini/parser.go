package ini

import "strings"

type parseState int

const (
	stateNoSection parseState = iota
	stateInSection
	stateFailed // terminal
)

// parser consumes lines strictly in order and never looks back.
type parser struct {
	state    parseState
	status   Status
	current  string
	sections map[string]map[string]string
}

func newParser() *parser {
	return &parser{
		state:    stateNoSection,
		status:   StatusOK,
		sections: make(map[string]map[string]string),
	}
}

func (p *parser) store() *Store {
	return &Store{sections: p.sections, status: p.status}
}

// feed processes one physical line.
func (p *parser) feed(raw string) {
	if p.state == stateFailed {
		return
	}

	line := stripComment(strings.TrimSpace(raw))

	// Any line that starts with '[' once whitespace is gone is a header
	// line, well-formed or not, and never carries a key/value pair.
	if compact := stripAllSpace(line); strings.HasPrefix(compact, "[") {
		if name, ok := sectionName(compact); ok {
			p.current = name
			p.sections[name] = make(map[string]string)
			p.state = stateInSection
		}
		return
	}

	key, value, ok := splitPair(line)
	if !ok {
		return
	}

	switch p.state {
	case stateNoSection:
		p.status = StatusKeyValueOutsideSection
		p.state = stateFailed
	case stateInSection:
		p.sections[p.current][key] = value
	}
}

// stripComment cuts the line at the first ';' or '#'. There is no escaping.
func stripComment(line string) string {
	if i := strings.IndexAny(line, ";#"); i >= 0 {
		return line[:i]
	}
	return line
}

// sectionName extracts the text between the leading '[' and the first ']'.
func sectionName(compact string) (string, bool) {
	end := strings.IndexByte(compact, ']')
	if end < 0 {
		return "", false
	}
	name := compact[1:end]
	if name == "" {
		return "", false
	}
	return name, true
}

// splitPair splits at the first '='. Keys lose all whitespace; values are
// trimmed at both ends only.
func splitPair(line string) (key, value string, ok bool) {
	rawKey, rawValue, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = stripAllSpace(rawKey)
	value = strings.TrimSpace(rawValue)
	if key == "" || value == "" {
		return "", "", false
	}
	return key, value, true
}
