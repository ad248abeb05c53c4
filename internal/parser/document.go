package parser

import "iter"

// Section is an ordered set of key/value pairs.
// Keys are used verbatim: "config/name" is a single key, not a path.
type Section struct {
	keys   []string
	values map[string]Value
}

func newSection() *Section {
	return &Section{values: make(map[string]Value)}
}

// set stores v under key. An existing key keeps its position.
func (s *Section) set(key string, v Value) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = v
}

// merge copies every pair of other into s, last write wins.
func (s *Section) merge(other *Section) {
	for _, key := range other.keys {
		s.set(key, other.values[key])
	}
}

// Get returns the value stored under key.
func (s *Section) Get(key string) (Value, bool) {
	if s == nil {
		return Value{}, false
	}
	v, ok := s.values[key]
	return v, ok
}

// GetString returns the value under key if it is a String.
func (s *Section) GetString(key string) (string, bool) {
	v, ok := s.Get(key)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// Keys returns the keys in first-appearance order.
func (s *Section) Keys() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.keys...)
}

func (s *Section) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// All iterates over the pairs in first-appearance order.
func (s *Section) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if s == nil {
			return
		}
		for _, key := range s.keys {
			if !yield(key, s.values[key]) {
				return
			}
		}
	}
}

// Document is a parsed configuration file: sections in the order their
// header first appeared.
type Document struct {
	names    []string
	sections map[string]*Section
}

func newDocument() *Document {
	return &Document{sections: make(map[string]*Section)}
}

// section returns the named section, creating it on first sight.
func (d *Document) section(name string) *Section {
	s, ok := d.sections[name]
	if !ok {
		s = newSection()
		d.sections[name] = s
		d.names = append(d.names, name)
	}
	return s
}

// Section returns the named section.
func (d *Document) Section(name string) (*Section, bool) {
	if d == nil {
		return nil, false
	}
	s, ok := d.sections[name]
	return s, ok
}

// Lookup is shorthand for Section(section) followed by Get(key).
func (d *Document) Lookup(section, key string) (Value, bool) {
	s, ok := d.Section(section)
	if !ok {
		return Value{}, false
	}
	return s.Get(key)
}

// SectionNames returns the section names in first-appearance order.
func (d *Document) SectionNames() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.names...)
}

func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.names)
}

// All iterates over the sections in first-appearance order.
func (d *Document) All() iter.Seq2[string, *Section] {
	return func(yield func(string, *Section) bool) {
		if d == nil {
			return
		}
		for _, name := range d.names {
			if !yield(name, d.sections[name]) {
				return
			}
		}
	}
}
