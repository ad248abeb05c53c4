package parser

import (
	"iter"
	"regexp"
)

var presetPattern = regexp.MustCompile(`^preset\.([0-9]+)(\.options)?$`)

// Preset is one export preset: the pairs under [preset.N] plus the
// [preset.N.options] section.
type Preset struct {
	Index   string
	Fields  *Section
	Options *Section // empty if the file has no options section
}

// Get returns a field of the base section.
func (p *Preset) Get(key string) (Value, bool) {
	return p.Fields.Get(key)
}

// Name returns the preset's name field.
func (p *Preset) Name() (string, bool) {
	return p.Fields.GetString("name")
}

// Platform returns the preset's target platform, e.g. "Windows Desktop".
func (p *Preset) Platform() (string, bool) {
	return p.Fields.GetString("platform")
}

// ExportPath returns the export path configured in the editor, if any.
func (p *Preset) ExportPath() (string, bool) {
	return p.Fields.GetString("export_path")
}

// Presets maps preset indices to presets, in the order each index first
// appeared in the source file.
type Presets struct {
	indices []string
	entries map[string]*Preset
}

func (ps *Presets) entry(index string) *Preset {
	p, ok := ps.entries[index]
	if !ok {
		p = &Preset{Index: index, Fields: newSection(), Options: newSection()}
		ps.entries[index] = p
		ps.indices = append(ps.indices, index)
	}
	return p
}

// Get returns the preset with the given index ("0", "1", ...).
func (ps *Presets) Get(index string) (*Preset, bool) {
	if ps == nil {
		return nil, false
	}
	p, ok := ps.entries[index]
	return p, ok
}

// Indices returns the preset indices in first-appearance order.
// They are not sorted numerically.
func (ps *Presets) Indices() []string {
	if ps == nil {
		return nil
	}
	return append([]string(nil), ps.indices...)
}

func (ps *Presets) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.indices)
}

// List returns the presets in first-appearance order.
func (ps *Presets) List() []*Preset {
	out := make([]*Preset, 0, ps.Len())
	for _, p := range ps.All() {
		out = append(out, p)
	}
	return out
}

// All iterates over index/preset pairs in first-appearance order.
func (ps *Presets) All() iter.Seq2[string, *Preset] {
	return func(yield func(string, *Preset) bool) {
		if ps == nil {
			return
		}
		for _, index := range ps.indices {
			if !yield(index, ps.entries[index]) {
				return
			}
		}
	}
}

// Group collects the preset.N and preset.N.options sections of doc into
// one Preset per index. Other sections are ignored. Repeated keys are
// merged last write wins.
func Group(doc *Document) *Presets {
	ps := &Presets{entries: make(map[string]*Preset)}

	for name, section := range doc.All() {
		m := presetPattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}

		p := ps.entry(m[1])
		if m[2] != "" {
			p.Options.merge(section)
		} else {
			p.Fields.merge(section)
		}
	}

	return ps
}
