// Package parser reads Godot's INI-like configuration files
// (project.godot, export_presets.cfg) into an ordered, typed Document.
package parser

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// FormatError reports a line that is neither a section header nor a
// key/value pair, or a key/value pair that cannot be placed.
type FormatError struct {
	Line   int    // 1-based
	Text   string // the offending line as written
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

const (
	reasonMalformed    = "expected section header or key=value"
	reasonNoSection    = "key/value pair outside of a section"
	reasonUnterminated = "value continues past end of line"
)

var sectionPattern = regexp.MustCompile(`^\[([^\]]*)\]$`)

type options struct {
	multiline bool
	topLevel  *string
	logger    *slog.Logger
}

// Option configures Parse.
type Option func(*options)

// AllowMultiline lets a quoted string or bracketed value that is still open
// at the end of a line continue onto the following lines. Without it such a
// value is a FormatError.
func AllowMultiline() Option {
	return func(o *options) { o.multiline = true }
}

// TopLevelSection collects key/value pairs that appear before the first
// section header into the section called name instead of failing.
func TopLevelSection(name string) Option {
	return func(o *options) { o.topLevel = &name }
}

// WithLogger sets the logger used for debug output while parsing.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// cfgReader holds the state of a single Parse call.
type cfgReader struct {
	lines  []string
	pos    int // index of the next line to read
	opts   options
	logger *slog.Logger

	doc     *Document
	current *Section // nil until the first section header
}

// Parse reads text into a Document. The first malformed line aborts the
// parse; no partial document is returned.
func Parse(text string, opts ...Option) (*Document, error) {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	r := &cfgReader{
		lines:  strings.Split(text, "\n"),
		opts:   o,
		logger: o.logger,
		doc:    newDocument(),
	}

	for r.pos < len(r.lines) {
		if err := r.readLine(); err != nil {
			return nil, err
		}
	}

	r.logger.Debug("parsed document",
		"sections", r.doc.Len(),
		"lines", len(r.lines),
	)

	return r.doc, nil
}

// ParseGrouped parses text and groups its preset sections.
func ParseGrouped(text string, opts ...Option) (*Presets, error) {
	doc, err := Parse(text, opts...)
	if err != nil {
		return nil, err
	}
	return Group(doc), nil
}

func (r *cfgReader) readLine() error {
	lineNo := r.pos + 1
	raw := strings.TrimSuffix(r.lines[r.pos], "\r")
	r.pos++

	line := strings.TrimSpace(raw)
	if line == "" || line[0] == ';' || line[0] == '#' {
		return nil
	}

	if m := sectionPattern.FindStringSubmatch(line); m != nil {
		r.current = r.doc.section(m[1])
		return nil
	}

	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return &FormatError{Line: lineNo, Text: raw, Reason: reasonMalformed}
	}
	if r.current == nil && r.opts.topLevel != nil {
		r.current = r.doc.section(*r.opts.topLevel)
	}
	if r.current == nil {
		return &FormatError{Line: lineNo, Text: raw, Reason: reasonNoSection}
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	st := startValue(value)
	if st.open() {
		if !r.opts.multiline {
			return &FormatError{Line: lineNo, Text: raw, Reason: reasonUnterminated}
		}
		var err error
		if value, err = r.continueValue(value, &st, lineNo, raw); err != nil {
			return err
		}
	}

	r.current.set(key, ParseValue(value))
	return nil
}

// continueValue appends physical lines to value until the open string or
// constructor is closed.
func (r *cfgReader) continueValue(value string, st *scanState, lineNo int, raw string) (string, error) {
	var b strings.Builder
	b.WriteString(value)

	for st.open() {
		if r.pos >= len(r.lines) {
			return "", &FormatError{Line: lineNo, Text: raw, Reason: reasonUnterminated}
		}
		next := strings.TrimSuffix(r.lines[r.pos], "\r")
		r.pos++

		b.WriteByte('\n')
		b.WriteString(next)
		st.next(next)
	}

	r.logger.Debug("read multi-line value",
		"line", lineNo,
		"continued_lines", r.pos-lineNo,
	)

	return strings.TrimSpace(b.String()), nil
}

var constructorPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*\(`)

// scanState tracks whether a value continues on the next physical line.
// Only two shapes can: a quoted string whose closing quote is missing, and
// a constructor, array or dictionary whose brackets are unbalanced. Any
// other text is complete as written, quotes and backslashes included.
type scanState struct {
	str   bool // inside a quoted string value
	depth int  // open brackets of a constructor, array or dictionary

	// quote tracking inside brackets so "a)" does not close anything
	inQuote bool
	escaped bool
}

func startValue(value string) scanState {
	var s scanState
	switch {
	case strings.HasPrefix(value, `"`):
		s.str = len(value) < 2 || !strings.HasSuffix(value, `"`)
	case constructorPattern.MatchString(value),
		strings.HasPrefix(value, "["),
		strings.HasPrefix(value, "{"):
		s.scanBrackets(value)
	}
	return s
}

func (s *scanState) open() bool {
	return s.str || s.depth > 0
}

// next consumes a continuation line.
func (s *scanState) next(line string) {
	if s.str {
		s.str = !closesString(line)
		return
	}
	s.scanBrackets(line)
}

// closesString reports whether a continuation line ends a quoted string:
// it ends with a quote that is not escaped by a backslash.
func closesString(line string) bool {
	line = strings.TrimRight(line, " \t")
	if !strings.HasSuffix(line, `"`) {
		return false
	}
	backslashes := 0
	for i := len(line) - 2; i >= 0 && line[i] == '\\'; i-- {
		backslashes++
	}
	return backslashes%2 == 0
}

func (s *scanState) scanBrackets(text string) {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if s.inQuote {
			switch {
			case s.escaped:
				s.escaped = false
			case c == '\\':
				s.escaped = true
			case c == '"':
				s.inQuote = false
			}
			continue
		}

		switch c {
		case '"':
			s.inQuote = true
		case '(', '[', '{':
			s.depth++
		case ')', ']', '}':
			if s.depth > 0 {
				s.depth--
			}
		}
	}
}
