package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cast"

	"github.com/dudasaus/godot-compile/internal/parser"
)

var (
	ErrInvalidSelection = errors.New("invalid index")
	ErrUnknownPreset    = errors.New("unknown preset")
	ErrNoPresets        = errors.New("no export presets configured")
)

// Prompter asks questions on a terminal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ask prints question and returns the trimmed answer. EOF counts as an
// empty answer.
func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprintf(p.out, "%s ", question)

	answer, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(answer), nil
}

// Confirm asks a yes/no question, defaulting to no.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.ask(question + " [y/N]")
	if err != nil {
		return false, err
	}
	return lo.Contains([]string{"y", "yes"}, strings.ToLower(answer)), nil
}

// ChoosePresets lists presets as "0 all" followed by one numbered line per
// preset and asks which to export.
func (p *Prompter) ChoosePresets(presets []*parser.Preset) ([]*parser.Preset, error) {
	if len(presets) == 0 {
		return nil, ErrNoPresets
	}

	fmt.Fprintln(p.out, 0, "all")
	for i, preset := range presets {
		fmt.Fprintln(p.out, i+1, displayName(preset))
	}

	answer, err := p.ask("Which index should we compile?")
	if err != nil {
		return nil, err
	}

	index, ok := parseIndex(answer)
	if !ok || index < 0 || index > len(presets) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSelection, answer)
	}
	if index == 0 {
		return presets, nil
	}
	return []*parser.Preset{presets[index-1]}, nil
}

// SelectPresets resolves choices given on the command line. A choice is
// "all" (or 0), a 1-based index as listed by ChoosePresets, or a preset name.
// Each preset is returned once, in file order.
func SelectPresets(presets []*parser.Preset, choices []string) ([]*parser.Preset, error) {
	if len(presets) == 0 {
		return nil, ErrNoPresets
	}

	selected := map[string]bool{}
	for _, choice := range choices {
		choice = strings.TrimSpace(choice)
		if choice == "" {
			continue
		}

		index, isIndex := parseIndex(choice)
		if strings.EqualFold(choice, "all") || (isIndex && index == 0) {
			return presets, nil
		}

		if isIndex {
			if index < 1 || index > len(presets) {
				return nil, fmt.Errorf("%w: %d", ErrInvalidSelection, index)
			}
			selected[presets[index-1].Index] = true
			continue
		}

		match, ok := lo.Find(presets, func(p *parser.Preset) bool {
			name, _ := p.Name()
			return name == choice
		})
		if !ok {
			return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownPreset, choice,
				strings.Join(lo.Map(presets, func(p *parser.Preset, _ int) string {
					return displayName(p)
				}), ", "))
		}
		selected[match.Index] = true
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: no presets selected", ErrInvalidSelection)
	}

	return lo.Filter(presets, func(p *parser.Preset, _ int) bool {
		return selected[p.Index]
	}), nil
}

var indexPattern = regexp.MustCompile(`^-?[0-9]+$`)

// parseIndex reads a typed-in decimal index. Leading zeros do not switch
// to octal and base prefixes like 0x are not numbers.
func parseIndex(s string) (int, bool) {
	if !indexPattern.MatchString(s) {
		return 0, false
	}
	sign, digits := "", s
	if s[0] == '-' {
		sign, digits = "-", s[1:]
	}
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}

	index, err := cast.ToIntE(sign + digits)
	if err != nil {
		return 0, false
	}
	return index, true
}

func displayName(p *parser.Preset) string {
	if name, ok := p.Name(); ok {
		return name
	}
	return "preset." + p.Index
}
