package picker

import (
	"slices"

	"github.com/vango-dev/headless/pkg/atom"
)

// Mode selects single or multiple selection.
type Mode uint8

const (
	ModeSingle   Mode = iota // at most one value selected
	ModeMultiple             // any number of values selected
)

// String returns the string representation of the Mode.
func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeMultiple:
		return "multiple"
	default:
		return "unknown"
	}
}

// OptionType returns the input type that matches the mode.
func (m Mode) OptionType() string {
	if m == ModeMultiple {
		return "checkbox"
	}
	return "radio"
}

// NewSingleKey creates a shared key for a single-selection picker. Its
// default is "" (nothing selected).
func NewSingleKey() *atom.Key[string] {
	return newSingleKey("")
}

// NewMultipleKey creates a shared key for a multiple-selection picker. Its
// default is an empty selection.
func NewMultipleKey() *atom.Key[[]string] {
	return newMultipleKey(nil)
}

func newSingleKey(def string) *atom.Key[string] {
	return atom.NewKey(def).Named("picker.single")
}

func newMultipleKey(def []string) *atom.Key[[]string] {
	if def == nil {
		def = []string{}
	}
	return atom.NewKey(slices.Clone(def)).Named("picker.multiple")
}

// IsSelectedSingle reports whether option is the selected value.
func IsSelectedSingle(option, state string) bool {
	return state == option
}

// IsSelectedMultiple reports whether option is in the selection.
func IsSelectedMultiple(option string, state []string) bool {
	return slices.Contains(state, option)
}

// SelectSingle returns the state after selecting option. Selecting the
// already-selected option yields the same state.
func SelectSingle(option string) string {
	return option
}

// ToggleMultiple returns a new selection with option removed if present, or
// appended if absent. The order of the other values is preserved and state is
// never modified.
func ToggleMultiple(option string, state []string) []string {
	if i := slices.Index(state, option); i >= 0 {
		next := make([]string, 0, len(state)-1)
		next = append(next, state[:i]...)
		return append(next, state[i+1:]...)
	}
	next := make([]string, 0, len(state)+1)
	next = append(next, state...)
	return append(next, option)
}

// IsSelected reports whether option is selected in state, which must be a
// string in single mode and a []string in multiple mode.
func IsSelected(option string, state any, mode Mode) bool {
	switch mode {
	case ModeMultiple:
		s, _ := state.([]string)
		return IsSelectedMultiple(option, s)
	default:
		s, _ := state.(string)
		return IsSelectedSingle(option, s)
	}
}

// SelectOption computes the state after selecting option and always passes
// it to onChange, even when it equals the current state.
func SelectOption(option string, current any, mode Mode, onChange func(any)) {
	var next any
	switch mode {
	case ModeMultiple:
		s, _ := current.([]string)
		next = ToggleMultiple(option, s)
	default:
		next = SelectSingle(option)
	}
	if onChange != nil {
		onChange(next)
	}
}
