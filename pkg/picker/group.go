package picker

import (
	"slices"

	"github.com/vango-dev/headless/pkg/reactive"
	"github.com/vango-dev/headless/pkg/vdom"
)

// Group is the handle a provider passes to its render function. Options can
// only be built from a Group, so every option is tied to a provider.
type Group struct {
	mode    Mode
	name    string
	id      string
	value   any
	current func() any
	commit  func(next any)
}

// Mode returns the selection mode.
func (g *Group) Mode() Mode {
	return g.mode
}

// IsMultiple reports whether the group allows several selected values.
func (g *Group) IsMultiple() bool {
	return g.mode == ModeMultiple
}

// Name returns the form field name, or "".
func (g *Group) Name() string {
	return g.name
}

// ID returns an identifier unique to the provider instance.
func (g *Group) ID() string {
	return g.id
}

// Value returns the selected value of a single-selection group.
func (g *Group) Value() string {
	s, _ := g.value.(string)
	return s
}

// Values returns the selected values. A single-selection group returns at
// most one value.
func (g *Group) Values() []string {
	switch v := g.value.(type) {
	case []string:
		return slices.Clone(v)
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

// IsSelected reports whether option is selected.
func (g *Group) IsSelected(option string) bool {
	return IsSelected(option, g.value, g.mode)
}

// Select selects option in single mode or toggles it in multiple mode.
func (g *Group) Select(option string) {
	SelectOption(option, g.current(), g.mode, g.commit)
}

// Option describes one selectable option for a single render.
type Option struct {
	// Value identifies the option within its group.
	Value string
	// IsSelected reports whether the option was selected at render time.
	IsSelected bool
	// Select selects or toggles the option.
	Select func()
	// Name is the group's form field name.
	Name string
	// OptionType is "radio" for single and "checkbox" for multiple groups.
	OptionType string
	// ID is unique to the option instance.
	ID string
}

// Option returns the descriptor for value.
func (g *Group) Option(value string) Option {
	return Option{
		Value:      value,
		IsSelected: g.IsSelected(value),
		Select:     func() { g.Select(value) },
		Name:       g.name,
		OptionType: g.mode.OptionType(),
		ID:         g.id + "-" + value,
	}
}

// Selector returns a component that renders the option for value with
// render. Selectors are keyed by value.
func (g *Group) Selector(value string, render func(opt Option) *vdom.VNode) reactive.Func {
	return reactive.New("picker.Selector", func(o *reactive.Owner) *vdom.VNode {
		return render(g.Option(value))
	}).Keyed(value)
}
