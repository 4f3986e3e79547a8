package picker

import "github.com/vango-dev/headless/pkg/vdom"

// Option renderers. Each returns a render function for Group.Selector and
// reflects the selection through the state attribute of its role: buttons
// use aria-pressed, radios, checkboxes and switches use aria-checked or
// checked, listbox options use aria-selected.

// ButtonOption renders a toggle button.
func ButtonOption(label string) func(Option) *vdom.VNode {
	return func(opt Option) *vdom.VNode {
		return vdom.Button(
			vdom.Type("button"),
			vdom.AriaPressed(opt.IsSelected),
			vdom.AttrIf(opt.Name != "", vdom.Name(opt.Name)),
			vdom.Value(opt.Value),
			vdom.OnClick(opt.Select),
			label,
		)
	}
}

// InputOption renders a native radio or checkbox input inside its label.
func InputOption(label string) func(Option) *vdom.VNode {
	return func(opt Option) *vdom.VNode {
		return vdom.Label(
			vdom.Input(
				vdom.Type(opt.OptionType),
				vdom.Checked(opt.IsSelected),
				vdom.AttrIf(opt.Name != "", vdom.Name(opt.Name)),
				vdom.Value(opt.Value),
				vdom.OnClick(opt.Select),
			),
			label,
		)
	}
}

// InputButtonOption renders an input of type button showing label.
func InputButtonOption(label string) func(Option) *vdom.VNode {
	return func(opt Option) *vdom.VNode {
		return vdom.Input(
			vdom.Type("button"),
			vdom.AriaPressed(opt.IsSelected),
			vdom.AttrIf(opt.Name != "", vdom.Name(opt.Name)),
			vdom.Value(label),
			vdom.OnClick(opt.Select),
		)
	}
}

// RoleOption renders a focusable span with the radio or checkbox role.
// Space and Enter select it like a click.
func RoleOption(label string) func(Option) *vdom.VNode {
	return func(opt Option) *vdom.VNode {
		return vdom.Span(
			vdom.Role(opt.OptionType),
			vdom.AriaChecked(opt.IsSelected),
			vdom.AriaLabel(label),
			vdom.TabIndex(0),
			vdom.OnClick(opt.Select),
			vdom.OnKeyDown(activateOnKey(opt.Select)),
			label,
		)
	}
}

// ListboxOption renders a span with the option role. Wrap options in
// Listbox.
func ListboxOption(label string) func(Option) *vdom.VNode {
	return func(opt Option) *vdom.VNode {
		return vdom.Span(
			vdom.Role("option"),
			vdom.AriaSelected(opt.IsSelected),
			vdom.AriaLabel(label),
			vdom.TabIndex(0),
			vdom.OnClick(opt.Select),
			vdom.OnKeyDown(activateOnKey(opt.Select)),
			label,
		)
	}
}

// Listbox renders the vertical listbox container for ListboxOption.
func Listbox(g *Group, children ...any) *vdom.VNode {
	args := []any{
		vdom.Role("listbox"),
		vdom.AriaOrientation("vertical"),
		vdom.AttrIf(g.IsMultiple(), vdom.RawAttr("aria-multiselectable", "true")),
	}
	return vdom.Div(append(args, children...)...)
}

// SwitchOption renders a labelled switch button with Off and On faces.
func SwitchOption(label string) func(Option) *vdom.VNode {
	return func(opt Option) *vdom.VNode {
		return vdom.Label(
			vdom.Div(label),
			vdom.Button(
				vdom.Role("switch"),
				vdom.AriaChecked(opt.IsSelected),
				vdom.TabIndex(0),
				vdom.OnClick(opt.Select),
				vdom.Span("Off"),
				vdom.Span("On"),
			),
		)
	}
}

func activateOnKey(fn func()) func(vdom.Event) {
	return func(ev vdom.Event) {
		if ev.Key == " " || ev.Key == "Enter" {
			fn()
		}
	}
}
