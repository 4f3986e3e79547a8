package visibility

import (
	"github.com/vango-dev/headless/pkg/atom"
	"github.com/vango-dev/headless/pkg/vdom"
)

// Handle is what a provider passes to its render function. Triggers,
// targets and content are built from it, so none of them can exist outside
// a provider.
type Handle struct {
	n       *node
	store   *atom.Store
	visible bool

	contentID string
	triggerID string
}

// IsVisible reports whether the provider is visible in this render.
func (h *Handle) IsVisible() bool {
	return h.visible
}

// Key returns the key holding the provider's state.
func (h *Handle) Key() *atom.Key[bool] {
	return h.n.key
}

// ContentID returns the id given to targets.
func (h *Handle) ContentID() string {
	return h.contentID
}

// TriggerID returns the id given to triggers.
func (h *Handle) TriggerID() string {
	return h.triggerID
}

// Show makes the provider visible.
func (h *Handle) Show() {
	h.n.set(true)
}

// Hide hides the provider.
func (h *Handle) Hide() {
	h.n.set(false)
}

// Toggle flips the provider's state.
func (h *Handle) Toggle() {
	h.n.set(!h.n.current())
}

// Binding is the state and the callbacks an element needs to act as a
// trigger or a target. Components that do not follow the Trigger and Target
// attribute conventions map a Binding onto their own props with Consume.
type Binding struct {
	IsVisible bool
	Show      func()
	Hide      func()
	Toggle    func()
	ContentID string
	TriggerID string
}

// Binding returns the binding for the provider's own state.
func (h *Handle) Binding() Binding {
	return Binding{
		IsVisible: h.visible,
		Show:      h.Show,
		Hide:      h.Hide,
		Toggle:    h.Toggle,
		ContentID: h.contentID,
		TriggerID: h.triggerID,
	}
}

// Consume renders translate with the provider's binding.
//
//	h.Consume(func(b visibility.Binding) *vdom.VNode {
//	    return vdom.Button(vdom.OnMouseEnter(b.Show), vdom.OnMouseLeave(b.Hide), "Hover me")
//	})
func (h *Handle) Consume(translate func(b Binding) *vdom.VNode) *vdom.VNode {
	return translate(h.Binding())
}

// linked returns a binding that reads and writes key instead of the
// provider's own state. Linked bindings carry no ids.
func (h *Handle) linked(key *atom.Key[bool]) Binding {
	h.n.watch(h.store, key)
	set := func(v bool) { atom.Set(h.store, key, v) }
	return Binding{
		IsVisible: atom.Get(h.store, key),
		Show:      func() { set(true) },
		Hide:      func() { set(false) },
		Toggle:    func() { atom.Update(h.store, key, func(v bool) bool { return !v }) },
	}
}

// Capability selects what Bind wires onto an element.
type Capability func(*binding)

type binding struct {
	trigger bool
	target  bool
	hover   bool
	linked  *atom.Key[bool]
}

// AsTrigger makes the element toggle the provider when clicked.
func AsTrigger() Capability {
	return func(b *binding) { b.trigger = true }
}

// AsTarget makes the element the governed content: it gets the content id
// and the hidden attribute while the provider is hidden.
func AsTarget() Capability {
	return func(b *binding) { b.target = true }
}

// OnHover makes a trigger show the provider on mouse enter and hide it on
// mouse leave instead of toggling on click.
func OnHover() Capability {
	return func(b *binding) {
		b.trigger = true
		b.hover = true
	}
}

// LinkedTo makes the element read and write key instead of the provider's
// own state, so a trigger in one tree can drive a provider in another.
func LinkedTo(key *atom.Key[bool]) Capability {
	return func(b *binding) { b.linked = key }
}

// Bind returns the attributes and handlers for an element with the given
// capabilities, to be passed to a vdom element constructor:
//
//	vdom.Div(vdom.Role("dialog"), h.Bind(visibility.AsTarget(), visibility.AsTrigger()), children)
func (h *Handle) Bind(caps ...Capability) []any {
	var opts binding
	for _, c := range caps {
		c(&opts)
	}

	b := h.Binding()
	if opts.linked != nil {
		b = h.linked(opts.linked)
	}

	var out []any
	if opts.target {
		out = append(out,
			vdom.AttrIf(b.ContentID != "", vdom.ID(b.ContentID)),
			vdom.AttrIf(b.TriggerID != "", vdom.AriaLabelledBy(b.TriggerID)),
			vdom.Hidden(!b.IsVisible),
		)
	}
	if opts.trigger {
		if !opts.target {
			out = append(out,
				vdom.AttrIf(b.TriggerID != "", vdom.ID(b.TriggerID)),
				vdom.AttrIf(b.ContentID != "", vdom.AriaControls(b.ContentID)),
				vdom.AriaExpanded(b.IsVisible),
			)
		}
		if opts.hover {
			out = append(out, vdom.OnMouseEnter(b.Show), vdom.OnMouseLeave(b.Hide))
		} else {
			out = append(out, vdom.OnClick(b.Toggle))
		}
	}
	return out
}

// Trigger binds an element as a trigger. See Bind.
func (h *Handle) Trigger(caps ...Capability) []any {
	return h.Bind(append([]Capability{AsTrigger()}, caps...)...)
}

// Target binds an element as a target. See Bind.
func (h *Handle) Target(caps ...Capability) []any {
	return h.Bind(append([]Capability{AsTarget()}, caps...)...)
}

// Content returns children while the provider is visible and nothing
// otherwise. Unlike a target, hidden content is removed from the tree and
// the components in it unmount.
func (h *Handle) Content(children ...any) *vdom.VNode {
	if !h.visible {
		return nil
	}
	return vdom.Fragment(children...)
}
