// Package visibility implements headless show/hide regions.
//
// A Provider owns one boolean state and passes a *Handle to its render
// function. Triggers, targets and content are built from the handle:
//
//	visibility.Provider(visibility.Props{}, func(h *visibility.Handle) *vdom.VNode {
//	    return vdom.Div(
//	        visibility.TriggerButton(h, "Details"),
//	        visibility.Region(h, vdom.P("Revealed content")),
//	    )
//	})
//
// # Triggers, Targets and Content
//
// Bind returns the attributes and handlers for an element: a trigger toggles
// the state on click (or shows and hides it on hover with OnHover) and
// carries aria-controls and aria-expanded; a target carries the hidden
// attribute while the provider is hidden. Content goes further and removes
// its children from the tree, unmounting the components in it.
//
// Elements that need other props map a Binding onto them with Consume.
//
// # Sharing State
//
// Providers given the same ContextKey (see NewKey) show and hide together.
// A binding built with LinkedTo reads and writes another key, so a trigger
// in one tree can drive a provider in another.
//
// A provider nested in another provider resets to hidden whenever the outer
// provider is hidden.
//
// # Mutual Exclusion and Escape
//
// ControlProvider keeps at most one of the providers inside it visible and
// reports the key of the shown one. HideOnEscape hides its provider when
// Escape is pressed; when several nested providers listen, only the
// innermost visible one hides.
package visibility
