// Package picker implements headless single and multiple selection groups.
//
// A provider owns the selection and hands a *Group to its render function.
// Options are built from the group, so an option cannot exist outside a
// provider:
//
//	picker.Single(picker.SingleProps{}, func(g *picker.Group) *vdom.VNode {
//	    return vdom.Fieldset(
//	        g.Selector("first", picker.RoleOption("First")),
//	        g.Selector("second", picker.RoleOption("Second")),
//	    )
//	})
//
// # State
//
// Single groups hold a string ("" when nothing is selected). Selecting an
// option replaces the value, and OnChange is called even when the option
// was already selected. Multiple groups hold a []string in selection order.
// Selecting an option toggles it and always produces a new slice.
//
// Providers given Value and OnChange are controlled and hold no state.
// Otherwise the selection lives in ContextKey when set, so that several
// providers sharing a key (see NewSingleKey and NewMultipleKey) stay in sync,
// or in a key created for the provider instance.
//
// # Forms
//
// A provider with a Name inside form.Provider registers its value with the
// form when it mounts, takes its initial value from the form and updates the
// form on every selection.
package picker
