// Package vdom provides the virtual DOM used by the headless primitives.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments and components. Props holds attributes and event handlers.
// Attr and EventHandler are used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Button(Type("button"), AriaPressed(selected),
//	    Text("First"),
//	    OnClick(selectOption),
//	)
//
// ARIA state helpers (AriaChecked, AriaPressed, AriaSelected, AriaExpanded)
// always render an explicit "true"/"false" token, while Hidden and Checked
// are HTML boolean attributes that are omitted when false.
//
// # Hydration
//
// AssignHIDs walks an expanded tree and assigns hydration IDs to interactive
// elements. The gallery uses these IDs to route browser events back to the
// handler stored on the node.
package vdom
