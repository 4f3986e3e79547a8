// Package reactive is the component runtime behind the headless primitives.
//
// A Root mounts a Component against an injected *atom.Store. Components are
// plain render functions that receive an *Owner for their instance:
//
//	greeting := reactive.New("Greeting", func(o *reactive.Owner) *vdom.VNode {
//	    open := reactive.UseState(o, false)
//	    return vdom.Div(
//	        vdom.Button(vdom.OnClick(func() { open.Set(!open.Value) }), "Toggle"),
//	        vdom.If(open.Value, vdom.P("Hello")),
//	    )
//	})
//
//	root := reactive.NewRoot(atom.NewStore(), greeting)
//	tree := root.Mount()
//
// # Instances
//
// Component nodes found in a rendered tree are expanded recursively. An
// instance is matched across renders by its parent, its component name and
// its position among same-named siblings, or by an explicit key set with
// Func.Keyed. Instances that are not rendered in a pass are unmounted and
// their cleanups run.
//
// # Hooks
//
// Hooks store per-instance state in hook slots and must be called in the
// same order on every render: UseState, UseAtom, UseRef, UseID, OnMount and
// OnCleanup. SharedHook resolves either an explicit shared key or a default
// key created once per instance.
//
// # Rendering
//
// Reading a key subscribes the instance. Writing a key marks the Root dirty,
// and the Root re-renders after the event handler returns, until no further
// writes happen or DefaultMaxPasses is reached.
package reactive
