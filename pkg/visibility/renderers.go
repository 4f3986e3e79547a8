package visibility

import "github.com/vango-dev/headless/pkg/vdom"

// Region renders a target with the region role. It is named by the
// provider's trigger.
func Region(h *Handle, children ...any) *vdom.VNode {
	return vdom.Div(vdom.Role("region"), h.Target(), children)
}

// Dialog renders a modal overlay that is both target and trigger: clicking
// anywhere in it hides it.
func Dialog(h *Handle, children ...any) *vdom.VNode {
	return vdom.Div(
		vdom.Role("dialog"),
		vdom.AriaModal(true),
		h.Bind(AsTarget(), AsTrigger()),
		vdom.Div(vdom.Class("overlay"),
			vdom.Div(vdom.Class("content"), children),
		),
	)
}

// TriggerButton renders a button that triggers h's provider.
func TriggerButton(h *Handle, label string, caps ...Capability) *vdom.VNode {
	return vdom.Button(vdom.Type("button"), h.Trigger(caps...), label)
}
