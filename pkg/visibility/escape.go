package visibility

import (
	"github.com/vango-dev/headless/pkg/reactive"
	"github.com/vango-dev/headless/pkg/vdom"
)

// HideOnEscape hides h's provider when Escape is pressed while the provider
// is visible. It renders nothing.
//
// With nested providers each listening for Escape, one key press hides only
// the innermost visible one.
func HideOnEscape(h *Handle) reactive.Func {
	return reactive.New("visibility.HideOnEscape", func(o *reactive.Owner) *vdom.VNode {
		ref := reactive.UseRef(o, h.n)
		ref.Set(h.n)

		reactive.OnMount(o, func() func() {
			n := ref.Current()
			n.addEscape()
			remove := o.Root().AddDocumentListener("keydown", func(ev vdom.Event) bool {
				return ev.Key == "Escape" && ref.Current().escape()
			})
			return func() {
				remove()
				n.removeEscape()
			}
		})
		return nil
	})
}
