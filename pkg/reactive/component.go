package reactive

import (
	"fmt"

	"github.com/vango-dev/headless/pkg/vdom"
)

// Component is a vdom component the Root knows how to render. Each mounted
// instance receives its own Owner.
type Component interface {
	vdom.Component
	Render(o *Owner) *vdom.VNode
}

// keyed is implemented by components that carry an explicit instance key.
type keyed interface {
	InstanceKey() string
}

// Func adapts a render function to a Component.
type Func struct {
	name string
	key  string
	fn   func(o *Owner) *vdom.VNode
}

// New creates a component named name that renders with fn.
//
//	counter := reactive.New("Counter", func(o *reactive.Owner) *vdom.VNode {
//	    n := reactive.UseState(o, 0)
//	    return vdom.Button(vdom.OnClick(func() { n.Set(n.Value + 1) }), vdom.Textf("%d", n.Value))
//	})
func New(name string, fn func(o *Owner) *vdom.VNode) Func {
	return Func{name: name, fn: fn}
}

// Keyed returns a copy of f matched to its instance by key instead of by
// position.
func (f Func) Keyed(key any) Func {
	f.key = fmt.Sprintf("%v", key)
	return f
}

// ComponentName implements vdom.Component.
func (f Func) ComponentName() string {
	return f.name
}

// InstanceKey returns the explicit key, or "".
func (f Func) InstanceKey() string {
	return f.key
}

// Render implements Component.
func (f Func) Render(o *Owner) *vdom.VNode {
	if f.fn == nil {
		return nil
	}
	return f.fn(o)
}
