package visibility

import (
	"github.com/vango-dev/headless/pkg/atom"
	"github.com/vango-dev/headless/pkg/reactive"
	"github.com/vango-dev/headless/pkg/vdom"
)

// ControlProps configures a ControlProvider.
type ControlProps struct {
	// OnChange receives the key of the provider that was shown, or nil once
	// the shown provider hides.
	OnChange func(key *atom.Key[bool])
	// ContextKey shares the selection with other controllers given the same
	// key. See NewControlKey.
	ContextKey *atom.Key[*atom.Key[bool]]
}

// control tracks the providers registered under one ControlProvider.
type control struct {
	state    reactive.State[*atom.Key[bool]]
	onChange func(key *atom.Key[bool])
	members  map[*node]struct{}
}

var controlScope = reactive.NewContext[*control]("visibility.Control", nil)

// ControlProvider keeps at most one of the providers rendered inside it
// visible. Showing one hides every other registered provider.
func ControlProvider(props ControlProps, children ...any) reactive.Func {
	return reactive.New("visibility.ControlProvider", func(o *reactive.Owner) *vdom.VNode {
		hook := reactive.NewSharedHook(NewControlKey)
		st := hook.Use(o, props.ContextKey)

		ref := reactive.UseRef[*control](o, nil)
		if ref.Current() == nil {
			ref.Set(&control{members: make(map[*node]struct{})})
		}
		c := ref.Current()
		c.state = st
		c.onChange = props.OnChange

		controlScope.Provide(o, c)
		return vdom.Fragment(children...)
	})
}

// selected returns the key of the shown provider.
func (c *control) selected() *atom.Key[bool] {
	return c.state.Get()
}

func (c *control) has(n *node) bool {
	_, ok := c.members[n]
	return ok
}

func (c *control) register(n *node) (unregister func()) {
	c.members[n] = struct{}{}
	return func() {
		delete(c.members, n)
		c.hide(n)
	}
}

// show selects n and hides every other member. Members sharing n's key stay
// visible with it.
func (c *control) show(n *node) {
	c.commit(n.key)
	for m := range c.members {
		if m != n && m.key != n.key && m.current() {
			m.set(false)
		}
	}
}

// hide clears the selection if n holds it.
func (c *control) hide(n *node) {
	if c.selected() == n.key {
		c.commit(nil)
	}
}

func (c *control) commit(key *atom.Key[bool]) {
	if c.selected() == key {
		return
	}
	c.state.Set(key)
	if c.onChange != nil {
		c.onChange(key)
	}
}
