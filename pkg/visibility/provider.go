package visibility

import (
	"github.com/vango-dev/headless/pkg/atom"
	"github.com/vango-dev/headless/pkg/reactive"
	"github.com/vango-dev/headless/pkg/vdom"
)

// Props configures a visibility provider.
//
// IsVisible, when set, seeds the state on mount and overwrites it whenever
// the prop changes between renders; in between, triggers may still change
// it. OnChange is told about every change to the state except those made
// through IsVisible, including writes by providers sharing the key and by
// linked bindings. ContextKey shares the state with every provider given the same
// key. DefaultVisible is the initial state of a provider without ContextKey.
type Props struct {
	IsVisible      *bool
	OnChange       func(visible bool)
	ContextKey     *atom.Key[bool]
	DefaultVisible bool
}

// scope carries the nearest enclosing provider's handle.
var scope = reactive.NewContext[*Handle]("visibility.Scope", nil)

// Provider renders a show/hide region. render receives the handle and wires
// triggers, targets and content with it.
//
// A provider nested inside another provider resets to hidden while the
// enclosing provider is hidden.
func Provider(props Props, render func(h *Handle) *vdom.VNode) reactive.Func {
	return reactive.New("visibility.Provider", func(o *reactive.Owner) *vdom.VNode {
		return render(provide(o, props))
	})
}

// provide resolves the provider state for one render and builds its Handle.
// Every hook runs on every render.
func provide(o *reactive.Owner, props Props) *Handle {
	parent := scope.Use(o.Parent())
	ctrl := controlScope.Use(o)

	hook := reactive.NewSharedHook(func() *atom.Key[bool] { return newKey(props.DefaultVisible) })
	st := hook.Use(o, props.ContextKey)

	ref := reactive.UseRef[*node](o, nil)
	if ref.Current() == nil {
		ref.Set(newNode())
	}
	n := ref.Current()
	synced := reactive.UseRef[*bool](o, nil)
	reported := reactive.UseRef[*bool](o, nil)
	id := reactive.UseID(o, "visibility")
	reactive.OnCleanup(o, n.release)

	if parent != nil {
		n.parent = parent.n
	}
	n.key = st.Key
	n.invalidate = o.Root().Invalidate
	n.current = st.Get
	n.set = func(next bool) {
		if st.Get() == next {
			return
		}
		if next && ctrl != nil {
			ctrl.show(n)
		}
		st.Set(next)
		if !next && ctrl != nil {
			ctrl.hide(n)
		}
		reported.Set(&next)
		if props.OnChange != nil {
			props.OnChange(next)
		}
	}

	// became is set when the provider turned visible without going through
	// n.set: by an IsVisible change, a provider sharing the key or a linked
	// binding.
	visible := st.Value
	became := false
	if props.IsVisible != nil {
		if last := synced.Current(); last == nil || *last != *props.IsVisible {
			v := *props.IsVisible
			synced.Set(&v)
			reported.Set(&v)
			if visible != v {
				st.Set(v)
				visible = v
				became = v
			}
		}
	}
	if visible && parent != nil && !parent.visible {
		n.set(false)
		visible = false
	}
	if last := reported.Current(); last == nil {
		v := visible
		reported.Set(&v)
	} else if *last != visible {
		v := visible
		reported.Set(&v)
		became = v
		if props.OnChange != nil {
			props.OnChange(v)
		}
	}

	if ctrl != nil {
		switch {
		case visible && became:
			if ctrl.has(n) {
				ctrl.show(n)
			}
		case visible:
			// The selection moved to a provider outside this controller.
			if sel := ctrl.selected(); sel != nil && sel != st.Key {
				n.set(false)
				visible = false
			}
		default:
			ctrl.hide(n)
		}
	}

	reactive.OnMount(o, func() func() {
		if ctrl == nil {
			return nil
		}
		unregister := ctrl.register(n)
		if n.current() {
			ctrl.show(n)
		}
		return unregister
	})

	h := &Handle{
		n:         n,
		store:     o.Store(),
		visible:   visible,
		contentID: id + "-content",
		triggerID: id + "-trigger",
	}
	scope.Provide(o, h)
	return h
}
