package picker

import (
	"github.com/vango-dev/headless/pkg/atom"
	"github.com/vango-dev/headless/pkg/form"
	"github.com/vango-dev/headless/pkg/reactive"
	"github.com/vango-dev/headless/pkg/vdom"
)

// Props configures a picker provider.
//
// With both Value and OnChange set the provider is controlled: it renders
// Value and reports selections through OnChange without holding state.
// Otherwise it holds its selection in ContextKey, or in a key created per
// instance, starting from DefaultValue; OnChange, when set, is still told
// about every selection.
type Props[T any] struct {
	Value        *T
	OnChange     func(T)
	Name         string
	DefaultValue T
	ContextKey   *atom.Key[T]
}

// SingleProps configures a single-selection provider.
type SingleProps = Props[string]

// MultipleProps configures a multiple-selection provider.
type MultipleProps = Props[[]string]

// Single renders a single-selection picker. render receives the group and
// builds the options with Group.Selector.
func Single(props SingleProps, render func(g *Group) *vdom.VNode) reactive.Func {
	return reactive.New("picker.Single", func(o *reactive.Owner) *vdom.VNode {
		f := form.Scope.Use(o)
		if f != nil && props.Name != "" {
			if v := f.String(props.Name); v != "" {
				props.DefaultValue = v
			}
		}
		return render(provide(o, f, props, ModeSingle, newSingleKey))
	})
}

// Multiple renders a multiple-selection picker. render receives the group
// and builds the options with Group.Selector.
func Multiple(props MultipleProps, render func(g *Group) *vdom.VNode) reactive.Func {
	return reactive.New("picker.Multiple", func(o *reactive.Owner) *vdom.VNode {
		f := form.Scope.Use(o)
		if f != nil && props.Name != "" {
			if v := f.Strings(props.Name); len(v) > 0 {
				props.DefaultValue = v
			}
		}
		return render(provide(o, f, props, ModeMultiple, newMultipleKey))
	})
}

// provide resolves the picker state for one render and builds its Group.
// The shared hook runs on every render so the hook order does not depend on
// whether the provider is controlled.
func provide[T any](o *reactive.Owner, f *form.Form, props Props[T], mode Mode, newKey func(T) *atom.Key[T]) *Group {
	hook := reactive.NewSharedHook(func() *atom.Key[T] { return newKey(props.DefaultValue) })
	st := hook.Use(o, props.ContextKey)

	g := &Group{
		mode: mode,
		name: props.Name,
		id:   reactive.UseID(o, "picker"),
	}

	if props.Value != nil && props.OnChange != nil {
		g.value = *props.Value
		g.current = func() any { return *props.Value }
		g.commit = func(next any) { props.OnChange(next.(T)) }
	} else {
		g.value = st.Value
		g.current = func() any { return st.Get() }
		g.commit = func(next any) {
			v := next.(T)
			st.Set(v)
			if props.OnChange != nil {
				props.OnChange(v)
			}
		}
	}

	registered := g.value
	reactive.OnMount(o, func() func() {
		if f == nil || props.Name == "" {
			return nil
		}
		return f.Register(props.Name, registered, mode == ModeMultiple)
	})
	if f != nil && props.Name != "" {
		commit := g.commit
		g.commit = func(next any) {
			commit(next)
			f.Set(props.Name, next)
		}
	}

	return g
}
