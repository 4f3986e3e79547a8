package vtest

import (
	"testing"

	"github.com/vango-dev/headless/pkg/vdom"
)

// query holds role query filters.
type query struct {
	name          *string
	checked       *bool
	pressed       *bool
	selected      *bool
	includeHidden bool
}

// QueryOption filters a role query.
type QueryOption func(*query)

// Name matches the exact accessible name.
func Name(name string) QueryOption {
	return func(q *query) { q.name = &name }
}

// Checked matches the checked state.
func Checked(checked bool) QueryOption {
	return func(q *query) { q.checked = &checked }
}

// Pressed matches the pressed state.
func Pressed(pressed bool) QueryOption {
	return func(q *query) { q.pressed = &pressed }
}

// Selected matches the selected state.
func Selected(selected bool) QueryOption {
	return func(q *query) { q.selected = &selected }
}

// IncludeHidden also matches elements inside hidden subtrees.
func IncludeHidden() QueryOption {
	return func(q *query) { q.includeHidden = true }
}

func (q *query) accepts(e *Element) bool {
	if e.hidden && !q.includeHidden {
		return false
	}
	if q.name != nil && e.Name != *q.name {
		return false
	}
	if q.checked != nil && e.IsChecked() != *q.checked {
		return false
	}
	if q.pressed != nil && e.IsPressed() != *q.pressed {
		return false
	}
	if q.selected != nil && e.IsSelected() != *q.selected {
		return false
	}
	return true
}

// QueryAllByRole returns every element with role that passes the filters.
// Hidden elements are excluded unless IncludeHidden is given.
func (s *Screen) QueryAllByRole(role string, opts ...QueryOption) []*Element {
	q := &query{}
	for _, opt := range opts {
		opt(q)
	}

	candidates := s.collect(func(n *vdom.VNode, _ []*vdom.VNode) bool {
		return roleOf(n) == role
	})
	out := candidates[:0]
	for _, e := range candidates {
		if q.accepts(e) {
			out = append(out, e)
		}
	}
	return out
}

// QueryByRole returns the first matching element, or nil.
func (s *Screen) QueryByRole(role string, opts ...QueryOption) *Element {
	if all := s.QueryAllByRole(role, opts...); len(all) > 0 {
		return all[0]
	}
	return nil
}

// GetByRole returns the only matching element and fails the test when there
// is not exactly one.
func (s *Screen) GetByRole(t testing.TB, role string, opts ...QueryOption) *Element {
	t.Helper()
	all := s.QueryAllByRole(role, opts...)
	if len(all) != 1 {
		t.Fatalf("expected one %q element, found %d in:\n%s", role, len(all), truncate(s.HTML(), 500))
	}
	return all[0]
}

// QueryAllByText returns every element whose own text equals text, hidden
// or not.
func (s *Screen) QueryAllByText(text string) []*Element {
	return s.collect(func(n *vdom.VNode, _ []*vdom.VNode) bool {
		return ownText(n) == text
	})
}

// QueryByText returns the first element whose own text equals text, or nil.
func (s *Screen) QueryByText(text string) *Element {
	if all := s.QueryAllByText(text); len(all) > 0 {
		return all[0]
	}
	return nil
}

// GetByText returns the only element whose own text equals text and fails
// the test otherwise.
func (s *Screen) GetByText(t testing.TB, text string) *Element {
	t.Helper()
	all := s.QueryAllByText(text)
	if len(all) != 1 {
		t.Fatalf("expected one element with text %q, found %d in:\n%s", text, len(all), truncate(s.HTML(), 500))
	}
	return all[0]
}

// QueryAllInteractive returns every element with an event handler, in
// document order. Hidden elements are excluded unless IncludeHidden is
// given.
func (s *Screen) QueryAllInteractive(opts ...QueryOption) []*Element {
	q := &query{}
	for _, opt := range opts {
		opt(q)
	}

	candidates := s.collect(func(n *vdom.VNode, _ []*vdom.VNode) bool {
		return n.IsInteractive()
	})
	out := candidates[:0]
	for _, e := range candidates {
		if q.accepts(e) {
			out = append(out, e)
		}
	}
	return out
}
