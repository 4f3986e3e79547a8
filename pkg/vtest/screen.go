package vtest

import (
	"fmt"
	"strings"

	"github.com/vango-dev/headless/pkg/atom"
	"github.com/vango-dev/headless/pkg/reactive"
	"github.com/vango-dev/headless/pkg/render"
	"github.com/vango-dev/headless/pkg/vdom"
)

// Screen is a mounted component tree queried the way a user perceives it:
// by role, accessible name and text.
type Screen struct {
	root *reactive.Root
}

// Mount mounts comp against a fresh store.
func Mount(comp reactive.Component, opts ...reactive.RootOption) *Screen {
	return MountWithStore(atom.NewStore(), comp, opts...)
}

// MountWithStore mounts comp against store, so several screens can share
// state.
func MountWithStore(store *atom.Store, comp reactive.Component, opts ...reactive.RootOption) *Screen {
	root := reactive.NewRoot(store, comp, opts...)
	root.Mount()
	return &Screen{root: root}
}

// Root returns the underlying Root.
func (s *Screen) Root() *reactive.Root {
	return s.root
}

// Store returns the store the screen is mounted against.
func (s *Screen) Store() *atom.Store {
	return s.root.Store()
}

// Tree returns the current rendered tree.
func (s *Screen) Tree() *vdom.VNode {
	return s.root.Tree()
}

// HTML renders the current tree.
func (s *Screen) HTML() string {
	return render.RenderToString(s.Tree())
}

// Rerender flushes pending updates, for state written outside an event.
func (s *Screen) Rerender() {
	s.root.Flush()
}

// Unmount disposes the tree.
func (s *Screen) Unmount() {
	s.root.Unmount()
}

// Element is an element found by a query. It is a snapshot of one render;
// query again after an event to observe the new state.
type Element struct {
	// Node is the element node.
	Node *vdom.VNode
	// Role is the explicit or implicit ARIA role, or "".
	Role string
	// Name is the accessible name.
	Name string

	path   []*vdom.VNode
	hidden bool
}

// Text returns the element's text content.
func (e *Element) Text() string {
	return vdom.TextContent(e.Node)
}

// Attr returns the attribute as a string, or "".
func (e *Element) Attr(name string) string {
	switch v := e.Node.Attr(name).(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return ""
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// IsChecked reports the checked state of radios, checkboxes and switches.
func (e *Element) IsChecked() bool {
	if e.Node.Tag == "input" {
		return e.Node.BoolAttr("checked")
	}
	return e.Node.StringAttr("aria-checked") == "true"
}

// IsPressed reports aria-pressed="true".
func (e *Element) IsPressed() bool {
	return e.Node.StringAttr("aria-pressed") == "true"
}

// IsSelected reports aria-selected="true".
func (e *Element) IsSelected() bool {
	return e.Node.StringAttr("aria-selected") == "true"
}

// IsVisible reports whether neither the element nor an ancestor is hidden.
func (e *Element) IsVisible() bool {
	return e != nil && !e.hidden
}

// InDocument reports whether the query found the element.
func (e *Element) InDocument() bool {
	return e != nil
}

// collect walks the tree and returns every element accepted by match, with
// its ancestor path and hidden state.
func (s *Screen) collect(match func(n *vdom.VNode, path []*vdom.VNode) bool) []*Element {
	tree := s.Tree()
	var out []*Element

	var visit func(n *vdom.VNode, ancestors []*vdom.VNode, hidden bool)
	visit = func(n *vdom.VNode, ancestors []*vdom.VNode, hidden bool) {
		if n == nil {
			return
		}
		hidden = hidden || isHiddenNode(n)

		path := make([]*vdom.VNode, 0, len(ancestors)+1)
		path = append(path, n)
		for i := len(ancestors) - 1; i >= 0; i-- {
			path = append(path, ancestors[i])
		}

		if n.Kind == vdom.KindElement && match(n, path) {
			role := roleOf(n)
			out = append(out, &Element{
				Node:   n,
				Role:   role,
				Name:   accessibleName(tree, path, role),
				path:   path,
				hidden: hidden,
			})
		}

		ancestors = append(ancestors, n)
		for _, child := range n.Children {
			visit(child, ancestors, hidden)
		}
	}
	visit(tree, nil, false)
	return out
}

// ownText joins the text nodes directly under n.
func ownText(n *vdom.VNode) string {
	var b strings.Builder
	for _, child := range n.Children {
		if child.Kind == vdom.KindText {
			b.WriteString(child.Text)
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
