package visibility

import (
	"github.com/vango-dev/headless/pkg/atom"
)

// NewKey creates a shared visibility key. Providers given the same key show
// and hide together. The key starts hidden.
func NewKey() *atom.Key[bool] {
	return newKey(false)
}

func newKey(def bool) *atom.Key[bool] {
	return atom.NewKey(def).Named("visibility")
}

// NewControlKey creates a shared key for ControlProvider. It holds the key of
// the provider currently shown under the controller, or nil.
func NewControlKey() *atom.Key[*atom.Key[bool]] {
	return atom.NewKey[*atom.Key[bool]](nil).
		Named("visibility.control").
		WithEquals(func(a, b *atom.Key[bool]) bool { return a == b })
}

// node is the state of one mounted provider that outlives its renders.
// Handles built during a render call into it, so event handlers always act
// on the latest state.
type node struct {
	parent *node
	key    *atom.Key[bool]

	current func() bool
	set     func(visible bool)

	// escapes counts the escape listeners mounted for this provider and its
	// descendants, by the provider they hide.
	escapes map[*node]int

	// links holds subscriptions to keys read by linked bindings.
	links      map[*atom.Key[bool]]func()
	invalidate func()
}

func newNode() *node {
	return &node{
		escapes: make(map[*node]int),
		links:   make(map[*atom.Key[bool]]func()),
	}
}

// watch subscribes the provider to a linked key so that bindings reading it
// re-render when it changes.
func (n *node) watch(store *atom.Store, key *atom.Key[bool]) {
	if _, ok := n.links[key]; ok || key == n.key {
		return
	}
	n.links[key] = atom.Subscribe(store, key, n.invalidate)
}

func (n *node) release() {
	for key, unsubscribe := range n.links {
		unsubscribe()
		delete(n.links, key)
	}
}

func (n *node) addEscape() {
	for a := n; a != nil; a = a.parent {
		a.escapes[n]++
	}
}

func (n *node) removeEscape() {
	for a := n; a != nil; a = a.parent {
		a.escapes[n]--
		if a.escapes[n] <= 0 {
			delete(a.escapes, n)
		}
	}
}

// escape hides the provider unless it is already hidden or a visible
// descendant with its own escape listener should close first.
func (n *node) escape() bool {
	if !n.current() {
		return false
	}
	for d := range n.escapes {
		if d != n && d.current() {
			return false
		}
	}
	n.set(false)
	return true
}
