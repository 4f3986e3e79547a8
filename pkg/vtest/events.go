package vtest

import "github.com/vango-dev/headless/pkg/vdom"

// Click clicks el. The event bubbles through el's ancestors. Clicking inside
// a label that wraps an input also clicks the input. It reports whether any
// handler ran.
func (s *Screen) Click(el *Element) bool {
	if el == nil {
		return false
	}
	if el.Node.Tag != "input" {
		for _, n := range el.path {
			if n.Tag != "label" {
				continue
			}
			if input := firstInput(n); input != nil {
				return s.root.Bubble(vdom.PathTo(s.Tree(), input), vdom.Event{Type: "click"})
			}
			break
		}
	}
	return s.root.Bubble(el.path, vdom.Event{Type: "click"})
}

// Hover moves the pointer onto el, entering el and its ancestors.
func (s *Screen) Hover(el *Element) bool {
	if el == nil {
		return false
	}
	return s.root.Bubble(el.path, vdom.Event{Type: "mouseenter"})
}

// Unhover moves the pointer off el.
func (s *Screen) Unhover(el *Element) bool {
	if el == nil {
		return false
	}
	return s.root.Bubble(el.path, vdom.Event{Type: "mouseleave"})
}

// KeyDown presses key while el has focus.
func (s *Screen) KeyDown(el *Element, key string) bool {
	if el == nil {
		return false
	}
	return s.root.Bubble(el.path, vdom.Event{Type: "keydown", Key: key})
}

// Keyboard presses key with nothing focused, delivering it to document
// listeners.
func (s *Screen) Keyboard(key string) bool {
	return s.root.DispatchDocument(vdom.Event{Type: "keydown", Key: key})
}

func firstInput(n *vdom.VNode) *vdom.VNode {
	var found *vdom.VNode
	vdom.Walk(n, func(c *vdom.VNode) bool {
		if found != nil {
			return false
		}
		if c.Tag == "input" {
			found = c
			return false
		}
		return true
	})
	return found
}
