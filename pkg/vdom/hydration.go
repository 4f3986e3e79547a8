package vdom

import (
	"fmt"
	"sync"
)

// HIDGenerator generates unique hydration IDs for interactive elements.
type HIDGenerator struct {
	counter uint32
	mu      sync.Mutex
}

// NewHIDGenerator creates a new HIDGenerator.
func NewHIDGenerator() *HIDGenerator {
	return &HIDGenerator{}
}

// Next returns the next hydration ID (e.g., "h1", "h2", ...).
func (g *HIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("h%d", g.counter)
}

// Reset resets the counter to 0.
func (g *HIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter = 0
}

// AssignHIDs walks the tree and assigns HIDs to interactive elements.
// An element is interactive if it has event handlers (props starting with "on").
func AssignHIDs(node *VNode, gen *HIDGenerator) {
	Walk(node, func(n *VNode) bool {
		if n.IsInteractive() {
			n.HID = gen.Next()
		}
		return true
	})
}

// FindByHID finds a node by its HID in the tree.
func FindByHID(node *VNode, hid string) *VNode {
	var found *VNode
	Walk(node, func(n *VNode) bool {
		if found != nil {
			return false
		}
		if n.HID == hid {
			found = n
			return false
		}
		return true
	})
	return found
}

// CountInteractive returns the number of interactive elements in the tree.
func CountInteractive(node *VNode) int {
	count := 0
	Walk(node, func(n *VNode) bool {
		if n.IsInteractive() {
			count++
		}
		return true
	})
	return count
}
