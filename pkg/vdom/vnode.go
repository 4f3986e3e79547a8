package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component, expanded by the runtime
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes and event handlers
	Children []*VNode  // Child nodes
	Key      string    // Reconciliation key
	Text     string    // For KindText
	Comp     Component // For KindComponent
	HID      string    // Hydration ID (assigned before serving interactive HTML)
}

// Props holds attributes and event handlers.
type Props map[string]any

// IsInteractive returns true if this node has event handlers and needs a HID.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if strings.HasPrefix(key, "on") {
			return true
		}
	}
	return false
}

// Attr returns the attribute value for key, or nil.
func (v *VNode) Attr(key string) any {
	if v == nil || v.Props == nil {
		return nil
	}
	return v.Props[key]
}

// StringAttr returns the attribute for key as a string. Non-string values
// yield "".
func (v *VNode) StringAttr(key string) string {
	s, _ := v.Attr(key).(string)
	return s
}

// BoolAttr reports whether the attribute is present and truthy. Boolean
// attributes are stored as bool; ARIA state attributes may also be stored as
// the strings "true"/"false".
func (v *VNode) BoolAttr(key string) bool {
	switch val := v.Attr(key).(type) {
	case bool:
		return val
	case string:
		return val == "true"
	default:
		return false
	}
}

// Handler returns the event handler registered for event (e.g. "click").
func (v *VNode) Handler(event string) any {
	return v.Attr("on" + event)
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // func() or func(Event)
}

// Event is the payload delivered to func(Event) handlers.
type Event struct {
	Type string // "click", "keydown", ...
	Key  string // KeyboardEvent.key for keyboard events
}

// Component is a renderable unit that the runtime expands into VNodes.
// vdom only carries components; the reactive runtime decides how they are
// scoped and rendered.
type Component interface {
	// ComponentName identifies the component kind for instance reuse.
	ComponentName() string
}
