package vdom

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler any) EventHandler { return event("mouseenter", handler) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler any) EventHandler { return event("mouseleave", handler) }

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) EventHandler { return event("keydown", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) EventHandler { return event("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) EventHandler { return event("blur", handler) }

// On registers a handler for an arbitrary event name.
func On(name string, handler any) EventHandler { return event(name, handler) }

// Invoke calls handler with ev. Supported shapes are func() and func(Event);
// it reports whether the handler was callable.
func Invoke(handler any, ev Event) bool {
	switch h := handler.(type) {
	case func():
		h()
		return true
	case func(Event):
		h(ev)
		return true
	default:
		return false
	}
}
