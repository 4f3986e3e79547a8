package reactive

import "fmt"

// contextKey gives each Context a distinct identity in owner values.
type contextKey struct {
	name string
}

// Context passes a typed value from an instance to its descendants.
type Context[T any] struct {
	key          *contextKey
	defaultValue T
}

// NewContext creates a context whose Use falls back to defaultValue.
func NewContext[T any](name string, defaultValue T) *Context[T] {
	return &Context[T]{
		key:          &contextKey{name: name},
		defaultValue: defaultValue,
	}
}

// Provide makes v visible to o and its descendants. Call it during render.
func (c *Context[T]) Provide(o *Owner, v T) {
	o.SetValue(c.key, v)
}

// Lookup returns the nearest provided value, starting at o.
func (c *Context[T]) Lookup(o *Owner) (T, bool) {
	if o == nil {
		return c.defaultValue, false
	}
	v, ok := o.GetValue(c.key)
	if !ok {
		return c.defaultValue, false
	}
	return v.(T), true
}

// Use returns the nearest provided value, or the default.
func (c *Context[T]) Use(o *Owner) T {
	v, _ := c.Lookup(o)
	return v
}

// MustUse returns the nearest provided value and panics if none exists.
func (c *Context[T]) MustUse(o *Owner) T {
	v, ok := c.Lookup(o)
	if !ok {
		panic(fmt.Sprintf("reactive: %s used outside of its provider (in %s)", c.key.name, o.Path()))
	}
	return v
}
