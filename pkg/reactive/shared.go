package reactive

import "github.com/vango-dev/headless/pkg/atom"

// SharedHook resolves the key for a piece of shared state and reads it.
//
// Components that are given an explicit key share its cell with every other
// component given the same key. Components without one get a default key
// created once per mounted instance, so their state survives re-renders and
// starts over only when the instance remounts.
type SharedHook[T any] struct {
	newKey func() *atom.Key[T]
}

// NewSharedHook creates a SharedHook that builds default keys with newKey.
func NewSharedHook[T any](newKey func() *atom.Key[T]) *SharedHook[T] {
	return &SharedHook[T]{newKey: newKey}
}

// Use resolves explicit, or the instance's default key when explicit is nil,
// subscribes o to it and returns its state.
func (h *SharedHook[T]) Use(o *Owner, explicit *atom.Key[T]) State[T] {
	sub := useSubscription[T](o)

	key := explicit
	if key == nil {
		if sub.local == nil {
			sub.local = h.newKey()
		}
		key = sub.local
	}
	return read(o, sub, key)
}
