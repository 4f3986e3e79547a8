package reactive

import (
	"fmt"

	"github.com/vango-dev/headless/pkg/atom"
)

// State is a value read from a key together with its setters.
type State[T any] struct {
	// Key is the resolved key backing the value.
	Key *atom.Key[T]
	// Value is the value at render time.
	Value T

	store *atom.Store
}

// Set writes v to the key. Every instance reading the key observes v on the
// next render pass.
func (s State[T]) Set(v T) {
	atom.Set(s.store, s.Key, v)
}

// Update applies fn to the current value of the key.
func (s State[T]) Update(fn func(T) T) {
	atom.Update(s.store, s.Key, fn)
}

// Get reads the current value of the key, which may be newer than Value
// inside an event handler.
func (s State[T]) Get() T {
	return atom.Get(s.store, s.Key)
}

// subscription tracks the key an instance is subscribed to in one hook slot.
type subscription[T any] struct {
	local       *atom.Key[T]
	key         *atom.Key[T]
	unsubscribe func()
}

func (s *subscription[T]) release() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.key = nil
}

// useSubscription returns the subscription stored in the current hook slot.
func useSubscription[T any](o *Owner) *subscription[T] {
	if slot := o.UseHookSlot(); slot != nil {
		return slot.(*subscription[T])
	}
	sub := &subscription[T]{}
	o.SetHookSlot(sub)
	o.OnCleanup(sub.release)
	return sub
}

// read subscribes o to key, replacing any previous key held by sub, and
// returns the state.
func read[T any](o *Owner, sub *subscription[T], key *atom.Key[T]) State[T] {
	if sub.key != key {
		sub.release()
		sub.key = key
		sub.unsubscribe = atom.Subscribe(o.Store(), key, o.root.Invalidate)
	}
	return State[T]{
		Key:   key,
		Value: atom.Get(o.Store(), key),
		store: o.Store(),
	}
}

// UseAtom reads key and re-renders when it changes.
func UseAtom[T any](o *Owner, key *atom.Key[T]) State[T] {
	return read(o, useSubscription[T](o), key)
}

// UseState holds a value private to the instance. The backing key is created
// on first render and lives until the instance unmounts.
func UseState[T any](o *Owner, initial T) State[T] {
	sub := useSubscription[T](o)
	if sub.local == nil {
		sub.local = atom.NewKey(initial)
	}
	return read(o, sub, sub.local)
}

// Ref holds a mutable value that survives re-renders without triggering them.
type Ref[T any] struct {
	value T
}

// Current returns the current value of the ref.
func (r *Ref[T]) Current() T {
	return r.value
}

// Set sets the ref's value.
func (r *Ref[T]) Set(value T) {
	r.value = value
}

// UseRef returns the instance's ref, created with initial on first render.
func UseRef[T any](o *Owner, initial T) *Ref[T] {
	if slot := o.UseHookSlot(); slot != nil {
		return slot.(*Ref[T])
	}
	ref := &Ref[T]{value: initial}
	o.SetHookSlot(ref)
	return ref
}

// UseID returns an identifier stable for the lifetime of the instance and
// unique within its Root, suitable for id and aria-controls attributes.
func UseID(o *Owner, prefix string) string {
	if slot := o.UseHookSlot(); slot != nil {
		return slot.(string)
	}
	id := fmt.Sprintf("%s-%d", prefix, o.root.nextID())
	o.SetHookSlot(id)
	return id
}

// OnMount schedules fn to run once, after the render pass in which the
// instance first rendered. A non-nil function returned by fn runs when the
// instance unmounts.
func OnMount(o *Owner, fn func() func()) {
	if slot := o.UseHookSlot(); slot != nil {
		return
	}
	o.SetHookSlot(true)

	o.root.mounts = append(o.root.mounts, func() {
		if o.disposed {
			return
		}
		if cleanup := fn(); cleanup != nil {
			o.OnCleanup(cleanup)
		}
	})
}

// OnCleanup registers fn to run when the instance unmounts. Unlike
// Owner.OnCleanup it registers only once per instance.
func OnCleanup(o *Owner, fn func()) {
	if slot := o.UseHookSlot(); slot != nil {
		return
	}
	o.SetHookSlot(true)
	o.OnCleanup(fn)
}
