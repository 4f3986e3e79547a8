package atom

import (
	"fmt"
	"reflect"
	"sync/atomic"
)

// keyIDCounter is the source of unique key IDs.
var keyIDCounter uint64

func nextKeyID() uint64 {
	return atomic.AddUint64(&keyIDCounter, 1)
}

// Key identifies one shared value cell and carries its default value.
// Keys are compared by identity: two keys are the same only if they are the
// same pointer, even when their defaults are equal.
type Key[T any] struct {
	id    uint64
	name  string
	def   T
	equal func(a, b T) bool
}

// NewKey creates a new key whose cell reads as defaultValue until written.
func NewKey[T any](defaultValue T) *Key[T] {
	return &Key[T]{
		id:  nextKeyID(),
		def: defaultValue,
	}
}

// ID returns the unique identifier for this key.
func (k *Key[T]) ID() uint64 {
	return k.id
}

// Default returns the value a store reports before the key is first written.
func (k *Key[T]) Default() T {
	return k.def
}

// Named sets a debug name used by String and by store observers.
func (k *Key[T]) Named(name string) *Key[T] {
	k.name = name
	return k
}

// WithEquals configures the equality used to decide whether a write changes
// the cell. Writes that compare equal do not notify subscribers.
func (k *Key[T]) WithEquals(fn func(a, b T) bool) *Key[T] {
	k.equal = fn
	return k
}

// String returns the debug name of the key.
func (k *Key[T]) String() string {
	if k.name != "" {
		return fmt.Sprintf("%s#%d", k.name, k.id)
	}
	return fmt.Sprintf("key#%d", k.id)
}

func (k *Key[T]) equals(a, b T) bool {
	if k.equal != nil {
		return k.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals uses == for the scalar types cells usually hold and
// reflect.DeepEqual for everything else.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	case int:
		return av == any(b).(int)
	case int64:
		return av == any(b).(int64)
	case float64:
		return av == any(b).(float64)
	default:
		return reflect.DeepEqual(a, b)
	}
}
