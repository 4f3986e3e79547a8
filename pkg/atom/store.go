package atom

import "sync"

// Observer receives store instrumentation callbacks.
type Observer interface {
	// OnWrite is called after a write changed the value of key.
	OnWrite(key string)
	// OnNotify is called after subscribers of key were notified.
	OnNotify(key string, subscribers int)
}

// Option configures a Store.
type Option func(*Store)

// WithObserver attaches an Observer to the store.
func WithObserver(o Observer) Option {
	return func(s *Store) {
		s.observer = o
	}
}

// subscriber is one registered change callback.
type subscriber struct {
	id uint64
	fn func()
}

// Store maps keys to their current values and notifies subscribers of a key
// when its value changes.
//
// A Store is injected into whatever needs it; there is no process-wide
// instance. Notifications run synchronously on the writing goroutine, after
// the store lock has been released.
type Store struct {
	mu       sync.RWMutex
	values   map[uint64]any
	subs     map[uint64][]subscriber
	nextSub  uint64
	observer Observer
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		values: make(map[uint64]any),
		subs:   make(map[uint64][]subscriber),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the current value of key, or its default if it was never
// written.
func Get[T any](s *Store, key *Key[T]) T {
	s.mu.RLock()
	v, ok := s.values[key.id]
	s.mu.RUnlock()

	if !ok {
		return key.def
	}
	return v.(T)
}

// Has reports whether key has been written in this store.
func Has[T any](s *Store, key *Key[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[key.id]
	return ok
}

// Set overwrites the value of key and notifies its subscribers before
// returning. Writing a value equal to the current one is a no-op.
func Set[T any](s *Store, key *Key[T], value T) {
	Update(s, key, func(T) T { return value })
}

// Update atomically reads and replaces the value of key.
func Update[T any](s *Store, key *Key[T], fn func(T) T) {
	s.mu.Lock()
	old, ok := s.values[key.id]
	current := key.def
	if ok {
		current = old.(T)
	}
	next := fn(current)
	changed := !key.equals(current, next)
	if changed {
		s.values[key.id] = next
	}
	s.mu.Unlock()

	if changed {
		s.notify(key.id, key.String())
	}
}

// Subscribe registers fn to be called after every change of key. The
// returned function removes the subscription and is safe to call twice.
func Subscribe[T any](s *Store, key *Key[T], fn func()) (unsubscribe func()) {
	s.mu.Lock()
	s.nextSub++
	id := s.nextSub
	s.subs[key.id] = append(s.subs[key.id], subscriber{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.unsubscribe(key.id, id)
		})
	}
}

// Subscribers returns the number of live subscriptions for key.
func Subscribers[T any](s *Store, key *Key[T]) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs[key.id])
}

func (s *Store) unsubscribe(keyID, subID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs := s.subs[keyID]
	for i, sub := range subs {
		if sub.id == subID {
			s.subs[keyID] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(s.subs[keyID]) == 0 {
		delete(s.subs, keyID)
	}
}

// notify calls every subscriber of keyID. Subscribers are copied first so a
// callback may subscribe or unsubscribe without deadlocking.
func (s *Store) notify(keyID uint64, name string) {
	s.mu.RLock()
	subs := make([]subscriber, len(s.subs[keyID]))
	copy(subs, s.subs[keyID])
	s.mu.RUnlock()

	if s.observer != nil {
		s.observer.OnWrite(name)
	}

	for _, sub := range subs {
		sub.fn()
	}

	if s.observer != nil {
		s.observer.OnNotify(name, len(subs))
	}
}
