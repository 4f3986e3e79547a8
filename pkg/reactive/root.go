package reactive

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vango-dev/headless/pkg/atom"
	"github.com/vango-dev/headless/pkg/vdom"
)

// DefaultMaxPasses bounds the number of render passes one Flush may run.
// Mount callbacks and renders that write to the store schedule another pass.
const DefaultMaxPasses = 16

// ErrNodeNotFound is returned by Dispatch when no node carries the HID.
var ErrNodeNotFound = errors.New("reactive: node not found")

// Observer receives Root instrumentation callbacks.
type Observer interface {
	// OnRender is called after each render pass.
	OnRender(d time.Duration)
	// OnEvent is called after an event has been handled and flushed.
	OnEvent(eventType string, d time.Duration)
}

// RootOption configures a Root.
type RootOption func(*Root)

// WithLogger sets the logger used for mount, unmount and dispatch traces.
// Without it the Root is silent.
func WithLogger(l *slog.Logger) RootOption {
	return func(r *Root) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithObserver attaches an Observer.
func WithObserver(o Observer) RootOption {
	return func(r *Root) {
		r.observer = o
	}
}

// WithMaxPasses overrides DefaultMaxPasses.
func WithMaxPasses(n int) RootOption {
	return func(r *Root) {
		if n > 0 {
			r.maxPasses = n
		}
	}
}

// documentListener is a document-level event callback.
type documentListener struct {
	id    uint64
	event string
	fn    func(vdom.Event) bool
}

// Root mounts a component tree against an injected store. It expands
// component nodes into a concrete tree, keeps instances alive across
// renders, and re-renders after events that changed subscribed keys.
//
// Root methods are safe for concurrent use; events are handled one at a
// time.
type Root struct {
	mu sync.Mutex

	store *atom.Store
	comp  Component
	owner *Owner
	tree  *vdom.VNode

	dirty  atomic.Bool
	mounts []func()
	ids    uint64
	hids   *vdom.HIDGenerator

	listenersMu  sync.Mutex
	listeners    []documentListener
	nextListener uint64

	logger    *slog.Logger
	observer  Observer
	maxPasses int
}

// NewRoot creates a Root for comp. Nothing renders until Mount is called.
func NewRoot(store *atom.Store, comp Component, opts ...RootOption) *Root {
	r := &Root{
		store:     store,
		comp:      comp,
		hids:      vdom.NewHIDGenerator(),
		logger:    slog.New(slog.DiscardHandler),
		maxPasses: DefaultMaxPasses,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.owner = newOwner(r, nil, comp.ComponentName())
	return r
}

// Store returns the injected store.
func (r *Root) Store() *atom.Store {
	return r.store
}

// Mount performs the initial render and returns the expanded tree.
func (r *Root) Mount() *vdom.VNode {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dirty.Store(true)
	r.flush()
	return r.tree
}

// Tree returns the most recently rendered tree.
func (r *Root) Tree() *vdom.VNode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tree
}

// Invalidate schedules a render pass for the next Flush.
func (r *Root) Invalidate() {
	r.dirty.Store(true)
}

// Flush re-renders until the tree is stable and returns it.
func (r *Root) Flush() *vdom.VNode {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.flush()
	return r.tree
}

// Dispatch delivers ev to the node with the given HID and bubbles it through
// the node's ancestors, then flushes.
func (r *Root) Dispatch(hid string, ev vdom.Event) error {
	tree := r.Tree()
	node := vdom.FindByHID(tree, hid)
	if node == nil {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, hid)
	}
	r.Bubble(vdom.PathTo(tree, node), ev)
	return nil
}

// Invoke delivers ev to node's handler, then flushes. It reports whether the
// node had a handler for the event.
func (r *Root) Invoke(node *vdom.VNode, ev vdom.Event) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.invoke(node, ev)
}

// Bubble delivers ev to every handler along path, innermost first, the way a
// DOM event bubbles from its target, then flushes once. path lists the
// target followed by its ancestors.
func (r *Root) Bubble(path []*vdom.VNode, ev vdom.Event) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	handled := false
	for _, node := range path {
		if node != nil && vdom.Invoke(node.Handler(ev.Type), ev) {
			handled = true
		}
	}
	r.logger.Debug("dispatch", "event", ev.Type, "path", len(path), "handled", handled)
	r.flush()

	if r.observer != nil {
		r.observer.OnEvent(ev.Type, time.Since(start))
	}
	return handled
}

func (r *Root) invoke(node *vdom.VNode, ev vdom.Event) bool {
	if node == nil {
		return false
	}
	start := time.Now()

	handled := vdom.Invoke(node.Handler(ev.Type), ev)
	r.logger.Debug("dispatch", "event", ev.Type, "hid", node.HID, "handled", handled)
	r.flush()

	if r.observer != nil {
		r.observer.OnEvent(ev.Type, time.Since(start))
	}
	return handled
}

// AddDocumentListener registers fn for document-level events of the given
// type. Listeners run newest first; a listener returning true stops the
// event. The returned function removes the listener.
func (r *Root) AddDocumentListener(event string, fn func(vdom.Event) bool) (remove func()) {
	r.listenersMu.Lock()
	r.nextListener++
	id := r.nextListener
	r.listeners = append(r.listeners, documentListener{id: id, event: event, fn: fn})
	r.listenersMu.Unlock()

	return func() {
		r.listenersMu.Lock()
		defer r.listenersMu.Unlock()
		for i, l := range r.listeners {
			if l.id == id {
				r.listeners = append(r.listeners[:i:i], r.listeners[i+1:]...)
				return
			}
		}
	}
}

// DispatchDocument delivers ev to document listeners, then flushes. It
// reports whether a listener handled the event.
func (r *Root) DispatchDocument(ev vdom.Event) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()

	r.listenersMu.Lock()
	listeners := make([]documentListener, len(r.listeners))
	copy(listeners, r.listeners)
	r.listenersMu.Unlock()

	handled := false
	for i := len(listeners) - 1; i >= 0; i-- {
		l := listeners[i]
		if l.event != ev.Type {
			continue
		}
		if l.fn(ev) {
			handled = true
			break
		}
	}
	r.logger.Debug("dispatch document", "event", ev.Type, "key", ev.Key, "handled", handled)
	r.flush()

	if r.observer != nil {
		r.observer.OnEvent("document:"+ev.Type, time.Since(start))
	}
	return handled
}

// Unmount disposes every instance. The Root cannot be used afterwards.
func (r *Root) Unmount() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.owner.Dispose()
	r.tree = nil
}

// nextID returns a root-local sequence number for UseID.
func (r *Root) nextID() uint64 {
	r.ids++
	return r.ids
}

func (r *Root) flush() {
	if r.owner.disposed {
		return
	}
	for pass := 0; r.dirty.Load(); pass++ {
		if pass >= r.maxPasses {
			r.logger.Warn("render did not settle", "passes", pass, "root", r.owner.name)
			return
		}
		r.renderPass()
	}
}

func (r *Root) renderPass() {
	start := time.Now()
	r.dirty.Store(false)

	tree := r.renderOwner(r.owner, r.comp)
	if tree == nil {
		tree = vdom.Fragment()
	}
	r.hids.Reset()
	vdom.AssignHIDs(tree, r.hids)
	r.tree = tree

	mounts := r.mounts
	r.mounts = nil
	for _, fn := range mounts {
		fn()
	}

	if r.observer != nil {
		r.observer.OnRender(time.Since(start))
	}
}

// renderOwner runs comp for o and expands the components it returns.
func (r *Root) renderOwner(o *Owner, comp Component) *vdom.VNode {
	o.beginRender()
	node := r.expand(o, comp.Render(o))
	o.endRender()
	return node
}

// expand returns a copy of the subtree with component nodes replaced by
// their rendered output. Components that render nothing are dropped.
func (r *Root) expand(o *Owner, node *vdom.VNode) *vdom.VNode {
	if node == nil {
		return nil
	}

	if node.Kind == vdom.KindComponent {
		comp, ok := node.Comp.(Component)
		if !ok {
			name := ""
			if node.Comp != nil {
				name = node.Comp.ComponentName()
			}
			r.logger.Error("component cannot be rendered", "component", name, "parent", o.Path())
			return nil
		}
		return r.renderOwner(o.instance(comp), comp)
	}

	// Components may return nodes they hold across renders, so the input is
	// copied rather than expanded in place.
	out := *node
	out.HID = ""
	out.Children = make([]*vdom.VNode, 0, len(node.Children))
	for _, child := range node.Children {
		if expanded := r.expand(o, child); expanded != nil {
			out.Children = append(out.Children, expanded)
		}
	}
	return &out
}
