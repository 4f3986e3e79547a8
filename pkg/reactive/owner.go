package reactive

import (
	"fmt"
	"sync/atomic"

	"github.com/vango-dev/headless/pkg/atom"
)

// ownerIDCounter is the source of unique owner IDs.
var ownerIDCounter uint64

func nextOwnerID() uint64 {
	return atomic.AddUint64(&ownerIDCounter, 1)
}

// Owner represents one mounted component instance. It holds the instance's
// hook slots, tree-scoped values and cleanups, and the child instances
// created by its render.
//
// Owners form a hierarchy mirroring the component tree. Disposing an Owner
// disposes its children first, then runs its cleanups in reverse order.
type Owner struct {
	id     uint64
	name   string
	parent *Owner
	root   *Root

	// children are the instances rendered by this owner, by instance ID.
	children map[string]*Owner
	order    []string

	// Per-render bookkeeping used to match components to instances.
	seen   map[string]bool
	counts map[string]int

	// values stores tree-scoped values provided by this instance.
	values map[any]any

	cleanups []func()
	disposed bool
	rendered bool

	// Hook slot storage for stable identity across renders.
	hookSlots   []any
	hookSlotIdx int
}

func newOwner(root *Root, parent *Owner, name string) *Owner {
	return &Owner{
		id:       nextOwnerID(),
		name:     name,
		parent:   parent,
		root:     root,
		children: make(map[string]*Owner),
	}
}

// ID returns the unique identifier for this Owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// Name returns the component name this Owner was created for.
func (o *Owner) Name() string {
	return o.name
}

// Parent returns the parent Owner, or nil for the root instance.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// Root returns the Root this instance is mounted in.
func (o *Owner) Root() *Root {
	return o.root
}

// Store returns the store injected into the Root.
func (o *Owner) Store() *atom.Store {
	return o.root.store
}

// IsDisposed returns true if this instance has been unmounted.
func (o *Owner) IsDisposed() bool {
	return o.disposed
}

// IsFirstRender reports whether the instance is rendering for the first time.
func (o *Owner) IsFirstRender() bool {
	return !o.rendered
}

// Path returns the instance path from the root, for logging.
func (o *Owner) Path() string {
	if o.parent == nil {
		return o.name
	}
	return o.parent.Path() + "/" + o.name
}

// OnCleanup registers a function to run when this instance is unmounted.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed {
		fn()
		return
	}
	o.cleanups = append(o.cleanups, fn)
}

// SetValue stores a tree-scoped value visible to this instance and its
// descendants.
func (o *Owner) SetValue(key, value any) {
	if o.values == nil {
		o.values = make(map[any]any)
	}
	o.values[key] = value
}

// GetValue returns the nearest value stored under key, walking up from this
// instance through its ancestors.
func (o *Owner) GetValue(key any) (any, bool) {
	for cur := o; cur != nil; cur = cur.parent {
		if v, ok := cur.values[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// UseHookSlot returns the stored value for the current hook slot, or nil on
// the first render. The caller creates the value and stores it with
// SetHookSlot.
//
//	slot := o.UseHookSlot()
//	if slot != nil {
//	    return slot.(*thing)
//	}
//	t := &thing{}
//	o.SetHookSlot(t)
//	return t
func (o *Owner) UseHookSlot() any {
	idx := o.hookSlotIdx
	o.hookSlotIdx++

	if idx < len(o.hookSlots) {
		return o.hookSlots[idx]
	}
	return nil
}

// SetHookSlot stores a value in the current hook slot.
// Must be called after UseHookSlot returns nil.
func (o *Owner) SetHookSlot(value any) {
	o.hookSlots = append(o.hookSlots, value)
}

// beginRender resets per-render state before the component function runs.
func (o *Owner) beginRender() {
	o.hookSlotIdx = 0
	o.seen = make(map[string]bool)
	o.counts = make(map[string]int)
}

// endRender disposes child instances that were not rendered this pass.
func (o *Owner) endRender() {
	o.rendered = true

	kept := o.order[:0]
	for _, id := range o.order {
		if o.seen[id] {
			kept = append(kept, id)
			continue
		}
		child := o.children[id]
		delete(o.children, id)
		child.Dispose()
	}
	o.order = kept
	o.seen = nil
	o.counts = nil
}

// instance returns the child instance for comp, creating it on first use.
// Keyed components match by key; others match by name and position among
// siblings of the same name.
func (o *Owner) instance(comp Component) *Owner {
	name := comp.ComponentName()

	var id string
	if k, ok := comp.(keyed); ok && k.InstanceKey() != "" {
		id = name + "@" + k.InstanceKey()
		if o.seen[id] {
			id = fmt.Sprintf("%s#%d", id, o.counts[id])
			o.counts[id]++
		}
	} else {
		id = fmt.Sprintf("%s#%d", name, o.counts[name])
		o.counts[name]++
	}
	o.seen[id] = true

	child, ok := o.children[id]
	if !ok {
		child = newOwner(o.root, o, name)
		o.children[id] = child
		o.order = append(o.order, id)
		o.root.logger.Debug("mount", "path", child.Path(), "owner", child.id)
	}
	return child
}

// Dispose unmounts this instance and all of its children. Children are
// disposed in reverse creation order, then cleanups run in reverse order.
func (o *Owner) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true

	for i := len(o.order) - 1; i >= 0; i-- {
		o.children[o.order[i]].Dispose()
	}
	o.children = nil
	o.order = nil

	cleanups := o.cleanups
	o.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}

	o.root.logger.Debug("unmount", "path", o.Path(), "owner", o.id)
}
