package form

import (
	"net/url"
	"slices"
	"sync"

	"github.com/vango-dev/headless/pkg/reactive"
	"github.com/vango-dev/headless/pkg/vdom"
)

// field is one registered form field.
type field struct {
	value      any
	multiple   bool
	registered int
}

// Form is a registry of named field values. Fields are registered by the
// controls that own them, typically pickers, and updated as they change.
//
// A Form is safe for concurrent use.
type Form struct {
	mu         sync.RWMutex
	fields     map[string]*field
	order      []string
	validators map[string][]Validator
	listeners  map[uint64]func(name string)
	nextID     uint64
}

// Option configures a Form.
type Option func(*Form)

// WithInitial seeds the value of name. A control registering under name
// starts from this value.
func WithInitial(name string, value any) Option {
	return func(f *Form) {
		f.ensure(name).value = value
	}
}

// WithValidators attaches validators to name.
func WithValidators(name string, validators ...Validator) Option {
	return func(f *Form) {
		f.validators[name] = append(f.validators[name], validators...)
	}
}

// New creates an empty Form.
func New(opts ...Option) *Form {
	f := &Form{
		fields:     make(map[string]*field),
		validators: make(map[string][]Validator),
		listeners:  make(map[uint64]func(string)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) ensure(name string) *field {
	fd, ok := f.fields[name]
	if !ok {
		fd = &field{}
		f.fields[name] = fd
		f.order = append(f.order, name)
	}
	return fd
}

// Register declares the field name with its current value. multiple marks
// fields whose value is a list. The returned function unregisters the field;
// its last value is kept.
func (f *Form) Register(name string, value any, multiple bool) (unregister func()) {
	f.mu.Lock()
	fd := f.ensure(name)
	fd.value = value
	fd.multiple = multiple
	fd.registered++
	f.mu.Unlock()

	f.notify(name)

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			if fd, ok := f.fields[name]; ok && fd.registered > 0 {
				fd.registered--
			}
			f.mu.Unlock()
		})
	}
}

// Set updates the value of name.
func (f *Form) Set(name string, value any) {
	f.mu.Lock()
	f.ensure(name).value = value
	f.mu.Unlock()

	f.notify(name)
}

// Value returns the value of name.
func (f *Form) Value(name string) (any, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	fd, ok := f.fields[name]
	if !ok || fd.value == nil {
		return nil, false
	}
	return fd.value, true
}

// String returns the value of name as a string, or "".
func (f *Form) String(name string) string {
	v, _ := f.Value(name)
	s, _ := v.(string)
	return s
}

// Strings returns the value of name as a list. Scalar values become a list
// of one.
func (f *Form) Strings(name string) []string {
	v, _ := f.Value(name)
	switch val := v.(type) {
	case []string:
		return slices.Clone(val)
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	default:
		return nil
	}
}

// IsMultiple reports whether name was registered as a list field.
func (f *Form) IsMultiple(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	fd, ok := f.fields[name]
	return ok && fd.multiple
}

// IsRegistered reports whether a mounted control currently owns name.
func (f *Form) IsRegistered(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	fd, ok := f.fields[name]
	return ok && fd.registered > 0
}

// Fields returns the field names in first-seen order.
func (f *Form) Fields() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.order)
}

// Values encodes every field as url.Values. List fields produce one entry
// per element.
func (f *Form) Values() url.Values {
	out := url.Values{}
	for _, name := range f.Fields() {
		if f.IsMultiple(name) {
			for _, v := range f.Strings(name) {
				out.Add(name, v)
			}
			continue
		}
		if s := f.String(name); s != "" {
			out.Set(name, s)
		}
	}
	return out
}

// OnChange registers fn to be called with the field name after every
// Register or Set. The returned function removes it.
func (f *Form) OnChange(fn func(name string)) (remove func()) {
	f.mu.Lock()
	f.nextID++
	id := f.nextID
	f.listeners[id] = fn
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		delete(f.listeners, id)
		f.mu.Unlock()
	}
}

func (f *Form) notify(name string) {
	f.mu.RLock()
	ids := make([]uint64, 0, len(f.listeners))
	for id := range f.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(string), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, f.listeners[id])
	}
	f.mu.RUnlock()

	for _, fn := range fns {
		fn(name)
	}
}

// Validate runs the validators of every field and returns the failures by
// field name. An empty map means the form is valid.
func (f *Form) Validate() map[string][]string {
	f.mu.RLock()
	validators := make(map[string][]Validator, len(f.validators))
	for name, vs := range f.validators {
		validators[name] = vs
	}
	f.mu.RUnlock()

	errs := make(map[string][]string)
	for name, vs := range validators {
		value, _ := f.Value(name)
		for _, v := range vs {
			if err := v.Validate(value); err != nil {
				errs[name] = append(errs[name], err.Error())
			}
		}
	}
	return errs
}

// Scope carries the enclosing Form down the component tree.
var Scope = reactive.NewContext[*Form]("form.Scope", nil)

// Provider renders a form element and makes f available to the controls
// inside it.
func Provider(f *Form, children ...any) reactive.Func {
	return reactive.New("form.Provider", func(o *reactive.Owner) *vdom.VNode {
		Scope.Provide(o, f)

		remove := reactive.UseRef[func()](o, nil)
		if remove.Current() == nil {
			remove.Set(f.OnChange(func(string) { o.Root().Invalidate() }))
			o.OnCleanup(remove.Current())
		}

		return vdom.Form(children...)
	})
}
