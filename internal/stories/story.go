package stories

import (
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/vango-dev/headless/pkg/reactive"
)

// Story is one named, mountable example.
type Story struct {
	// ID is the URL-safe identifier, "<group>--<name>" in kebab case.
	ID string
	// Title is the display name.
	Title string
	// Group is "Picker" or "Visibility" for the built-in stories.
	Group string
	// Description is a one-line summary shown by the gallery.
	Description string
	// Component builds a fresh component tree. Handlers report to actions.
	Component func(actions *Actions) reactive.Component
}

// New builds a story, deriving ID from group and title.
func New(group, title, description string, component func(*Actions) reactive.Component) Story {
	return Story{
		ID:          kebab(group) + "--" + kebab(title),
		Title:       title,
		Group:       group,
		Description: description,
		Component:   component,
	}
}

// Mount returns the story's component and the action log it reports to.
func (s Story) Mount(logger *slog.Logger) (reactive.Component, *Actions) {
	if logger != nil {
		logger = logger.With("story", s.ID)
	}
	actions := NewActions(logger)
	return s.Component(actions), actions
}

func kebab(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		case r == ' ' || r == '_' || r == '-':
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "-") {
				b.WriteByte('-')
			}
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}
	return b.String()
}

// Action is one recorded handler call.
type Action struct {
	Name  string
	Value any
}

// Actions records handler calls made by a mounted story.
type Actions struct {
	mu      sync.Mutex
	entries []Action
	logger  *slog.Logger
}

// NewActions returns an empty log. A nil logger discards.
func NewActions(logger *slog.Logger) *Actions {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Actions{logger: logger}
}

// Record appends an entry.
func (a *Actions) Record(name string, value any) {
	a.mu.Lock()
	a.entries = append(a.entries, Action{Name: name, Value: value})
	a.mu.Unlock()
	a.logger.Debug("action", "name", name, "value", value)
}

// Entries returns a copy of every recorded entry in call order.
func (a *Actions) Entries() []Action {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.entries)
}

// Values returns the values recorded under name in call order.
func (a *Actions) Values(name string) []any {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []any
	for _, e := range a.entries {
		if e.Name == name {
			out = append(out, e.Value)
		}
	}
	return out
}

// Handler returns a callback recording its argument under name.
func Handler[T any](a *Actions, name string) func(T) {
	return func(v T) {
		if s, ok := any(v).([]string); ok {
			a.Record(name, slices.Clone(s))
			return
		}
		a.Record(name, v)
	}
}

// Registry indexes stories by ID, keeping registration order.
type Registry struct {
	mu      sync.RWMutex
	stories []Story
	byID    map[string]int
}

// NewRegistry returns a registry holding stories.
func NewRegistry(stories ...Story) *Registry {
	r := &Registry{byID: make(map[string]int)}
	for _, s := range stories {
		r.Register(s)
	}
	return r
}

// Register adds s, replacing a story with the same ID.
func (r *Registry) Register(s Story) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.byID[s.ID]; ok {
		r.stories[i] = s
		return
	}
	r.byID[s.ID] = len(r.stories)
	r.stories = append(r.stories, s)
}

// Get returns the story with the given ID.
func (r *Registry) Get(id string) (Story, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return Story{}, false
	}
	return r.stories[i], true
}

// All returns every story in registration order.
func (r *Registry) All() []Story {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.stories)
}

// Groups returns the group names, sorted.
func (r *Registry) Groups() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	var groups []string
	for _, s := range r.stories {
		if !seen[s.Group] {
			seen[s.Group] = true
			groups = append(groups, s.Group)
		}
	}
	sort.Strings(groups)
	return groups
}

// Group returns the stories of one group in registration order.
func (r *Registry) Group(name string) []Story {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Story
	for _, s := range r.stories {
		if s.Group == name {
			out = append(out, s)
		}
	}
	return out
}

// Default returns a registry holding every built-in story.
func Default() *Registry {
	return NewRegistry(append(Picker(), Visibility()...)...)
}
