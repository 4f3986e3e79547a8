package picker

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vango-dev/headless/pkg/atom"
	"github.com/vango-dev/headless/pkg/form"
	"github.com/vango-dev/headless/pkg/reactive"
	"github.com/vango-dev/headless/pkg/vdom"
	"github.com/vango-dev/headless/pkg/vtest"
)

var options = []string{"first", "second", "third"}

var labels = map[string]string{"first": "First", "second": "Second", "third": "Third"}

func fieldset(g *Group, option func(label string) func(Option) *vdom.VNode) *vdom.VNode {
	return vdom.Fieldset(vdom.Range(options, func(value string, _ int) *vdom.VNode {
		return vdom.Fragment(g.Selector(value, option(labels[value])))
	}))
}

func TestIsSelected(t *testing.T) {
	tests := []struct {
		name   string
		option string
		state  any
		mode   Mode
		want   bool
	}{
		{"single match", "first", "first", ModeSingle, true},
		{"single other", "first", "second", ModeSingle, false},
		{"single empty", "first", "", ModeSingle, false},
		{"multiple member", "second", []string{"first", "second"}, ModeMultiple, true},
		{"multiple absent", "third", []string{"first"}, ModeMultiple, false},
		{"multiple nil", "first", []string(nil), ModeMultiple, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSelected(tt.option, tt.state, tt.mode); got != tt.want {
				t.Errorf("IsSelected = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectOptionSingleAlwaysNotifies(t *testing.T) {
	var calls []any
	SelectOption("first", "first", ModeSingle, func(next any) { calls = append(calls, next) })

	if len(calls) != 1 || calls[0] != "first" {
		t.Errorf("calls = %v, want [first]", calls)
	}
}

func TestToggleMultipleDoesNotMutate(t *testing.T) {
	state := make([]string, 2, 4)
	copy(state, []string{"first", "second"})

	added := ToggleMultiple("third", state)
	removed := ToggleMultiple("first", state)

	if !reflect.DeepEqual(state, []string{"first", "second"}) {
		t.Errorf("state mutated: %v", state)
	}
	if !reflect.DeepEqual(added, []string{"first", "second", "third"}) {
		t.Errorf("added = %v", added)
	}
	if !reflect.DeepEqual(removed, []string{"second"}) {
		t.Errorf("removed = %v", removed)
	}

	added[0] = "changed"
	if state[0] != "first" {
		t.Error("result shares backing array with input")
	}
}

func TestSingleSelectionExclusive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	state := ""

	for i := 0; i < 200; i++ {
		SelectOption(options[rng.Intn(len(options))], state, ModeSingle, func(next any) { state = next.(string) })

		selected := 0
		for _, o := range options {
			if IsSelectedSingle(o, state) {
				selected++
			}
		}
		if selected > 1 {
			t.Fatalf("step %d: %d options selected", i, selected)
		}
	}
}

func TestMultipleToggleTwiceRestoresMembership(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	state := []string{}

	for i := 0; i < 200; i++ {
		SelectOption(options[rng.Intn(len(options))], state, ModeMultiple, func(next any) { state = next.([]string) })

		option := options[rng.Intn(len(options))]
		before := IsSelectedMultiple(option, state)
		twice := ToggleMultiple(option, ToggleMultiple(option, state))
		if IsSelectedMultiple(option, twice) != before {
			t.Fatalf("step %d: toggling %s twice changed membership", i, option)
		}
		seen := map[string]bool{}
		for _, v := range twice {
			if seen[v] {
				t.Fatalf("step %d: duplicate %s in %v", i, v, twice)
			}
			seen[v] = true
		}
	}
}

func TestSingleProviderSelection(t *testing.T) {
	var changes []string
	comp := Single(SingleProps{OnChange: func(v string) { changes = append(changes, v) }}, func(g *Group) *vdom.VNode {
		return fieldset(g, RoleOption)
	})
	screen := vtest.Mount(comp)

	vtest.ExpectCount(t, screen, "radio", 3)
	vtest.ExpectCount(t, screen, "radio", 0, vtest.Checked(true))

	screen.Click(screen.GetByRole(t, "radio", vtest.Name("First")))
	if !screen.GetByRole(t, "radio", vtest.Name("First")).IsChecked() {
		t.Error("First should be checked")
	}
	vtest.ExpectCount(t, screen, "radio", 1, vtest.Checked(true))

	screen.Click(screen.GetByRole(t, "radio", vtest.Name("Second")))
	if !screen.GetByRole(t, "radio", vtest.Name("Second")).IsChecked() {
		t.Error("Second should be checked")
	}
	vtest.ExpectCount(t, screen, "radio", 1, vtest.Checked(true))

	screen.Click(screen.GetByRole(t, "radio", vtest.Name("Second")))
	vtest.ExpectCount(t, screen, "radio", 1, vtest.Checked(true))

	want := []string{"first", "second", "second"}
	if !reflect.DeepEqual(changes, want) {
		t.Errorf("changes = %v, want %v", changes, want)
	}
}

func TestMultipleProviderSelection(t *testing.T) {
	var last []string
	comp := Multiple(MultipleProps{OnChange: func(v []string) { last = v }}, func(g *Group) *vdom.VNode {
		return fieldset(g, RoleOption)
	})
	screen := vtest.Mount(comp)

	for _, name := range []string{"First", "Second", "Third"} {
		screen.Click(screen.GetByRole(t, "checkbox", vtest.Name(name)))
	}
	if !reflect.DeepEqual(last, []string{"first", "second", "third"}) {
		t.Errorf("after selecting all = %v", last)
	}
	vtest.ExpectCount(t, screen, "checkbox", 3, vtest.Checked(true))

	screen.Click(screen.GetByRole(t, "checkbox", vtest.Name("First")))
	if !reflect.DeepEqual(last, []string{"second", "third"}) {
		t.Errorf("after deselecting first = %v", last)
	}
	vtest.ExpectCount(t, screen, "checkbox", 2, vtest.Checked(true))
}

func TestControlledProvider(t *testing.T) {
	value := "second"
	var proposed []string
	comp := Single(SingleProps{
		Value:    &value,
		OnChange: func(v string) { proposed = append(proposed, v) },
	}, func(g *Group) *vdom.VNode {
		return fieldset(g, ButtonOption)
	})
	screen := vtest.Mount(comp)

	screen.Click(screen.GetByRole(t, "button", vtest.Name("First")))

	if !reflect.DeepEqual(proposed, []string{"first"}) {
		t.Errorf("proposed = %v", proposed)
	}
	screen.Rerender()
	if !screen.GetByRole(t, "button", vtest.Name("Second")).IsPressed() {
		t.Error("controlled provider must keep rendering its Value")
	}

	value = "first"
	screen.Root().Invalidate()
	screen.Rerender()
	vtest.ExpectCount(t, screen, "button", 1, vtest.Pressed(true), vtest.Name("First"))
}

func TestControlledMultipleWithState(t *testing.T) {
	app := reactive.New("App", func(o *reactive.Owner) *vdom.VNode {
		st := reactive.UseState(o, []string{})
		value := st.Value
		return Multiple(MultipleProps{Value: &value, OnChange: st.Set}, func(g *Group) *vdom.VNode {
			return Listbox(g, vdom.Range(options, func(v string, _ int) *vdom.VNode {
				return vdom.Fragment(g.Selector(v, ListboxOption(labels[v])))
			}))
		}).Render(o)
	})
	screen := vtest.Mount(app)

	screen.Click(screen.GetByRole(t, "option", vtest.Name("Third")))
	screen.Click(screen.GetByRole(t, "option", vtest.Name("First")))

	vtest.ExpectCount(t, screen, "option", 2, vtest.Selected(true))
	vtest.ExpectContains(t, screen.Tree(), `aria-multiselectable="true"`)
}

func TestDefaultValue(t *testing.T) {
	comp := Single(SingleProps{DefaultValue: "third"}, func(g *Group) *vdom.VNode {
		return fieldset(g, InputOption)
	})
	screen := vtest.Mount(comp)

	if !screen.GetByRole(t, "radio", vtest.Name("Third")).IsChecked() {
		t.Error("default value should be checked")
	}
}

func TestSharedKeySynchronizesPickers(t *testing.T) {
	key := NewMultipleKey()
	picker := func(option func(string) func(Option) *vdom.VNode) reactive.Func {
		return Multiple(MultipleProps{ContextKey: key}, func(g *Group) *vdom.VNode {
			return fieldset(g, option)
		})
	}
	app := reactive.New("App", func(o *reactive.Owner) *vdom.VNode {
		return vdom.Div(picker(SwitchOption), picker(ButtonOption))
	})
	screen := vtest.Mount(app)

	screen.Click(screen.GetByRole(t, "switch", vtest.Name("Second")))

	if !screen.GetByRole(t, "button", vtest.Name("Second")).IsPressed() {
		t.Error("second picker should observe the shared selection")
	}
	if got := atom.Get(screen.Store(), key); !reflect.DeepEqual(got, []string{"second"}) {
		t.Errorf("shared key = %v", got)
	}
}

func TestFormRegistration(t *testing.T) {
	f := form.New(form.WithInitial("picker", "second"))
	shown := atom.NewKey(true)

	app := reactive.New("App", func(o *reactive.Owner) *vdom.VNode {
		visible := reactive.UseAtom(o, shown)
		return form.Provider(f,
			vdom.If(visible.Value, vdom.Fragment(Single(SingleProps{Name: "picker"}, func(g *Group) *vdom.VNode {
				return fieldset(g, InputButtonOption)
			}))),
		).Render(o)
	})
	screen := vtest.Mount(app)

	if !f.IsRegistered("picker") || f.IsMultiple("picker") {
		t.Fatal("picker should register as a single field")
	}
	if !screen.GetByRole(t, "button", vtest.Name("Second")).IsPressed() {
		t.Error("initial form value should be selected")
	}

	screen.Click(screen.GetByRole(t, "button", vtest.Name("Third")))
	if got := f.String("picker"); got != "third" {
		t.Errorf("form value = %q, want third", got)
	}

	atom.Set(screen.Store(), shown, false)
	screen.Rerender()
	if f.IsRegistered("picker") {
		t.Error("unmounting the picker should unregister it")
	}
}

func TestMultipleFormRegistration(t *testing.T) {
	f := form.New()
	app := reactive.New("App", func(o *reactive.Owner) *vdom.VNode {
		return vdom.Div(form.Provider(f, Multiple(MultipleProps{Name: "tags"}, func(g *Group) *vdom.VNode {
			return fieldset(g, InputOption)
		})))
	})
	screen := vtest.Mount(app)

	screen.Click(screen.GetByRole(t, "checkbox", vtest.Name("First")))
	screen.Click(screen.GetByRole(t, "checkbox", vtest.Name("Third")))

	if !f.IsMultiple("tags") {
		t.Error("tags should be a list field")
	}
	if got := f.Values()["tags"]; !reflect.DeepEqual(got, []string{"first", "third"}) {
		t.Errorf("form tags = %v", got)
	}
}

func TestOptionDescriptor(t *testing.T) {
	var got Option
	comp := Multiple(MultipleProps{Name: "tags", DefaultValue: []string{"first"}}, func(g *Group) *vdom.VNode {
		got = g.Option("first")
		return vdom.Div()
	})
	vtest.Mount(comp)

	if !got.IsSelected || got.OptionType != "checkbox" || got.Name != "tags" || got.Value != "first" {
		t.Errorf("descriptor = %+v", got)
	}
	if got.ID == "" {
		t.Error("descriptor should carry an id")
	}
}

func TestRoleOptionKeyboard(t *testing.T) {
	comp := Single(SingleProps{}, func(g *Group) *vdom.VNode {
		return fieldset(g, RoleOption)
	})
	screen := vtest.Mount(comp)

	screen.KeyDown(screen.GetByRole(t, "radio", vtest.Name("Second")), " ")

	if !screen.GetByRole(t, "radio", vtest.Name("Second")).IsChecked() {
		t.Error("space should select the option")
	}
}
