package stories

import (
	"github.com/vango-dev/headless/pkg/form"
	"github.com/vango-dev/headless/pkg/picker"
	"github.com/vango-dev/headless/pkg/reactive"
	"github.com/vango-dev/headless/pkg/vdom"
)

// GroupPicker names the picker stories.
const GroupPicker = "Picker"

var pickerOptions = []struct{ value, label string }{
	{"first", "First"},
	{"second", "Second"},
	{"third", "Third"},
}

type optionRenderer func(label string) func(picker.Option) *vdom.VNode

// options renders the three options of every picker story.
func options(g *picker.Group, render optionRenderer) []any {
	out := make([]any, 0, len(pickerOptions))
	for _, opt := range pickerOptions {
		out = append(out, g.Selector(opt.value, render(opt.label)))
	}
	return out
}

func fieldset(orientation string, render optionRenderer) func(*picker.Group) *vdom.VNode {
	return func(g *picker.Group) *vdom.VNode {
		return vdom.Fieldset(vdom.Data(orientation, ""), options(g, render))
	}
}

func listbox(g *picker.Group) *vdom.VNode {
	return picker.Listbox(g, options(g, picker.ListboxOption))
}

// Picker returns the picker stories.
func Picker() []Story {
	return []Story{
		New(GroupPicker, "Single Selection Controlled",
			"Controlled single picker: selections are reported but the value stays fixed.",
			func(a *Actions) reactive.Component {
				value := ""
				return picker.Single(picker.SingleProps{
					Value:    &value,
					OnChange: Handler[string](a, "onChange"),
				}, fieldset("horizontal", picker.RoleOption))
			}),
		New(GroupPicker, "Multiple Selection Controlled",
			"Controlled multiple picker: selections are reported but the value stays fixed.",
			func(a *Actions) reactive.Component {
				value := []string{}
				return picker.Multiple(picker.MultipleProps{
					Value:    &value,
					OnChange: Handler[[]string](a, "onChange"),
				}, fieldset("horizontal", picker.RoleOption))
			}),
		singleField("Single Selection Input", "Native radio inputs.", fieldset("vertical", picker.InputOption)),
		multipleField("Multiple Selection Input", "Native checkbox inputs.", fieldset("vertical", picker.InputOption)),
		singleField("Single Selection Input Button", "Inputs of type button.", fieldset("horizontal", picker.InputButtonOption)),
		multipleField("Multiple Selection Input Button", "Inputs of type button.", fieldset("horizontal", picker.InputButtonOption)),
		singleField("Single Selection Input Role", "Spans with the radio role.", fieldset("horizontal", picker.RoleOption)),
		multipleField("Multiple Selection Input Role", "Spans with the checkbox role.", fieldset("horizontal", picker.RoleOption)),
		singleField("Single Selection Button", "Toggle buttons.", fieldset("horizontal", picker.ButtonOption)),
		multipleField("Multiple Selection Button", "Toggle buttons.", fieldset("horizontal", picker.ButtonOption)),
		singleField("Single Selection Select", "Listbox options.", listbox),
		multipleField("Multiple Selection Select", "Multi-select listbox options.", listbox),
		singleField("Single Selection Switch", "Switches.", fieldset("vertical", picker.SwitchOption)),
		multipleField("Multiple Selection Switch", "Switches.", fieldset("vertical", picker.SwitchOption)),
		New(GroupPicker, "Single Selection Form",
			"A named picker registered with a form.",
			func(a *Actions) reactive.Component {
				return pickerForm(a, picker.Single(picker.SingleProps{Name: "picker"}, fieldset("horizontal", picker.RoleOption)))
			}),
		New(GroupPicker, "Multiple Selection Form",
			"A named multiple picker registered with a form.",
			func(a *Actions) reactive.Component {
				return pickerForm(a, picker.Multiple(picker.MultipleProps{Name: "picker"}, fieldset("horizontal", picker.RoleOption)))
			}),
		New(GroupPicker, "Synced Pickers",
			"Two pickers sharing one context key stay in sync.",
			func(a *Actions) reactive.Component {
				key := picker.NewMultipleKey()
				onChange := Handler[[]string](a, "onChange")
				return reactive.New("SyncedPickers", func(o *reactive.Owner) *vdom.VNode {
					return vdom.Div(
						picker.Multiple(picker.MultipleProps{ContextKey: key, OnChange: onChange}, fieldset("vertical", picker.SwitchOption)),
						picker.Multiple(picker.MultipleProps{ContextKey: key}, fieldset("horizontal", picker.ButtonOption)),
					)
				})
			}),
	}
}

// singleField holds the selection in component state and passes it to a
// controlled provider, like a form field would.
func singleField(title, description string, render func(*picker.Group) *vdom.VNode) Story {
	return New(GroupPicker, title, description, func(a *Actions) reactive.Component {
		onChange := Handler[string](a, "onChange")
		return reactive.New("SingleField", func(o *reactive.Owner) *vdom.VNode {
			st := reactive.UseState(o, "")
			value := st.Value
			return vdom.Fragment(picker.Single(picker.SingleProps{
				Value: &value,
				OnChange: func(v string) {
					st.Set(v)
					onChange(v)
				},
			}, render))
		})
	})
}

func multipleField(title, description string, render func(*picker.Group) *vdom.VNode) Story {
	return New(GroupPicker, title, description, func(a *Actions) reactive.Component {
		onChange := Handler[[]string](a, "onChange")
		return reactive.New("MultipleField", func(o *reactive.Owner) *vdom.VNode {
			st := reactive.UseState(o, []string{})
			value := st.Value
			return vdom.Fragment(picker.Multiple(picker.MultipleProps{
				Value: &value,
				OnChange: func(v []string) {
					st.Set(v)
					onChange(v)
				},
			}, render))
		})
	})
}

// pickerForm mounts field inside a fresh form and prints the submitted
// values under it.
func pickerForm(a *Actions, field reactive.Component) reactive.Component {
	return reactive.New("PickerForm", func(o *reactive.Owner) *vdom.VNode {
		ref := reactive.UseRef[*form.Form](o, nil)
		if ref.Current() == nil {
			f := form.New()
			f.OnChange(func(name string) {
				a.Record("form", f.Values().Encode())
			})
			ref.Set(f)
		}
		f := ref.Current()
		return vdom.Div(
			form.Provider(f, field),
			vdom.Pre(vdom.Data("form-values", ""), f.Values().Encode()),
		)
	})
}
