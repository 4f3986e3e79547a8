package visibility

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vango-dev/headless/pkg/atom"
	"github.com/vango-dev/headless/pkg/reactive"
	"github.com/vango-dev/headless/pkg/vdom"
	"github.com/vango-dev/headless/pkg/vtest"
)

func standard(props Props) reactive.Func {
	return Provider(props, func(h *Handle) *vdom.VNode {
		return vdom.Div(
			TriggerButton(h, "Click me to reveal content"),
			Region(h, vdom.Div("Revealed content")),
		)
	})
}

func panel(label, content string, keys map[string]*atom.Key[bool]) reactive.Func {
	return Provider(Props{}, func(h *Handle) *vdom.VNode {
		if keys != nil {
			keys[label] = h.Key()
		}
		return vdom.Div(
			TriggerButton(h, label),
			Region(h, vdom.P(content)),
		)
	})
}

func TestTriggerTogglesTarget(t *testing.T) {
	var changes []bool
	screen := vtest.Mount(standard(Props{OnChange: func(v bool) { changes = append(changes, v) }}))

	vtest.ExpectCount(t, screen, "region", 0)
	vtest.ExpectCount(t, screen, "region", 1, vtest.IncludeHidden())
	vtest.ExpectHidden(t, screen, "Revealed content")

	button := screen.GetByRole(t, "button", vtest.Name("Click me to reveal content"))
	if button.Attr("aria-expanded") != "false" {
		t.Errorf("aria-expanded = %q, want false", button.Attr("aria-expanded"))
	}

	screen.Click(button)
	region := screen.GetByRole(t, "region", vtest.Name("Click me to reveal content"))
	if region.Node.BoolAttr("hidden") {
		t.Error("visible region should not carry the hidden attribute")
	}
	vtest.ExpectVisible(t, screen, "Revealed content")

	screen.Click(screen.GetByRole(t, "button"))
	vtest.ExpectHidden(t, screen, "Revealed content")
	vtest.ExpectContains(t, screen.Tree(), " hidden")

	if !reflect.DeepEqual(changes, []bool{true, false}) {
		t.Errorf("changes = %v", changes)
	}
}

func TestTargetIsLabelledByTrigger(t *testing.T) {
	var h *Handle
	screen := vtest.Mount(Provider(Props{}, func(handle *Handle) *vdom.VNode {
		h = handle
		return vdom.Div(TriggerButton(handle, "Open"), Region(handle))
	}))

	button := screen.GetByRole(t, "button")
	region := screen.GetByRole(t, "region", vtest.IncludeHidden())

	if button.Attr("id") != h.TriggerID() || button.Attr("aria-controls") != h.ContentID() {
		t.Errorf("trigger attrs id=%q aria-controls=%q", button.Attr("id"), button.Attr("aria-controls"))
	}
	if region.Attr("id") != h.ContentID() || region.Attr("aria-labelledby") != h.TriggerID() {
		t.Errorf("target attrs id=%q aria-labelledby=%q", region.Attr("id"), region.Attr("aria-labelledby"))
	}
}

func TestIsVisibleSeedsAndResyncs(t *testing.T) {
	visible := true
	app := reactive.New("App", func(o *reactive.Owner) *vdom.VNode {
		v := visible
		return vdom.Div(standard(Props{IsVisible: &v}))
	})
	screen := vtest.Mount(app)

	vtest.ExpectVisible(t, screen, "Revealed content")

	screen.Click(screen.GetByRole(t, "button"))
	vtest.ExpectHidden(t, screen, "Revealed content")

	screen.Root().Invalidate()
	screen.Rerender()
	vtest.ExpectHidden(t, screen, "Revealed content")

	visible = false
	screen.Root().Invalidate()
	screen.Rerender()
	vtest.ExpectHidden(t, screen, "Revealed content")

	visible = true
	screen.Root().Invalidate()
	screen.Rerender()
	vtest.ExpectVisible(t, screen, "Revealed content")
}

func TestDefaultVisible(t *testing.T) {
	screen := vtest.Mount(standard(Props{DefaultVisible: true}))
	vtest.ExpectVisible(t, screen, "Revealed content")
}

func TestSharedKey(t *testing.T) {
	key := NewKey()
	trigger := func(label string) reactive.Func {
		return Provider(Props{ContextKey: key}, func(h *Handle) *vdom.VNode {
			return TriggerButton(h, label)
		})
	}
	app := reactive.New("SyncedProviders", func(o *reactive.Owner) *vdom.VNode {
		return vdom.Div(
			vdom.Div(trigger("Click me to reveal content")),
			vdom.Div(trigger("Click me to reveal the same content")),
			vdom.Div(Provider(Props{ContextKey: key}, func(h *Handle) *vdom.VNode {
				return Region(h, vdom.Div("Revealed content"))
			})),
		)
	})
	screen := vtest.Mount(app)

	vtest.ExpectHidden(t, screen, "Revealed content")

	screen.Click(screen.GetByRole(t, "button", vtest.Name("Click me to reveal content")))
	vtest.ExpectVisible(t, screen, "Revealed content")
	vtest.ExpectCount(t, screen, "button", 2)
	for _, b := range screen.QueryAllByRole("button") {
		if b.Attr("aria-expanded") != "true" {
			t.Errorf("%s: aria-expanded = %q", b.Name, b.Attr("aria-expanded"))
		}
	}

	screen.Click(screen.GetByRole(t, "button", vtest.Name("Click me to reveal the same content")))
	vtest.ExpectHidden(t, screen, "Revealed content")
}

func TestProvidersWithoutControllerAreIndependent(t *testing.T) {
	app := reactive.New("App", func(o *reactive.Owner) *vdom.VNode {
		return vdom.Div(panel("Reveal 1", "Content 1", nil), panel("Reveal 2", "Content 2", nil))
	})
	screen := vtest.Mount(app)

	screen.Click(screen.GetByRole(t, "button", vtest.Name("Reveal 1")))
	screen.Click(screen.GetByRole(t, "button", vtest.Name("Reveal 2")))

	vtest.ExpectCount(t, screen, "region", 2)
}

func TestContentUnmountsWhileHidden(t *testing.T) {
	mounted := 0
	details := reactive.New("Details", func(o *reactive.Owner) *vdom.VNode {
		reactive.OnMount(o, func() func() {
			mounted++
			return func() { mounted-- }
		})
		return vdom.P("Details")
	})
	screen := vtest.Mount(Provider(Props{DefaultVisible: true}, func(h *Handle) *vdom.VNode {
		return vdom.Div(TriggerButton(h, "Toggle"), h.Content(details))
	}))

	if mounted != 1 {
		t.Fatalf("mounted = %d, want 1", mounted)
	}

	screen.Click(screen.GetByRole(t, "button"))
	vtest.ExpectAbsent(t, screen, "Details")
	if mounted != 0 {
		t.Errorf("mounted = %d after hiding, want 0", mounted)
	}

	screen.Click(screen.GetByRole(t, "button"))
	vtest.ExpectVisible(t, screen, "Details")
	if mounted != 1 {
		t.Errorf("mounted = %d after showing, want 1", mounted)
	}
}

func TestNestedCollapseResetsInner(t *testing.T) {
	inception := Provider(Props{}, func(outer *Handle) *vdom.VNode {
		return vdom.Div(
			TriggerButton(outer, "Click me to reveal another visibility"),
			Region(outer, vdom.Div(Provider(Props{}, func(inner *Handle) *vdom.VNode {
				return vdom.Div(
					TriggerButton(inner, "Click me to reveal content"),
					Region(inner, inner.Content(vdom.Div("Revealed content"))),
				)
			}))),
		)
	})
	screen := vtest.Mount(inception)
	outerButton := func() *vtest.Element {
		return screen.GetByRole(t, "button", vtest.Name("Click me to reveal another visibility"))
	}

	vtest.ExpectCount(t, screen, "region", 2, vtest.IncludeHidden())
	vtest.ExpectAbsent(t, screen, "Revealed content")

	screen.Click(outerButton())
	vtest.ExpectCount(t, screen, "region", 1)

	screen.Click(screen.GetByRole(t, "button", vtest.Name("Click me to reveal content")))
	vtest.ExpectCount(t, screen, "region", 2)
	vtest.ExpectVisible(t, screen, "Revealed content")

	screen.Click(outerButton())
	vtest.ExpectCount(t, screen, "region", 0)
	vtest.ExpectCount(t, screen, "region", 2, vtest.IncludeHidden())
	vtest.ExpectAbsent(t, screen, "Revealed content")

	screen.Click(outerButton())
	vtest.ExpectCount(t, screen, "region", 1)
	vtest.ExpectAbsent(t, screen, "Revealed content")
	inner := screen.GetByRole(t, "region", vtest.Name("Click me to reveal content"), vtest.IncludeHidden())
	if inner.IsVisible() {
		t.Error("inner region should stay hidden after the outer reopens")
	}
}

func TestControlProviderMutualExclusion(t *testing.T) {
	keys := map[string]*atom.Key[bool]{}
	var selected []*atom.Key[bool]
	app := ControlProvider(ControlProps{OnChange: func(k *atom.Key[bool]) { selected = append(selected, k) }},
		vdom.Div(panel("Reveal 1", "Content 1", keys)),
		vdom.Div(panel("Reveal 2", "Content 2", keys)),
	)
	screen := vtest.Mount(app)

	vtest.ExpectCount(t, screen, "region", 2, vtest.IncludeHidden())

	screen.Click(screen.GetByRole(t, "button", vtest.Name("Reveal 1")))
	vtest.ExpectCount(t, screen, "region", 1, vtest.Name("Reveal 1"))
	vtest.ExpectCount(t, screen, "region", 1)

	screen.Click(screen.GetByRole(t, "button", vtest.Name("Reveal 2")))
	vtest.ExpectCount(t, screen, "region", 1, vtest.Name("Reveal 2"))
	vtest.ExpectCount(t, screen, "region", 1)

	screen.Click(screen.GetByRole(t, "button", vtest.Name("Reveal 2")))
	vtest.ExpectCount(t, screen, "region", 0)

	want := []*atom.Key[bool]{keys["Reveal 1"], keys["Reveal 2"], nil}
	if !reflect.DeepEqual(selected, want) {
		t.Errorf("selected = %v, want %v", selected, want)
	}
}

func keyedPanel(label, content string, props Props) reactive.Func {
	return Provider(props, func(h *Handle) *vdom.VNode {
		return vdom.Div(
			TriggerButton(h, label),
			Region(h, vdom.P(content)),
		)
	})
}

func TestControlProviderSharedKeyWrittenOutside(t *testing.T) {
	keyB := NewKey()
	var selected []*atom.Key[bool]
	var changesB []bool
	app := reactive.New("App", func(o *reactive.Owner) *vdom.VNode {
		return vdom.Div(
			ControlProvider(ControlProps{OnChange: func(k *atom.Key[bool]) { selected = append(selected, k) }},
				panel("Reveal 1", "Content 1", nil),
				keyedPanel("Reveal 2", "Content 2", Props{
					ContextKey: keyB,
					OnChange:   func(v bool) { changesB = append(changesB, v) },
				}),
			),
			Provider(Props{ContextKey: keyB}, func(h *Handle) *vdom.VNode {
				return TriggerButton(h, "Outside")
			}),
		)
	})
	screen := vtest.Mount(app)

	screen.Click(screen.GetByRole(t, "button", vtest.Name("Reveal 1")))
	vtest.ExpectVisible(t, screen, "Content 1")

	screen.Click(screen.GetByRole(t, "button", vtest.Name("Outside")))
	vtest.ExpectHidden(t, screen, "Content 1")
	vtest.ExpectVisible(t, screen, "Content 2")

	if len(selected) != 2 || selected[1] != keyB {
		t.Errorf("selected = %v, want Reveal 1 then %v", selected, keyB)
	}
	if !reflect.DeepEqual(changesB, []bool{true}) {
		t.Errorf("changes = %v, want [true]", changesB)
	}
}

func TestControlProviderIsVisibleChange(t *testing.T) {
	showB := false
	app := reactive.New("App", func(o *reactive.Owner) *vdom.VNode {
		v := showB
		return vdom.Div(
			ControlProvider(ControlProps{},
				panel("Reveal 1", "Content 1", nil),
				keyedPanel("Reveal 2", "Content 2", Props{IsVisible: &v}),
			),
		)
	})
	screen := vtest.Mount(app)

	screen.Click(screen.GetByRole(t, "button", vtest.Name("Reveal 1")))
	vtest.ExpectVisible(t, screen, "Content 1")
	vtest.ExpectHidden(t, screen, "Content 2")

	showB = true
	screen.Root().Invalidate()
	screen.Rerender()

	vtest.ExpectHidden(t, screen, "Content 1")
	vtest.ExpectVisible(t, screen, "Content 2")
}

func TestLinkedTriggerIntoControlledProvider(t *testing.T) {
	keyB := NewKey()
	app := reactive.New("App", func(o *reactive.Owner) *vdom.VNode {
		return vdom.Div(
			ControlProvider(ControlProps{},
				panel("Reveal 1", "Content 1", nil),
				keyedPanel("Reveal 2", "Content 2", Props{ContextKey: keyB}),
			),
			Provider(Props{}, func(h *Handle) *vdom.VNode {
				return TriggerButton(h, "Open 2", LinkedTo(keyB))
			}),
		)
	})
	screen := vtest.Mount(app)

	screen.Click(screen.GetByRole(t, "button", vtest.Name("Reveal 1")))
	screen.Click(screen.GetByRole(t, "button", vtest.Name("Open 2")))

	vtest.ExpectHidden(t, screen, "Content 1")
	vtest.ExpectVisible(t, screen, "Content 2")
	vtest.ExpectCount(t, screen, "region", 1)
}

func TestControlProviderAtMostOneVisible(t *testing.T) {
	labels := []string{"Reveal 1", "Reveal 2", "Reveal 3"}
	app := ControlProvider(ControlProps{},
		panel(labels[0], "Content 1", nil),
		panel(labels[1], "Content 2", nil),
		panel(labels[2], "Content 3", nil),
	)
	screen := vtest.Mount(app)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 50; i++ {
		label := labels[rng.Intn(len(labels))]
		screen.Click(screen.GetByRole(t, "button", vtest.Name(label)))
		if n := len(screen.QueryAllByRole("region")); n > 1 {
			t.Fatalf("step %d: %d regions visible", i, n)
		}
	}
}

func TestSharedControlKey(t *testing.T) {
	key := NewControlKey()
	app := reactive.New("App", func(o *reactive.Owner) *vdom.VNode {
		return vdom.Div(
			ControlProvider(ControlProps{ContextKey: key}, panel("Reveal 1", "Content 1", nil)),
			ControlProvider(ControlProps{ContextKey: key}, panel("Reveal 2", "Content 2", nil)),
		)
	})
	screen := vtest.Mount(app)

	screen.Click(screen.GetByRole(t, "button", vtest.Name("Reveal 1")))
	screen.Click(screen.GetByRole(t, "button", vtest.Name("Reveal 2")))

	vtest.ExpectHidden(t, screen, "Content 1")
	vtest.ExpectVisible(t, screen, "Content 2")
}

func TestHideOnEscapeHidesInnermost(t *testing.T) {
	app := Provider(Props{}, func(outer *Handle) *vdom.VNode {
		return vdom.Div(
			TriggerButton(outer, "Outer"),
			Region(outer,
				Provider(Props{}, func(inner *Handle) *vdom.VNode {
					return vdom.Div(
						TriggerButton(inner, "Inner"),
						HideOnEscape(inner),
						Region(inner, vdom.P("Inner content")),
					)
				}),
				vdom.P("Outer content"),
			),
			HideOnEscape(outer),
		)
	})
	screen := vtest.Mount(app)

	if screen.Keyboard("Escape") {
		t.Error("escape with nothing visible should not be handled")
	}

	screen.Click(screen.GetByRole(t, "button", vtest.Name("Outer")))
	screen.Click(screen.GetByRole(t, "button", vtest.Name("Inner")))
	vtest.ExpectVisible(t, screen, "Inner content")

	if !screen.Keyboard("Escape") {
		t.Fatal("escape should be handled")
	}
	vtest.ExpectHidden(t, screen, "Inner content")
	vtest.ExpectVisible(t, screen, "Outer content")

	screen.Keyboard("Escape")
	vtest.ExpectHidden(t, screen, "Outer content")

	screen.Click(screen.GetByRole(t, "button", vtest.Name("Outer")))
	screen.Keyboard("Enter")
	vtest.ExpectVisible(t, screen, "Outer content")
}

func TestHideOnEscapeRemovesContent(t *testing.T) {
	app := Provider(Props{}, func(h *Handle) *vdom.VNode {
		return vdom.Div(
			TriggerButton(h, "Click me to reveal content"),
			HideOnEscape(h),
			vdom.Div(h.Target(), h.Content(vdom.Div(h.Target(), "Revealed content"))),
		)
	})
	screen := vtest.Mount(app)

	vtest.ExpectAbsent(t, screen, "Revealed content")
	screen.Click(screen.GetByRole(t, "button"))
	vtest.ExpectVisible(t, screen, "Revealed content")

	screen.Keyboard("Escape")
	vtest.ExpectAbsent(t, screen, "Revealed content")
}

func TestEscapeListenerRemovedOnUnmount(t *testing.T) {
	screen := vtest.Mount(Provider(Props{DefaultVisible: true}, func(h *Handle) *vdom.VNode {
		return vdom.Div(HideOnEscape(h), Region(h, "Content"))
	}))

	screen.Unmount()
	if screen.Keyboard("Escape") {
		t.Error("unmounted listener should not handle escape")
	}
}

func TestDialogIsTargetAndTrigger(t *testing.T) {
	app := Provider(Props{}, func(h *Handle) *vdom.VNode {
		return vdom.Div(
			TriggerButton(h, "Click me to reveal content"),
			Dialog(h, "Click me to hide content"),
		)
	})
	screen := vtest.Mount(app)

	vtest.ExpectCount(t, screen, "dialog", 0)

	screen.Click(screen.GetByRole(t, "button"))
	dialog := screen.GetByRole(t, "dialog")
	if dialog.Attr("aria-modal") != "true" {
		t.Errorf("aria-modal = %q", dialog.Attr("aria-modal"))
	}

	screen.Click(screen.GetByText(t, "Click me to hide content"))
	vtest.ExpectCount(t, screen, "dialog", 0)
	vtest.ExpectCount(t, screen, "dialog", 1, vtest.IncludeHidden())
}

func TestHover(t *testing.T) {
	tests := []struct {
		name    string
		trigger func(h *Handle) *vdom.VNode
	}{
		{"capability", func(h *Handle) *vdom.VNode {
			return TriggerButton(h, "Hover me", OnHover())
		}},
		{"consumer", func(h *Handle) *vdom.VNode {
			return h.Consume(func(b Binding) *vdom.VNode {
				return vdom.Button(
					vdom.ID(b.TriggerID),
					vdom.AriaControls(b.ContentID),
					vdom.OnMouseEnter(b.Show),
					vdom.OnMouseLeave(b.Hide),
					"Hover me",
				)
			})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := vtest.Mount(Provider(Props{}, func(h *Handle) *vdom.VNode {
				return vdom.Div(tt.trigger(h), Region(h, vdom.P("Tooltip")))
			}))

			screen.Hover(screen.GetByRole(t, "button"))
			vtest.ExpectVisible(t, screen, "Tooltip")

			screen.Unhover(screen.GetByRole(t, "button"))
			vtest.ExpectHidden(t, screen, "Tooltip")

			screen.Click(screen.GetByRole(t, "button"))
			vtest.ExpectHidden(t, screen, "Tooltip")
		})
	}
}

func TestLinkedTrigger(t *testing.T) {
	key := NewKey()
	var changes []bool
	app := reactive.New("SwitchVisibility", func(o *reactive.Owner) *vdom.VNode {
		return vdom.Div(
			Provider(Props{}, func(h *Handle) *vdom.VNode {
				return vdom.Div(
					TriggerButton(h, "Click me to reveal content 1"),
					Region(h,
						vdom.Div("Revealed content 1"),
						vdom.Div(vdom.OnClick(h.Hide), TriggerButton(h, "Click me to reveal content 2", LinkedTo(key))),
					),
				)
			}),
			Provider(Props{ContextKey: key, OnChange: func(v bool) { changes = append(changes, v) }}, func(h *Handle) *vdom.VNode {
				return Dialog(h, vdom.Div("Revealed content 2"))
			}),
		)
	})
	screen := vtest.Mount(app)

	screen.Click(screen.GetByRole(t, "button", vtest.Name("Click me to reveal content 1")))
	vtest.ExpectCount(t, screen, "region", 1)
	linked := screen.GetByRole(t, "button", vtest.Name("Click me to reveal content 2"))
	if linked.Attr("aria-expanded") != "false" || linked.Attr("id") != "" {
		t.Errorf("linked trigger attrs: %v", linked.Node.Props)
	}

	screen.Click(linked)
	vtest.ExpectVisible(t, screen, "Revealed content 2")
	vtest.ExpectCount(t, screen, "region", 0)
	if !atom.Get(screen.Store(), key) {
		t.Error("linked key should be visible")
	}

	screen.Click(screen.GetByText(t, "Revealed content 2"))
	vtest.ExpectHidden(t, screen, "Revealed content 2")
	if !reflect.DeepEqual(changes, []bool{true, false}) {
		t.Errorf("linked provider changes = %v, want [true false]", changes)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	store := atom.NewStore()
	a, b := NewKey(), NewKey()
	atom.Set(store, a, true)

	if atom.Get(store, b) {
		t.Error("writing one key changed another")
	}
	if NewControlKey().Default() != nil {
		t.Error("control key should start with no selection")
	}
}
