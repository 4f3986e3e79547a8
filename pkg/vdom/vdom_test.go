package vdom

import "testing"

func TestCreateElement(t *testing.T) {
	clicked := false
	node := Button(
		Type("button"),
		AriaPressed(true),
		nil,
		AttrIf(false, Hidden(true)),
		Key("first"),
		OnClick(func() { clicked = true }),
		"First",
	)

	if node.Kind != KindElement || node.Tag != "button" {
		t.Fatalf("got kind=%v tag=%q", node.Kind, node.Tag)
	}
	if node.Key != "first" {
		t.Errorf("Key = %q, want first", node.Key)
	}
	if _, ok := node.Props["key"]; ok {
		t.Error("key should not be stored in props")
	}
	if _, ok := node.Props["hidden"]; ok {
		t.Error("AttrIf(false) should not set hidden")
	}
	if got := node.StringAttr("aria-pressed"); got != "true" {
		t.Errorf("aria-pressed = %q, want true", got)
	}
	if !node.BoolAttr("aria-pressed") {
		t.Error("BoolAttr(aria-pressed) = false, want true")
	}
	if len(node.Children) != 1 || node.Children[0].Text != "First" {
		t.Errorf("children = %+v", node.Children)
	}
	if !node.IsInteractive() {
		t.Error("button with onclick should be interactive")
	}
	if !Invoke(node.Handler("click"), Event{Type: "click"}) || !clicked {
		t.Error("click handler was not invoked")
	}
}

func TestAriaStatesRenderTokens(t *testing.T) {
	tests := []struct {
		name string
		attr Attr
		key  string
		want string
	}{
		{"checked", AriaChecked(false), "aria-checked", "false"},
		{"selected", AriaSelected(true), "aria-selected", "true"},
		{"expanded", AriaExpanded(true), "aria-expanded", "true"},
		{"hidden", AriaHidden(false), "aria-hidden", "false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.key {
				t.Errorf("Key = %q, want %q", tt.attr.Key, tt.key)
			}
			if tt.attr.Value != tt.want {
				t.Errorf("Value = %v, want %q", tt.attr.Value, tt.want)
			}
		})
	}
}

func TestFragmentAndTextContent(t *testing.T) {
	node := Div(
		Span("Revealed"),
		Fragment(nil, "content", []*VNode{Text("  here ")}),
	)
	if got := TextContent(node); got != "Revealed content here" {
		t.Errorf("TextContent = %q", got)
	}
}

func TestInvokeKeyboardHandler(t *testing.T) {
	var key string
	ok := Invoke(func(ev Event) { key = ev.Key }, Event{Type: "keydown", Key: "Escape"})
	if !ok || key != "Escape" {
		t.Errorf("Invoke = %v, key = %q", ok, key)
	}
	if Invoke("not a handler", Event{}) {
		t.Error("Invoke should reject non-function handlers")
	}
}

func TestAssignHIDs(t *testing.T) {
	tree := Div(
		Button(OnClick(func() {}), "a"),
		Span("static"),
		Div(Button(OnClick(func() {}), "b")),
	)
	AssignHIDs(tree, NewHIDGenerator())

	if CountInteractive(tree) != 2 {
		t.Fatalf("CountInteractive = %d, want 2", CountInteractive(tree))
	}
	if n := FindByHID(tree, "h2"); n == nil || TextContent(n) != "b" {
		t.Errorf("FindByHID(h2) = %+v", n)
	}
	if FindByHID(tree, "h3") != nil {
		t.Error("FindByHID(h3) should be nil")
	}
}

func TestCreateElementSpreadsBundles(t *testing.T) {
	bundle := []any{ID("panel"), Hidden(true), OnClick(func() {}), []any{Role("region")}}
	node := Div(bundle, "content")

	if node.StringAttr("id") != "panel" || node.StringAttr("role") != "region" {
		t.Errorf("props = %v", node.Props)
	}
	if !node.BoolAttr("hidden") || node.Handler("click") == nil {
		t.Errorf("props = %v", node.Props)
	}
	if len(node.Children) != 1 {
		t.Errorf("children = %d, want 1", len(node.Children))
	}
}
