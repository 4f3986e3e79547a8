package stories

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vango-dev/headless/pkg/vtest"
)

func mount(t *testing.T, id string) (*vtest.Screen, *Actions) {
	t.Helper()
	story, ok := Default().Get(id)
	if !ok {
		t.Fatalf("story %q not registered", id)
	}
	comp, actions := story.Mount(nil)
	return vtest.Mount(comp), actions
}

func TestKebab(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Picker", "picker"},
		{"Single Selection Input", "single-selection-input"},
		{"Show on Hover", "show-on-hover"},
		{"SyncedPickers", "synced-pickers"},
		{"Hide on Escape Key", "hide-on-escape-key"},
	}
	for _, tt := range tests {
		if got := kebab(tt.in); got != tt.want {
			t.Errorf("kebab(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg := Default()

	if got := len(reg.Group(GroupPicker)); got != 17 {
		t.Errorf("picker stories = %d, want 17", got)
	}
	if got := len(reg.Group(GroupVisibility)); got != 13 {
		t.Errorf("visibility stories = %d, want 13", got)
	}
	if got := reg.Groups(); !reflect.DeepEqual(got, []string{"Picker", "Visibility"}) {
		t.Errorf("Groups() = %v", got)
	}

	seen := make(map[string]bool)
	for _, s := range reg.All() {
		if seen[s.ID] {
			t.Errorf("duplicate id %q", s.ID)
		}
		seen[s.ID] = true
		if !strings.HasPrefix(s.ID, strings.ToLower(s.Group)+"--") {
			t.Errorf("id %q does not start with its group", s.ID)
		}
	}
}

func TestRegistryReplacesByID(t *testing.T) {
	reg := NewRegistry(Picker()[:2]...)
	replaced := Picker()[0]
	replaced.Description = "changed"
	reg.Register(replaced)

	if got := len(reg.All()); got != 2 {
		t.Fatalf("len = %d, want 2", got)
	}
	if s, _ := reg.Get(replaced.ID); s.Description != "changed" {
		t.Errorf("Description = %q", s.Description)
	}
	if _, ok := reg.Get("missing"); ok {
		t.Error("Get(missing) should fail")
	}
}

func TestEveryStoryMounts(t *testing.T) {
	for _, s := range Default().All() {
		t.Run(s.ID, func(t *testing.T) {
			comp, _ := s.Mount(nil)
			screen := vtest.Mount(comp)
			if screen.HTML() == "" {
				t.Error("story rendered nothing")
			}
			screen.Unmount()
		})
	}
}

func TestSingleSelectionInput(t *testing.T) {
	screen, actions := mount(t, "picker--single-selection-input")

	vtest.ExpectCount(t, screen, "radio", 3)
	screen.Click(screen.GetByRole(t, "radio", vtest.Name("First")))
	screen.Click(screen.GetByRole(t, "radio", vtest.Name("Second")))
	screen.Click(screen.GetByRole(t, "radio", vtest.Name("Second")))

	vtest.ExpectCount(t, screen, "radio", 1, vtest.Checked(true))
	if !screen.GetByRole(t, "radio", vtest.Name("Second")).IsChecked() {
		t.Error("Second should be checked")
	}
	want := []any{"first", "second", "second"}
	if got := actions.Values("onChange"); !reflect.DeepEqual(got, want) {
		t.Errorf("onChange = %v, want %v", got, want)
	}
}

func TestMultipleSelectionButton(t *testing.T) {
	screen, actions := mount(t, "picker--multiple-selection-button")

	for _, name := range []string{"First", "Second", "Third", "First"} {
		screen.Click(screen.GetByRole(t, "button", vtest.Name(name)))
	}

	vtest.ExpectCount(t, screen, "button", 2, vtest.Pressed(true))
	got := actions.Values("onChange")
	if len(got) != 4 || !reflect.DeepEqual(got[3], []string{"second", "third"}) {
		t.Errorf("onChange = %v", got)
	}
}

func TestControlledStoryKeepsValue(t *testing.T) {
	screen, actions := mount(t, "picker--single-selection-controlled")

	screen.Click(screen.GetByRole(t, "radio", vtest.Name("First")))

	vtest.ExpectCount(t, screen, "radio", 0, vtest.Checked(true))
	if got := actions.Values("onChange"); !reflect.DeepEqual(got, []any{"first"}) {
		t.Errorf("onChange = %v", got)
	}
}

func TestFormStoryShowsValues(t *testing.T) {
	screen, _ := mount(t, "picker--multiple-selection-form")

	screen.Click(screen.GetByRole(t, "checkbox", vtest.Name("First")))
	screen.Click(screen.GetByRole(t, "checkbox", vtest.Name("Third")))

	vtest.ExpectContains(t, screen.Tree(), "picker=first&amp;picker=third")
}

func TestSyncedPickersStory(t *testing.T) {
	screen, _ := mount(t, "picker--synced-pickers")

	screen.Click(screen.GetByRole(t, "button", vtest.Name("Third")))

	if !screen.GetByRole(t, "switch", vtest.Name("Third")).IsChecked() {
		t.Error("switch picker should follow the button picker")
	}
}

func TestStandardStory(t *testing.T) {
	screen, actions := mount(t, "visibility--standard")

	vtest.ExpectCount(t, screen, "region", 0)
	screen.Click(screen.GetByRole(t, "button"))
	vtest.ExpectCount(t, screen, "region", 1)
	screen.Click(screen.GetByRole(t, "button"))
	vtest.ExpectCount(t, screen, "region", 0)

	if got := actions.Values("onChange"); !reflect.DeepEqual(got, []any{true, false}) {
		t.Errorf("onChange = %v", got)
	}
}

func TestTranslatedPropsStory(t *testing.T) {
	screen, _ := mount(t, "visibility--translated-props")

	vtest.ExpectCount(t, screen, "region", 0)
	screen.Click(screen.GetByRole(t, "button"))
	vtest.ExpectVisible(t, screen, "Revealed content")
}

func TestTargetWithTargetStory(t *testing.T) {
	screen, _ := mount(t, "visibility--target-with-target")

	vtest.ExpectAbsent(t, screen, "Revealed content")
	screen.Click(screen.GetByRole(t, "button"))
	vtest.ExpectVisible(t, screen, "Revealed content")
	screen.Click(screen.GetByText(t, "Revealed content"))
	vtest.ExpectAbsent(t, screen, "Revealed content")
}

func TestMutuallyExclusiveStory(t *testing.T) {
	screen, _ := mount(t, "visibility--mutually-exclusive")

	screen.Click(screen.GetByRole(t, "button", vtest.Name("Click me to reveal content 1")))
	screen.Click(screen.GetByRole(t, "button", vtest.Name("Click me to reveal content 2")))

	vtest.ExpectHidden(t, screen, "Revealed content 1")
	vtest.ExpectVisible(t, screen, "Revealed content 2")
}

func TestControlledProvidersStory(t *testing.T) {
	screen, actions := mount(t, "visibility--controlled-providers")

	screen.Click(screen.GetByRole(t, "button", vtest.Name("Click me to reveal content 1")))
	screen.Click(screen.GetByRole(t, "button", vtest.Name("Click me to reveal content 2")))
	screen.Click(screen.GetByRole(t, "button", vtest.Name("Click me to reveal content 2")))

	want := []any{"content-1", "content-2", ""}
	if got := actions.Values("control"); !reflect.DeepEqual(got, want) {
		t.Errorf("control = %v, want %v", got, want)
	}
}

func TestShowOnHoverStory(t *testing.T) {
	screen, _ := mount(t, "visibility--show-on-hover")

	screen.Hover(screen.GetByRole(t, "button"))
	vtest.ExpectVisible(t, screen, "Revealed content")
	screen.Unhover(screen.GetByRole(t, "button"))
	vtest.ExpectHidden(t, screen, "Revealed content")
}

func TestSwitchVisibilityStory(t *testing.T) {
	screen, actions := mount(t, "visibility--switch-visibility")

	screen.Click(screen.GetByRole(t, "button", vtest.Name("Click me to reveal content 1")))
	screen.Click(screen.GetByRole(t, "button", vtest.Name("Click me to reveal content 2")))

	vtest.ExpectHidden(t, screen, "Revealed content 1")
	vtest.ExpectVisible(t, screen, "Revealed content 2")

	screen.Click(screen.GetByText(t, "Revealed content 2"))
	vtest.ExpectHidden(t, screen, "Revealed content 2")

	if got := actions.Values("onChange"); !reflect.DeepEqual(got, []any{true, false}) {
		t.Errorf("onChange = %v, want [true false]", got)
	}
}

func TestInceptionStory(t *testing.T) {
	screen, actions := mount(t, "visibility--inception")
	outer := func() *vtest.Element {
		return screen.GetByRole(t, "button", vtest.Name("Click me to reveal another visibility"))
	}

	screen.Click(outer())
	screen.Click(screen.GetByRole(t, "button", vtest.Name("Click me to reveal content")))
	vtest.ExpectVisible(t, screen, "Revealed content")

	screen.Click(outer())
	screen.Click(outer())
	vtest.ExpectHidden(t, screen, "Revealed content")

	if got := actions.Values("inner"); !reflect.DeepEqual(got, []any{true, false}) {
		t.Errorf("inner = %v", got)
	}
}

func TestHideOnEscapeKeyStory(t *testing.T) {
	screen, _ := mount(t, "visibility--hide-on-escape-key")

	screen.Click(screen.GetByRole(t, "button"))
	vtest.ExpectVisible(t, screen, "Revealed content")
	screen.Keyboard("Escape")
	vtest.ExpectAbsent(t, screen, "Revealed content")
}
