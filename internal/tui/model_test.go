package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vango-dev/headless/internal/stories"
)

func story(t *testing.T, id string) stories.Story {
	t.Helper()
	st, ok := stories.Default().Get(id)
	if !ok {
		t.Fatalf("story %q not registered", id)
	}
	return st
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(key(k))
	}
	return cmd
}

func TestClickSelectsOption(t *testing.T) {
	m := New(story(t, "picker--single-selection-input"), nil)
	if len(m.elements) == 0 {
		t.Fatal("expected interactive elements")
	}

	press(m, "down", "enter")
	checked := 0
	for _, el := range m.elements {
		if el.IsChecked() {
			checked++
		}
	}
	if checked != 1 || !m.Current().IsChecked() {
		t.Fatalf("checked=%d, current checked=%v", checked, m.Current().IsChecked())
	}
	if got := m.Actions().Values("onChange"); len(got) != 1 {
		t.Fatalf("onChange=%v, want one value", got)
	}
	if !strings.Contains(m.View(), "[x] checked") {
		t.Fatalf("view does not show the checked state:\n%s", m.View())
	}
}

func TestCursorBounds(t *testing.T) {
	m := New(story(t, "visibility--standard"), nil)
	press(m, "up", "up")
	if m.cursor != 0 {
		t.Fatalf("cursor=%d, want 0", m.cursor)
	}
	for range 10 {
		press(m, "j")
	}
	if m.cursor != len(m.elements)-1 {
		t.Fatalf("cursor=%d, want %d", m.cursor, len(m.elements)-1)
	}
}

func TestEscapeHidesOverlay(t *testing.T) {
	m := New(story(t, "visibility--hide-on-escape-key"), nil)
	press(m, "enter")
	if m.Screen().QueryByText("Revealed content") == nil {
		t.Fatal("overlay not shown after click")
	}

	press(m, "esc")
	if m.Screen().QueryByText("Revealed content") != nil {
		t.Fatal("Escape did not hide the overlay")
	}
	if got := m.Actions().Values("onChange"); len(got) != 2 || got[1] != false {
		t.Fatalf("onChange=%v, want [true false]", got)
	}
}

func TestEscapeUnhandled(t *testing.T) {
	m := New(story(t, "visibility--standard"), nil)
	press(m, "esc")
	if !strings.Contains(m.View(), "nothing handled Escape") {
		t.Fatalf("missing status:\n%s", m.View())
	}
}

func TestHoverToggles(t *testing.T) {
	m := New(story(t, "visibility--show-on-hover"), nil)
	el := m.Current()
	if el == nil {
		t.Fatal("no hover target")
	}

	press(m, "h")
	if !strings.Contains(m.View(), "hovered") {
		t.Fatalf("view does not mark the hovered element:\n%s", m.View())
	}
	if got := m.Actions().Values("onChange"); len(got) != 1 || got[0] != true {
		t.Fatalf("onChange=%v, want [true]", got)
	}

	press(m, "h")
	if m.hovered != "" {
		t.Fatalf("hovered=%q, want none", m.hovered)
	}
	if got := m.Actions().Values("onChange"); len(got) != 2 || got[1] != false {
		t.Fatalf("onChange=%v, want [true false]", got)
	}
}

func TestResetRemounts(t *testing.T) {
	m := New(story(t, "visibility--standard"), nil)
	press(m, "enter")
	if len(m.Actions().Entries()) == 0 {
		t.Fatal("click recorded no action")
	}

	press(m, "r")
	if len(m.Actions().Entries()) != 0 {
		t.Fatal("reset kept the old action log")
	}
	if !strings.Contains(m.View(), "story reset") {
		t.Fatal("missing reset status")
	}
	if !strings.Contains(m.View(), "hidden") {
		t.Fatalf("region should be hidden after reset:\n%s", m.View())
	}
}

func TestQuit(t *testing.T) {
	m := New(story(t, "visibility--standard"), nil)
	cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit")
	}
}

func TestViewListsActions(t *testing.T) {
	m := New(story(t, "visibility--standard"), nil)
	if !strings.Contains(m.View(), "Actions: none") {
		t.Fatal("expected an empty action log")
	}
	press(m, "enter")
	if !strings.Contains(m.View(), "onChange: true") {
		t.Fatalf("action log missing:\n%s", m.View())
	}
}
