package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vango-dev/headless/internal/stories"
	"github.com/vango-dev/headless/pkg/vtest"
)

// maxActions is how many recent actions the view lists.
const maxActions = 6

// Model explores one mounted story from the terminal.
type Model struct {
	story   stories.Story
	logger  *slog.Logger
	screen  *vtest.Screen
	actions *stories.Actions

	elements []*vtest.Element
	cursor   int
	hovered  string // HID of the element under the pointer
	status   string
	width    int
}

// New mounts story and returns a model positioned on its first
// interactive element. A nil logger discards logs.
func New(story stories.Story, logger *slog.Logger) *Model {
	m := &Model{story: story, logger: logger}
	m.mount()
	return m
}

func (m *Model) mount() {
	comp, actions := m.story.Mount(m.logger)
	m.actions = actions
	m.screen = vtest.Mount(comp)
	m.hovered = ""
	m.cursor = 0
	m.refresh()
}

// refresh re-queries the interactive elements after the tree changed.
func (m *Model) refresh() {
	m.elements = m.screen.QueryAllInteractive()
	if m.cursor >= len(m.elements) {
		m.cursor = len(m.elements) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Screen returns the mounted story.
func (m *Model) Screen() *vtest.Screen {
	return m.screen
}

// Actions returns the story's action log.
func (m *Model) Actions() *stories.Actions {
	return m.actions
}

// Current returns the element under the cursor, or nil.
func (m *Model) Current() *vtest.Element {
	if m.cursor < len(m.elements) {
		return m.elements[m.cursor]
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		m.status = ""
		switch msg.String() {
		case "q", "ctrl+c":
			m.screen.Unmount()
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.elements)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.click()
		case "h":
			m.toggleHover()
		case "esc":
			if !m.screen.Keyboard("Escape") {
				m.status = "nothing handled Escape"
			}
			m.refresh()
		case "r":
			m.screen.Unmount()
			m.mount()
			m.status = "story reset"
		}
	}
	return m, nil
}

func (m *Model) click() {
	el := m.Current()
	if el == nil {
		m.status = "nothing to click"
		return
	}
	if !m.screen.Click(el) {
		m.status = "click not handled"
	}
	m.refresh()
}

// toggleHover moves the pointer onto the current element, or off it when it
// is already there.
func (m *Model) toggleHover() {
	el := m.Current()
	if el == nil {
		return
	}
	if prev := m.find(m.hovered); prev != nil {
		m.screen.Unhover(prev)
	}
	if m.hovered == el.Node.HID {
		m.hovered = ""
	} else {
		m.screen.Hover(el)
		m.hovered = el.Node.HID
	}
	m.refresh()
}

func (m *Model) find(hid string) *vtest.Element {
	if hid == "" {
		return nil
	}
	for _, el := range m.screen.QueryAllInteractive(vtest.IncludeHidden()) {
		if el.Node.HID == hid {
			return el
		}
	}
	return nil
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.story.Group+" / "+m.story.Title) + "\n")
	if m.story.Description != "" {
		b.WriteString(helpStyle.Render(m.story.Description) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Elements") + "\n")
	if len(m.elements) == 0 {
		b.WriteString(offStyle.Render("  (none)") + "\n")
	}
	for i, el := range m.elements {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("▶ ")
		}
		b.WriteString(marker + elementLine(el, el.Node.HID == m.hovered) + "\n")
	}

	if regions := m.regions(); len(regions) > 0 {
		b.WriteString("\n" + headerStyle.Render("Content") + "\n")
		for _, el := range regions {
			b.WriteString("  " + regionLine(el) + "\n")
		}
	}

	b.WriteString("\n" + actionsStyle.Render(m.actionLines()) + "\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(helpStyle.Render("[↑/↓] Move  [enter] Click  [h] Hover  [esc] Escape  [r] Reset  [q] Quit"))
	return b.String()
}

func (m *Model) regions() []*vtest.Element {
	var out []*vtest.Element
	for _, role := range []string{"region", "dialog"} {
		out = append(out, m.screen.QueryAllByRole(role, vtest.IncludeHidden())...)
	}
	return out
}

func (m *Model) actionLines() string {
	entries := m.actions.Entries()
	if len(entries) == 0 {
		return "Actions: none"
	}
	if len(entries) > maxActions {
		entries = entries[len(entries)-maxActions:]
	}
	lines := []string{"Actions:"}
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s: %v", e.Name, e.Value))
	}
	return strings.Join(lines, "\n")
}

func elementLine(el *vtest.Element, hovered bool) string {
	role := el.Role
	if role == "" {
		role = el.Node.Tag
	}
	name := el.Name
	if name == "" {
		name = el.Text()
	}
	line := fmt.Sprintf("%-10s %s", role, name)

	var states []string
	switch role {
	case "radio", "checkbox", "switch":
		states = append(states, flag("checked", el.IsChecked()))
	case "option":
		states = append(states, flag("selected", el.IsSelected()))
	default:
		if el.Attr("aria-pressed") != "" {
			states = append(states, flag("pressed", el.IsPressed()))
		}
	}
	if v := el.Attr("aria-expanded"); v != "" {
		states = append(states, flag("expanded", v == "true"))
	}
	if hovered {
		states = append(states, hoverStyle.Render("hovered"))
	}
	if len(states) > 0 {
		line += "  " + strings.Join(states, " ")
	}
	return line
}

func regionLine(el *vtest.Element) string {
	text := el.Text()
	if !el.IsVisible() {
		return hiddenStyle.Render(fmt.Sprintf("%-10s hidden", el.Role))
	}
	return fmt.Sprintf("%-10s %s", el.Role, onStyle.Render(text))
}

func flag(name string, on bool) string {
	if on {
		return onStyle.Render("[x] " + name)
	}
	return offStyle.Render("[ ] " + name)
}

// Run runs the explorer for story until the user quits or ctx is done.
func Run(ctx context.Context, story stories.Story, in io.Reader, out io.Writer, logger *slog.Logger) error {
	m := New(story, logger)
	defer m.screen.Unmount()

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
