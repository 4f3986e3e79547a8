package scenario

import (
	"github.com/vango-dev/headless/internal/stories"
	"github.com/vango-dev/headless/pkg/vtest"
)

// environment returns the functions expectations can call. Every call
// queries the current tree.
func environment(screen *vtest.Screen, actions *stories.Actions) map[string]any {
	find := func(role, name string) *vtest.Element {
		return screen.QueryByRole(role, vtest.Name(name), vtest.IncludeHidden())
	}
	countWith := func(role string, opts ...vtest.QueryOption) int {
		return len(screen.QueryAllByRole(role, opts...))
	}

	return map[string]any{
		// count returns the number of visible elements with role.
		"count": func(role string) int {
			return countWith(role)
		},
		// countAll includes hidden elements.
		"countAll": func(role string) int {
			return countWith(role, vtest.IncludeHidden())
		},
		"countChecked": func(role string) int {
			return countWith(role, vtest.Checked(true))
		},
		"countPressed": func(role string) int {
			return countWith(role, vtest.Pressed(true))
		},
		"countSelected": func(role string) int {
			return countWith(role, vtest.Selected(true))
		},
		"checked": func(role, name string) bool {
			el := find(role, name)
			return el != nil && el.IsChecked()
		},
		"pressed": func(role, name string) bool {
			el := find(role, name)
			return el != nil && el.IsPressed()
		},
		"selected": func(role, name string) bool {
			el := find(role, name)
			return el != nil && el.IsSelected()
		},
		"expanded": func(role, name string) bool {
			el := find(role, name)
			return el != nil && el.Attr("aria-expanded") == "true"
		},
		"attr": func(role, name, attr string) string {
			el := find(role, name)
			if el == nil {
				return ""
			}
			return el.Attr(attr)
		},
		"visible": func(text string) bool {
			return screen.QueryByText(text).IsVisible()
		},
		"hidden": func(text string) bool {
			el := screen.QueryByText(text)
			return el.InDocument() && !el.IsVisible()
		},
		"inDocument": func(text string) bool {
			return screen.QueryByText(text).InDocument()
		},
		// actions returns the values recorded under name, oldest first.
		"actions": func(name string) []any {
			return normalize(actions.Values(name))
		},
		"lastAction": func(name string) any {
			values := actions.Values(name)
			if len(values) == 0 {
				return nil
			}
			return normalize(values[len(values)-1:])[0]
		},
	}
}

// normalize turns []string values into []any so they compare equal to expr
// array literals.
func normalize(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		if s, ok := v.([]string); ok {
			list := make([]any, len(s))
			for j, item := range s {
				list[j] = item
			}
			v = list
		}
		out[i] = v
	}
	return out
}
