package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/headless/pkg/render"
	"github.com/vango-dev/headless/pkg/vdom"
)

// RenderToString renders an expanded VNode tree to HTML.
//
// Example:
//
//	html := vtest.RenderToString(screen.Tree())
//	if !strings.Contains(html, "expected text") {
//	    t.Error("missing expected text")
//	}
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, screen.Tree(), `aria-checked="true"`)
func ExpectContains(t *testing.T, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t *testing.T, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectCount asserts how many elements with role the screen shows.
//
// Example:
//
//	vtest.ExpectCount(t, screen, "radio", 1, vtest.Checked(true))
func ExpectCount(t *testing.T, s *Screen, role string, want int, opts ...QueryOption) {
	t.Helper()
	if got := len(s.QueryAllByRole(role, opts...)); got != want {
		t.Errorf("expected %d %q elements, got %d in:\n%s", want, role, got, truncate(s.HTML(), 500))
	}
}

// ExpectVisible asserts that an element with text is in the document and
// not hidden.
func ExpectVisible(t *testing.T, s *Screen, text string) {
	t.Helper()
	el := s.QueryByText(text)
	if !el.IsVisible() {
		t.Errorf("expected %q to be visible, got:\n%s", text, truncate(s.HTML(), 500))
	}
}

// ExpectHidden asserts that an element with text is in the document but
// hidden.
func ExpectHidden(t *testing.T, s *Screen, text string) {
	t.Helper()
	el := s.QueryByText(text)
	if !el.InDocument() {
		t.Errorf("expected %q to be in the document, got:\n%s", text, truncate(s.HTML(), 500))
		return
	}
	if el.IsVisible() {
		t.Errorf("expected %q to be hidden, got:\n%s", text, truncate(s.HTML(), 500))
	}
}

// ExpectAbsent asserts that no element with text is in the document.
func ExpectAbsent(t *testing.T, s *Screen, text string) {
	t.Helper()
	if el := s.QueryByText(text); el.InDocument() {
		t.Errorf("expected %q not to be in the document, got:\n%s", text, truncate(s.HTML(), 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
