package vtest

import (
	"strings"

	"github.com/vango-dev/headless/pkg/vdom"
)

// implicitRole returns the ARIA role of an element without an explicit role
// attribute.
func implicitRole(n *vdom.VNode) string {
	switch n.Tag {
	case "button":
		return "button"
	case "input":
		switch n.StringAttr("type") {
		case "radio":
			return "radio"
		case "checkbox":
			return "checkbox"
		case "button", "submit", "reset":
			return "button"
		default:
			return "textbox"
		}
	case "a":
		if n.StringAttr("href") != "" {
			return "link"
		}
	case "fieldset":
		return "group"
	case "ul", "ol":
		return "list"
	case "li":
		return "listitem"
	case "main":
		return "main"
	case "nav":
		return "navigation"
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return "heading"
	case "section":
		if n.StringAttr("aria-label") != "" || n.StringAttr("aria-labelledby") != "" {
			return "region"
		}
	case "form":
		return "form"
	}
	return ""
}

// roleOf returns the explicit or implicit role of n.
func roleOf(n *vdom.VNode) string {
	if n.Kind != vdom.KindElement {
		return ""
	}
	if role := n.StringAttr("role"); role != "" {
		return strings.Fields(role)[0]
	}
	return implicitRole(n)
}

// nameFromContent lists the roles whose accessible name falls back to their
// text content.
var nameFromContent = map[string]bool{
	"button":   true,
	"checkbox": true,
	"heading":  true,
	"link":     true,
	"listitem": true,
	"menuitem": true,
	"option":   true,
	"radio":    true,
	"switch":   true,
	"tab":      true,
}

// labelable lists the elements an enclosing label names.
var labelable = map[string]bool{
	"button":   true,
	"input":    true,
	"select":   true,
	"textarea": true,
}

// accessibleName computes the name of the element at the head of path.
// path lists the element followed by its ancestors; tree is the document
// root used to resolve aria-labelledby and label[for].
func accessibleName(tree *vdom.VNode, path []*vdom.VNode, role string) string {
	n := path[0]

	if ids := n.StringAttr("aria-labelledby"); ids != "" {
		var parts []string
		for _, id := range strings.Fields(ids) {
			if ref := findByID(tree, id); ref != nil {
				parts = append(parts, vdom.TextContent(ref))
			}
		}
		if name := strings.Join(parts, " "); name != "" {
			return name
		}
	}

	if label := strings.TrimSpace(n.StringAttr("aria-label")); label != "" {
		return label
	}

	if labelable[n.Tag] {
		if id := n.StringAttr("id"); id != "" {
			if label := findLabelFor(tree, id); label != nil {
				return textExcluding(label, n)
			}
		}
		for _, ancestor := range path[1:] {
			if ancestor.Tag == "label" {
				if name := textExcluding(ancestor, n); name != "" {
					return name
				}
				break
			}
		}
	}

	if n.Tag == "input" && role == "button" {
		return n.StringAttr("value")
	}

	if nameFromContent[role] {
		return vdom.TextContent(n)
	}
	return ""
}

// textExcluding returns the text of label without the text of skip.
func textExcluding(label, skip *vdom.VNode) string {
	var b strings.Builder
	vdom.Walk(label, func(n *vdom.VNode) bool {
		if n == skip {
			return false
		}
		if n.Kind == vdom.KindText {
			b.WriteString(n.Text)
			b.WriteByte(' ')
		}
		return true
	})
	return strings.Join(strings.Fields(b.String()), " ")
}

func findByID(tree *vdom.VNode, id string) *vdom.VNode {
	var found *vdom.VNode
	vdom.Walk(tree, func(n *vdom.VNode) bool {
		if found != nil {
			return false
		}
		if n.Kind == vdom.KindElement && n.StringAttr("id") == id {
			found = n
			return false
		}
		return true
	})
	return found
}

func findLabelFor(tree *vdom.VNode, id string) *vdom.VNode {
	var found *vdom.VNode
	vdom.Walk(tree, func(n *vdom.VNode) bool {
		if found != nil {
			return false
		}
		if n.Tag == "label" && n.StringAttr("for") == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// isHiddenNode reports whether n hides itself and its subtree from the
// accessibility tree.
func isHiddenNode(n *vdom.VNode) bool {
	if n.Kind != vdom.KindElement {
		return false
	}
	return n.BoolAttr("hidden") || n.StringAttr("aria-hidden") == "true"
}
