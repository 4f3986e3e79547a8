package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/headless/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty puts block elements on their own indented lines.
	Pretty bool

	// Indent is one level of indentation in pretty mode. Defaults to two
	// spaces.
	Indent string
}

// Renderer serializes expanded VNode trees to HTML. Component nodes must be
// expanded by a reactive.Root first.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a Renderer.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	hw := &htmlWriter{w: w, config: r.config}
	hw.node(node, 0)
	return hw.err
}

// htmlWriter keeps the first error and drops every write after it.
type htmlWriter struct {
	w      io.Writer
	config RendererConfig
	err    error
}

func (hw *htmlWriter) str(s string) {
	if hw.err == nil {
		_, hw.err = io.WriteString(hw.w, s)
	}
}

func (hw *htmlWriter) newline() {
	if hw.config.Pretty {
		hw.str("\n")
	}
}

func (hw *htmlWriter) indent(depth int) {
	if hw.config.Pretty && depth > 0 {
		hw.str(strings.Repeat(hw.config.Indent, depth))
	}
}

func (hw *htmlWriter) node(node *vdom.VNode, depth int) {
	if node == nil || hw.err != nil {
		return
	}

	switch node.Kind {
	case vdom.KindElement:
		hw.element(node, depth)
	case vdom.KindText:
		hw.str(escapeHTML(node.Text))
	case vdom.KindFragment:
		for _, child := range node.Children {
			hw.node(child, depth)
		}
	case vdom.KindComponent:
		name := ""
		if node.Comp != nil {
			name = node.Comp.ComponentName()
		}
		hw.err = fmt.Errorf("render: unexpanded component %q", name)
	default:
		hw.err = fmt.Errorf("render: unknown node kind: %d", node.Kind)
	}
}

func (hw *htmlWriter) element(node *vdom.VNode, depth int) {
	tag := node.Tag

	hw.indent(depth)
	hw.str("<" + tag)
	for _, a := range attributes(node) {
		if a.boolean {
			hw.str(" " + a.name)
			continue
		}
		hw.str(" " + a.name + `="` + escapeAttr(a.value) + `"`)
	}
	hw.str(">")

	if isVoidElement(tag) {
		hw.newline()
		return
	}

	block := len(node.Children) > 0 && !isInlineElement(tag)
	if block {
		hw.newline()
	}
	for _, child := range node.Children {
		hw.node(child, depth+1)
	}
	if block {
		hw.indent(depth)
	}
	hw.str("</" + tag + ">")
	hw.newline()
}

type attribute struct {
	name    string
	value   string
	boolean bool
}

// attributes lists the attributes of node in output order: props sorted by
// name, then one data-on-* marker per event handler so the gallery client
// knows which events to forward, then data-hid.
func attributes(node *vdom.VNode) []attribute {
	names := make([]string, 0, len(node.Props))
	for name := range node.Props {
		names = append(names, name)
	}
	sort.Strings(names)

	var out, events []attribute
	for _, name := range names {
		value := node.Props[name]
		switch {
		case strings.HasPrefix(name, "_"):
		case strings.HasPrefix(name, "on") && isEventHandler(value):
			events = append(events, attribute{name: "data-on-" + strings.ToLower(name[2:]), value: "true"})
		default:
			if b, ok := value.(bool); ok && isBooleanAttr(name) {
				if b {
					out = append(out, attribute{name: name, boolean: true})
				}
				continue
			}
			if s := attrString(value); s != "" {
				out = append(out, attribute{name: name, value: s})
			}
		}
	}
	out = append(out, events...)
	if node.HID != "" {
		out = append(out, attribute{name: "data-hid", value: node.HID})
	}
	return out
}

func isEventHandler(value any) bool {
	switch value.(type) {
	case func(), func(vdom.Event):
		return true
	}
	return value != nil && strings.HasPrefix(fmt.Sprintf("%T", value), "func")
}

func attrString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	}
	return fmt.Sprint(value)
}

// RenderToString renders node with a default renderer. Errors yield an
// empty string.
func RenderToString(node *vdom.VNode) string {
	html, err := NewRenderer(RendererConfig{}).RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}
