package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
	"link":  true,
	"meta":  true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, Component, string,
// EventHandler or []any holding any of these.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}
	applyArgs(node, args)
	return node
}

// applyArgs adds attributes, handlers and children to node. A []any
// argument is applied in place, which lets helpers return attribute and
// handler bundles.
func applyArgs(node *VNode, args []any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			applyAttr(node, v)

		case []Attr:
			for _, a := range v {
				applyAttr(node, a)
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case Component:
			node.Children = append(node.Children, &VNode{
				Kind: KindComponent,
				Comp: v,
			})

		case string:
			// Shorthand for text node
			node.Children = append(node.Children, Text(v))

		case EventHandler:
			if v.Handler != nil {
				node.Props[v.Event] = v.Handler
			}

		case []any:
			applyArgs(node, v)
		}
	}
}

func applyAttr(node *VNode, a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			node.Key = s
		}
		return
	}
	node.Props[a.Key] = a.Value
}

// Content elements

func Div(args ...any) *VNode     { return createElement("div", args) }
func P(args ...any) *VNode       { return createElement("p", args) }
func Span(args ...any) *VNode    { return createElement("span", args) }
func Section(args ...any) *VNode { return createElement("section", args) }
func Header(args ...any) *VNode  { return createElement("header", args) }
func Main(args ...any) *VNode    { return createElement("main", args) }
func Nav(args ...any) *VNode     { return createElement("nav", args) }
func H1(args ...any) *VNode      { return createElement("h1", args) }
func H2(args ...any) *VNode      { return createElement("h2", args) }
func Ul(args ...any) *VNode      { return createElement("ul", args) }
func Li(args ...any) *VNode      { return createElement("li", args) }
func A(args ...any) *VNode       { return createElement("a", args) }
func Pre(args ...any) *VNode     { return createElement("pre", args) }
func Code(args ...any) *VNode    { return createElement("code", args) }

// Form elements

func Form(args ...any) *VNode     { return createElement("form", args) }
func Input(args ...any) *VNode    { return createElement("input", args) }
func Button(args ...any) *VNode   { return createElement("button", args) }
func Label(args ...any) *VNode    { return createElement("label", args) }
func Fieldset(args ...any) *VNode { return createElement("fieldset", args) }
func Legend(args ...any) *VNode   { return createElement("legend", args) }

// Document elements

func Html(args ...any) *VNode   { return createElement("html", args) }
func Head(args ...any) *VNode   { return createElement("head", args) }
func Body(args ...any) *VNode   { return createElement("body", args) }
func Title(args ...any) *VNode  { return createElement("title", args) }
func Meta(args ...any) *VNode   { return createElement("meta", args) }
func Script(args ...any) *VNode { return createElement("script", args) }
func Style(args ...any) *VNode  { return createElement("style", args) }

// CustomElement creates an element with a custom tag name.
func CustomElement(tag string, args ...any) *VNode {
	return createElement(tag, args)
}
