package render

// voidElements are elements that cannot have children and have no closing tag.
var voidElements = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
	"link":  true,
	"meta":  true,
}

func isVoidElement(tag string) bool {
	return voidElements[tag]
}

// inlineElements don't need newlines in pretty-printed output.
var inlineElements = map[string]bool{
	"a":      true,
	"b":      true,
	"code":   true,
	"em":     true,
	"i":      true,
	"label":  true,
	"small":  true,
	"span":   true,
	"strong": true,
	"title":  true,
}

func isInlineElement(tag string) bool {
	return inlineElements[tag]
}

// booleanAttrs are attributes that don't need a value.
// When true, they're rendered as just the attribute name; false omits them.
var booleanAttrs = map[string]bool{
	"checked":  true,
	"disabled": true,
	"hidden":   true,
	"multiple": true,
	"readonly": true,
	"required": true,
	"selected": true,
}

func isBooleanAttr(name string) bool {
	return booleanAttrs[name]
}
