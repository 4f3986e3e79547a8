package vdom

import (
	"strconv"
	"strings"
)

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ariaBool encodes an ARIA state. ARIA states are tokens, not HTML boolean
// attributes, so false is rendered as "false" rather than omitted.
func ariaBool(v bool) string {
	return strconv.FormatBool(v)
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", ariaBool(hidden)) }

// AriaExpanded sets the aria-expanded attribute.
func AriaExpanded(expanded bool) Attr { return attr("aria-expanded", ariaBool(expanded)) }

// AriaLabelledBy sets the aria-labelledby attribute.
func AriaLabelledBy(id string) Attr { return attr("aria-labelledby", id) }

// AriaControls sets the aria-controls attribute.
func AriaControls(id string) Attr { return attr("aria-controls", id) }

// AriaChecked sets the aria-checked attribute (radio, checkbox and switch roles).
func AriaChecked(checked bool) Attr { return attr("aria-checked", ariaBool(checked)) }

// AriaPressed sets the aria-pressed attribute (toggle buttons).
func AriaPressed(pressed bool) Attr { return attr("aria-pressed", ariaBool(pressed)) }

// AriaSelected sets the aria-selected attribute (option role).
func AriaSelected(selected bool) Attr { return attr("aria-selected", ariaBool(selected)) }

// AriaOrientation sets the aria-orientation attribute.
func AriaOrientation(orientation string) Attr { return attr("aria-orientation", orientation) }

// AriaModal sets the aria-modal attribute.
func AriaModal(modal bool) Attr { return attr("aria-modal", ariaBool(modal)) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// Hidden sets the hidden boolean attribute. Hidden(false) leaves it unset.
func Hidden(hidden bool) Attr { return attr("hidden", hidden) }

// Form attributes

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Checked sets the checked boolean attribute.
func Checked(checked bool) Attr { return attr("checked", checked) }

// Disabled sets the disabled boolean attribute.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// For sets the for attribute on labels.
func For(id string) Attr { return attr("for", id) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", charset) }

// Conditional attributes

// AttrIf returns the attribute if condition is true, otherwise an empty attribute.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// RawAttr sets an arbitrary attribute.
func RawAttr(key string, value any) Attr { return attr(key, value) }
