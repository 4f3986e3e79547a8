package render

import "strings"

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

var attrReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
)

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
// In addition to the standard HTML entities, it also escapes whitespace
// characters that could break attribute parsing.
func escapeAttr(s string) string {
	return attrReplacer.Replace(s)
}
