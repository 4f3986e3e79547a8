package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	codeStyle     = lipgloss.NewStyle().Bold(true)
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	gutterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// plain disables styling. Terminals without color support get plain text
// from lipgloss anyway.
var plain bool

// DisableColors turns off styled output.
func DisableColors() { plain = true }

// EnableColors turns styled output back on.
func EnableColors() { plain = false }

func styled(s lipgloss.Style, text string) string {
	if plain {
		return text
	}
	return s.Render(text)
}

// Format returns the error laid out for a terminal: the headline, the
// source excerpt when a location is known, then detail, cause and hint.
func (e *HeadlessError) Format() string {
	var sections []string

	headline := styled(errorStyle, "ERROR:") + " " + e.Message
	if e.Code != "" {
		headline = styled(errorStyle, "ERROR") + " " + styled(codeStyle, e.Code+":") + " " + e.Message
	}
	sections = append(sections, headline)

	if e.Location != nil {
		sections = append(sections, "  "+styled(locationStyle, e.Location.String()))
		if len(e.Context) > 0 {
			sections = append(sections, e.excerpt())
		}
	}
	if lines := wrapText(e.Detail, 70); len(lines) > 0 {
		sections = append(sections, "  "+strings.Join(lines, "\n  "))
	}
	if e.Wrapped != nil {
		sections = append(sections, "  "+styled(gutterStyle, "Cause:")+" "+e.Wrapped.Error())
	}
	if e.Suggestion != "" {
		sections = append(sections, "  "+styled(hintStyle, "Hint:")+" "+e.Suggestion)
	}

	return "\n" + strings.Join(sections, "\n\n") + "\n\n"
}

// excerpt renders the context lines around the location, marking the
// failing line.
func (e *HeadlessError) excerpt() string {
	first := e.Location.Line - len(e.Context)/2
	lines := make([]string, len(e.Context))
	for i, text := range e.Context {
		n := first + i
		marker := "    "
		if n == e.Location.Line {
			marker = "  " + styled(errorStyle, "> ")
		}
		lines[i] = fmt.Sprintf("%s%4d%s%s", marker, n, styled(gutterStyle, " | "), text)
	}
	return strings.Join(lines, "\n")
}

// FormatCompact returns "file:line: CODE: message", or Error() when there
// is no location.
func (e *HeadlessError) FormatCompact() string {
	if e.Location == nil {
		return e.Error()
	}
	return e.Location.String() + ": " + e.Error()
}

// FormatJSON returns the error as a JSON object, for --json output.
func (e *HeadlessError) FormatJSON() string {
	out := struct {
		Code       string    `json:"code,omitempty"`
		Category   Category  `json:"category"`
		Message    string    `json:"message"`
		Detail     string    `json:"detail,omitempty"`
		Location   *Location `json:"location,omitempty"`
		Suggestion string    `json:"suggestion,omitempty"`
		Cause      string    `json:"cause,omitempty"`
	}{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Location:   e.Location,
		Suggestion: e.Suggestion,
	}
	if e.Wrapped != nil {
		out.Cause = e.Wrapped.Error()
	}
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Sprintf(`{"message":%q}`, e.Message)
	}
	return string(data)
}

// wrapText breaks text into lines of at most width bytes at word
// boundaries. A single word longer than width gets a line of its own.
func wrapText(text string, width int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) > width:
			lines = append(lines, line)
			line = word
		default:
			line += " " + word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// Print writes err to w, formatted when it is a HeadlessError.
func Print(w io.Writer, err error) {
	var he *HeadlessError
	if As(err, &he) {
		fmt.Fprint(w, he.Format())
		return
	}
	fmt.Fprintf(w, "\n%s %s\n\n", styled(errorStyle, "ERROR:"), err.Error())
}
