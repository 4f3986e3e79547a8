package errors

import (
	"bufio"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryScenario Category = "scenario"
	CategoryStory    Category = "story"
	CategoryGallery  Category = "gallery"
	CategoryPublish  Category = "publish"
	CategoryCLI      Category = "cli"
)

// Location represents a position in a config or scenario file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// HeadlessError is a structured error with a code, a location and a hint.
type HeadlessError struct {
	// Code is a unique error identifier (e.g., "E201").
	Code string

	// Category is the error type (config, scenario, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the file position where the error occurred.
	Location *Location

	// Context contains the lines surrounding Location.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *HeadlessError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *HeadlessError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a HeadlessError with the same code.
func (e *HeadlessError) Is(target error) bool {
	t, ok := target.(*HeadlessError)
	return ok && t.Code != "" && t.Code == e.Code
}

// WithLocation adds a file position to the error and reads the lines
// around it.
func (e *HeadlessError) WithLocation(file string, line, column int) *HeadlessError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *HeadlessError) WithSuggestion(s string) *HeadlessError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the detailed explanation.
func (e *HeadlessError) WithDetail(d string) *HeadlessError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *HeadlessError) Wrap(err error) *HeadlessError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a HeadlessError from a registered error code.
func New(code string) *HeadlessError {
	template, ok := registry[code]
	if !ok {
		return &HeadlessError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &HeadlessError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a new HeadlessError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *HeadlessError {
	return &HeadlessError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Wrap wraps err in a HeadlessError with the given code. Errors that already
// are HeadlessErrors are returned unchanged.
func Wrap(err error, code string) *HeadlessError {
	if err == nil {
		return nil
	}
	if he, ok := err.(*HeadlessError); ok {
		return he
	}
	return New(code).Wrap(err)
}
