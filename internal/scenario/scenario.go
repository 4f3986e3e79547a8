package scenario

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/headless/internal/errors"
)

// Step actions.
const (
	ActionClick    = "click"
	ActionHover    = "hover"
	ActionUnhover  = "unhover"
	ActionKeyDown  = "keydown"
	ActionKeyboard = "keyboard"
)

var elementActions = map[string]bool{
	ActionClick:   true,
	ActionHover:   true,
	ActionUnhover: true,
	ActionKeyDown: true,
}

// Scenario is a play script for one story.
type Scenario struct {
	// Name defaults to the file name without its extension.
	Name        string `yaml:"name,omitempty"`
	Story       string `yaml:"story"`
	Description string `yaml:"description,omitempty"`
	Steps       []Step `yaml:"steps"`

	// Source is the file the scenario was read from, if any.
	Source string `yaml:"-"`
}

// Step performs an optional action and then checks its expectations.
//
//	- action: click
//	  role: radio
//	  name: First
//	  expect:
//	    - checked("radio", "First")
//	    - countChecked("radio") == 1
type Step struct {
	Action string `yaml:"action,omitempty"`

	// Role and Name select an element by ARIA role and accessible name.
	Role string `yaml:"role,omitempty"`
	Name string `yaml:"name,omitempty"`
	// Text selects an element by its own text when Role is empty.
	Text string `yaml:"text,omitempty"`
	// Key is the key for keydown and keyboard actions.
	Key string `yaml:"key,omitempty"`

	Expect Expectations `yaml:"expect,omitempty"`

	line int
}

// UnmarshalYAML records the line of the step for error messages.
func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	type plain Step
	if err := value.Decode((*plain)(s)); err != nil {
		return err
	}
	s.line = value.Line
	return nil
}

// Line returns the line of the step in its source file, or 0.
func (s Step) Line() int {
	return s.line
}

// Target describes the step's selector for logs and reports.
func (s Step) Target() string {
	switch {
	case s.Role != "" && s.Name != "":
		return fmt.Sprintf("%s %q", s.Role, s.Name)
	case s.Role != "":
		return s.Role
	case s.Text != "":
		return fmt.Sprintf("text %q", s.Text)
	default:
		return "document"
	}
}

// Expectations is a list of expr expressions. A single string is accepted
// in place of a list.
type Expectations []string

// UnmarshalYAML accepts a scalar or a sequence.
func (e *Expectations) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*e = Expectations{value.Value}
		return nil
	}
	var list []string
	if err := value.Decode(&list); err != nil {
		return err
	}
	*e = list
	return nil
}

// Parse decodes one scenario. source names it in errors.
func Parse(data []byte, source string) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, errors.New("E201").
			WithDetail(source + ": " + err.Error()).
			Wrap(err)
	}
	sc.Source = source
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the scenario's structure. It does not compile the
// expectations; that happens when the scenario runs.
func (sc *Scenario) Validate() error {
	if sc.Story == "" {
		return errors.New("E201").WithDetail(sc.Source + ": story is required")
	}
	for i, step := range sc.Steps {
		if err := sc.validateStep(i, step); err != nil {
			return err
		}
	}
	return nil
}

func (sc *Scenario) validateStep(i int, step Step) error {
	fail := func(code, detail string) error {
		e := errors.New(code).WithDetail(fmt.Sprintf("step %d: %s", i+1, detail))
		if step.line > 0 && sc.Source != "" {
			e = e.WithLocation(sc.Source, step.line, 0)
		}
		return e
	}

	switch {
	case step.Action == "":
		if len(step.Expect) == 0 {
			return fail("E201", "step has neither an action nor expectations")
		}
	case step.Action == ActionKeyboard:
		if step.Key == "" {
			return fail("E201", "keyboard needs a key")
		}
	case elementActions[step.Action]:
		if step.Role == "" && step.Text == "" {
			return fail("E201", step.Action+" needs a role or text selector")
		}
		if step.Action == ActionKeyDown && step.Key == "" {
			return fail("E201", "keydown needs a key")
		}
	default:
		return fail("E202", fmt.Sprintf("unknown action %q", step.Action))
	}
	return nil
}

// Load reads one scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E201").WithDetail("failed to read " + path).Wrap(err)
	}
	return Parse(data, path)
}

// LoadDir reads every file in dir matching glob, sorted by name.
func LoadDir(dir, glob string) ([]*Scenario, error) {
	return LoadFS(os.DirFS(dir), glob, dir)
}

// LoadFS reads every file in fsys matching glob, sorted by name. prefix is
// joined to file names in errors and Source.
func LoadFS(fsys fs.FS, glob, prefix string) ([]*Scenario, error) {
	if glob == "" {
		glob = "*.yaml"
	}
	names, err := fs.Glob(fsys, glob)
	if err != nil {
		return nil, errors.New("E201").WithDetail("bad glob " + glob).Wrap(err)
	}
	sort.Strings(names)

	out := make([]*Scenario, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.New("E201").WithDetail("failed to read " + name).Wrap(err)
		}
		source := name
		if prefix != "" {
			source = filepath.Join(prefix, name)
		}
		sc, err := Parse(data, source)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}
