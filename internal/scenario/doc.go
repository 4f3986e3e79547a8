// Package scenario plays scripted interactions against stories.
//
// A scenario is a YAML file naming a story and a list of steps. Each step
// may act on one element (click, hover, unhover, keydown) or on the document
// (keyboard), then checks its expectations. Expectations are expr-lang
// expressions that must evaluate to a boolean:
//
//	story: visibility--standard
//	steps:
//	  - expect: count("region") == 0
//	  - action: click
//	    role: button
//	    name: Click me to reveal content
//	    expect:
//	      - visible("Revealed content")
//	      - actions("onChange") == [true]
//
// Expressions can call count, countAll, countChecked, countPressed,
// countSelected, checked, pressed, selected, expanded, attr, visible,
// hidden, inDocument, actions and lastAction.
//
// The scenarios under builtin/ are embedded in the binary and cover the
// reference behaviors of both primitives.
package scenario
