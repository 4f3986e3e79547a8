// Package errors provides coded, actionable errors for the headless CLI and
// its gallery.
//
// Every error has a code that maps to a registered template:
//   - E1xx: configuration (headless.json)
//   - E2xx: play scenarios
//   - E3xx: stories and the gallery server
//   - E4xx: static build and publishing
//
// # Usage
//
//	err := errors.New("E205").
//	    WithLocation("scenarios/picker_single.yaml", 12, 0).
//	    WithDetail(`count("radio", true) == 1 evaluated to false`)
//
//	errors.Print(os.Stderr, err)
//	// ERROR E205: Expectation failed
//	//
//	//   scenarios/picker_single.yaml:12
//	//
//	//       10 │   - click: {role: radio, name: First}
//	//       11 │     expect:
//	//   →   12 │       - count("radio", true) == 1
//	//  ...
//
// Library packages return plain wrapped errors; this package is used at the
// command and server boundary.
package errors
