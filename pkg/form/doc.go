// Package form provides a minimal named-field registry for headless controls.
//
// Controls such as pickers register their value under a field name when they
// mount inside a Provider, update it on change and release it on unmount:
//
//	f := form.New(form.WithValidators("color", form.Required("")))
//
//	page := form.Provider(f,
//	    picker.Single(picker.SingleProps{Name: "color"}, renderOptions),
//	)
//
//	f.Values() // url.Values{"color": {"red"}}
//
// List fields, registered by multiple-selection pickers, encode one entry
// per selected value.
package form
