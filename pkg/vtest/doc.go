// Package vtest provides testing helpers for headless components.
//
// Mount renders a component into a Screen that is queried the way an
// assistive technology sees it: by role, accessible name, state and text.
//
// # Quick Start
//
//	func TestSinglePicker(t *testing.T) {
//	    screen := vtest.Mount(singlePicker)
//
//	    screen.Click(screen.QueryByRole("radio", vtest.Name("First")))
//
//	    if !screen.QueryByRole("radio", vtest.Name("First")).IsChecked() {
//	        t.Error("First should be checked")
//	    }
//	    vtest.ExpectCount(t, screen, "radio", 1, vtest.Checked(true))
//	}
//
// # Queries
//
// QueryByRole and QueryAllByRole skip elements inside hidden subtrees unless
// IncludeHidden is passed. Roles come from the role attribute or from the
// element (button, input type radio or checkbox, ...). Names come from
// aria-labelledby, aria-label, an enclosing or referencing label, the value
// of input buttons and finally the text content.
//
// QueryByText matches an element's own text and also finds hidden elements;
// use Element.IsVisible to tell them apart.
//
// # Events
//
// Click, Hover, Unhover and KeyDown bubble from the element through its
// ancestors and flush the resulting renders. Keyboard delivers a key press to
// document listeners.
package vtest
