// Package stories holds the built-in gallery stories: small, mountable
// compositions of the picker and visibility primitives.
//
// A Story builds a fresh component every time it is mounted and reports the
// handler calls it makes (onChange and friends) to an Actions log, which the
// gallery shows and play scenarios assert on.
//
//	reg := stories.Default()
//	story, _ := reg.Get("visibility--standard")
//	comp, actions := story.Mount(slog.Default())
//	screen := vtest.Mount(comp)
package stories
