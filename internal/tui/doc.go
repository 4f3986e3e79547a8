// Package tui is a terminal explorer for stories.
//
// The model mounts a story with vtest and lists its interactive elements
// with their role, accessible name and state. Enter clicks the element
// under the cursor, h toggles hover, esc presses Escape on the document and
// r remounts the story. Regions and dialogs are listed below the elements
// so their hidden state is visible while driving the triggers.
package tui
