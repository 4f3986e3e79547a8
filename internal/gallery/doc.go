// Package gallery serves the story registry over HTTP.
//
// Every story page renders the story's initial tree and opens a websocket
// to /stories/{id}/ws. The socket mounts the story in a session with its
// own store; the page forwards click, hover and keydown events on elements
// carrying data-hid, and the session answers each with the re-rendered tree
// and the story's action log.
//
// With WithMetrics the store and root instrumentation of every session is
// registered with a Prometheus registry and served on the metrics path.
package gallery
