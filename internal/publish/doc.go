// Package publish writes the story gallery as static HTML and uploads it
// to S3.
//
// Build renders index.html and one page per story into a directory. The
// pages show each story's initial state and carry no live client.
// Publisher then uploads that directory with PutObject; any S3-compatible
// endpoint works through S3Config.Endpoint.
package publish
