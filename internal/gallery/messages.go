package gallery

import (
	"fmt"

	"github.com/vango-dev/headless/internal/stories"
)

// Client message types.
const (
	MsgClick      = "click"
	MsgMouseEnter = "mouseenter"
	MsgMouseLeave = "mouseleave"
	MsgKeyDown    = "keydown"
	MsgReset      = "reset"
)

// Server message types.
const (
	MsgRender = "render"
	MsgError  = "error"
)

// ClientMessage is one event sent by the browser.
//
//	{"type": "click", "hid": "h3"}
//	{"type": "keydown", "key": "Escape"}
//
// A keydown without hid goes to document listeners only.
type ClientMessage struct {
	Type string `json:"type"`
	HID  string `json:"hid,omitempty"`
	Key  string `json:"key,omitempty"`
}

// ServerMessage is sent after the session mounts and after every event.
type ServerMessage struct {
	Type    string       `json:"type"`
	Session string       `json:"session"`
	HTML    string       `json:"html,omitempty"`
	Actions []ActionJSON `json:"actions,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// ActionJSON is a recorded story action.
type ActionJSON struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func actionsJSON(entries []stories.Action) []ActionJSON {
	out := make([]ActionJSON, len(entries))
	for i, e := range entries {
		out[i] = ActionJSON{Name: e.Name, Value: fmt.Sprint(e.Value)}
	}
	return out
}
