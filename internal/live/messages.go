// Package live drives a rendered page from a server-side session over a
// websocket. Gestures arrive as small JSON messages; state changes go back
// as replacement HTML for the affected fragments.
package live

import "github.com/textflux/textflux-site/internal/session"

// Client to server message types.
const (
	MsgToggleMenu      = "toggle_menu"
	MsgNavigate        = "navigate"
	MsgToggleTheme     = "toggle_theme"
	MsgCopy            = "copy"
	MsgClipboardResult = "clipboard_result"
)

// Server to client message types.
const (
	MsgPatch     = "patch"
	MsgState     = "state"
	MsgClipboard = "clipboard"
	MsgError     = "error"
)

// Clipboard request modes. A write uses the asynchronous clipboard API;
// a select copies a transient selection.
const (
	ModeWrite  = "write"
	ModeSelect = "select"
)

// ClientMessage is a message sent by the browser.
type ClientMessage struct {
	Type   string `json:"type"`
	Anchor string `json:"anchor,omitempty"`
	// ID, OK and Error answer a clipboard request.
	ID    uint64 `json:"id,omitempty"`
	OK    bool   `json:"ok,omitempty"`
	Error string `json:"error,omitempty"`
}

// ServerMessage is a message sent to the browser.
type ServerMessage struct {
	Type   string           `json:"type"`
	Target string           `json:"target,omitempty"`
	HTML   string           `json:"html,omitempty"`
	State  *session.UIState `json:"state,omitempty"`
	ID     uint64           `json:"id,omitempty"`
	Mode   string           `json:"mode,omitempty"`
	Text   string           `json:"text,omitempty"`
	Error  string           `json:"error,omitempty"`
}
