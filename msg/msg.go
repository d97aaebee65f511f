// Package msg defines the tea.Msg types dispatched within the DocFusion
// TUI. Fetch results that target a specific session carry the session name
// that was active at dispatch time, so stale responses can be discarded
// after a switch.
package msg

import "github.com/docfusion/docfusion-tui/client"

// -- Lifecycle --

// MeResult from the startup GET /auth/me probe.
type MeResult struct {
	User *client.User
	Err  error
}

// -- Sessions --

// SessionListResult from GET /sessions.
type SessionListResult struct {
	Sessions []client.Session
	Err      error
}

// SessionCreatedResult from POST /sessions/new. Requested is the name the
// client asked for ("" when the server picks one); Name is the server's
// answer.
type SessionCreatedResult struct {
	Requested string
	Name      string
	Bootstrap bool
	Err       error
}

// RenameResult from an explicit POST /sessions/rename_by_name.
type RenameResult struct {
	OldName string
	NewName string
	Err     error
}

// DeleteResult from DELETE /sessions/{name}.
type DeleteResult struct {
	Name string
	Err  error
}

// AutoNameResult concludes the background auto-naming workflow. NewName is
// empty when no rename should happen; Err is logged, never shown.
type AutoNameResult struct {
	OldName string
	NewName string
	Err     error
}

// -- Conversation --

// HistoryResult from GET /chat/history, tagged with its session.
type HistoryResult struct {
	Session  string
	Messages []client.Message
	Err      error
}

// AskResult from POST /chat/ask, tagged with its session. Prior is the
// history as it stood before the user turn; User the optimistic turn.
type AskResult struct {
	Session string
	Prior   []client.Message
	User    client.Message
	Answer  string
	Sources []client.Source
	Err     error
}

// -- Documents --

// DocumentsResult from GET /documents, tagged with its session.
type DocumentsResult struct {
	Session   string
	Documents []client.Document
	Err       error
}

// DocumentSaved after fetching a PDF payload to a local file.
type DocumentSaved struct {
	Filename string
	Path     string
	Err      error
}

// -- Upload --

// UploadProgress is a transport progress event for the in-flight upload.
type UploadProgress struct {
	Session string
	Loaded  int64
	Total   int64
}

// UploadResult concludes an upload, tagged with its session.
type UploadResult struct {
	Session  string
	FileName string
	Document *client.Document
	Err      error
}

// -- Auth --

// LoginResult from POST /auth/login or /auth/register.
type LoginResult struct {
	Token    string
	Register bool
	Err      error
}
