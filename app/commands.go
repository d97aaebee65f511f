package app

import (
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docfusion/docfusion-tui/client"
	"github.com/docfusion/docfusion-tui/msg"
)

// checkAuth probes /auth/me. Doubles as the startup connectivity check.
func (m Model) checkAuth() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		user, err := c.Me()
		if err != nil {
			return msg.MeResult{Err: err}
		}
		return msg.MeResult{User: user}
	}
}

func (m Model) fetchSessions() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		sessions, err := c.ListSessions()
		if err != nil {
			return msg.SessionListResult{Err: err}
		}
		return msg.SessionListResult{Sessions: sessions}
	}
}

// createSession asks the server for a new session. With name == "" the
// server assigns the next sequential default name.
func (m Model) createSession(name string, bootstrap bool) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		resp, err := c.CreateSession(name)
		if err != nil {
			return msg.SessionCreatedResult{Requested: name, Bootstrap: bootstrap, Err: err}
		}
		return msg.SessionCreatedResult{Requested: name, Name: resp.Name, Bootstrap: bootstrap}
	}
}

func (m Model) renameSession(oldName, newName string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		err := c.RenameSession(oldName, newName)
		return msg.RenameResult{OldName: oldName, NewName: newName, Err: err}
	}
}

func (m Model) deleteSession(name string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		err := c.DeleteSession(name)
		return msg.DeleteResult{Name: name, Err: err}
	}
}

// fetchHistory loads a session's message history. The result is tagged so
// it can be discarded when the user has switched away in the meantime.
func (m Model) fetchHistory(session string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		messages, err := c.History(session)
		if err != nil {
			return msg.HistoryResult{Session: session, Err: err}
		}
		return msg.HistoryResult{Session: session, Messages: messages}
	}
}

// fetchDocuments loads a session's document list, tagged like fetchHistory.
func (m Model) fetchDocuments(session string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		docs, err := c.ListDocuments(session)
		if err != nil {
			return msg.DocumentsResult{Session: session, Err: err}
		}
		return msg.DocumentsResult{Session: session, Documents: docs}
	}
}

// ask sends one user turn. prior is the history before the turn; it rides
// along so the auto-naming workflow can build its suggestion window.
func (m Model) ask(session, text string, prior []client.Message) tea.Cmd {
	c := m.client
	user := client.Message{Role: "user", Content: text}
	return func() tea.Msg {
		resp, err := c.Ask(session, text)
		if err != nil {
			return msg.AskResult{Session: session, Prior: prior, User: user, Err: err}
		}
		return msg.AskResult{Session: session, Prior: prior, User: user, Answer: resp.Answer, Sources: resp.Sources}
	}
}

// autoName runs the best-effort naming workflow: suggest a title from the
// completed exchange, then try the server-side rename. A suggest failure
// yields an empty NewName; a rename failure still reports NewName so the
// local pointer switches either way.
func (m Model) autoName(session string, window []client.Message) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		name, err := c.SuggestSessionName(window)
		if err != nil {
			return msg.AutoNameResult{OldName: session, Err: err}
		}
		name = strings.TrimSpace(name)
		if name == "" || name == session {
			return msg.AutoNameResult{OldName: session}
		}
		renameErr := c.RenameSession(session, name)
		return msg.AutoNameResult{OldName: session, NewName: name, Err: renameErr}
	}
}

// uploadDocument streams a file into the session. Progress events are
// pushed onto the program loop as they happen.
func (m Model) uploadDocument(path string) tea.Cmd {
	c := m.client
	p := m.program
	session := m.store.Active()
	fileName := filepath.Base(path)
	return func() tea.Msg {
		doc, err := c.UploadDocument(session, path, func(loaded, total int64) {
			if p != nil {
				p.Send(msg.UploadProgress{Session: session, Loaded: loaded, Total: total})
			}
		})
		return msg.UploadResult{Session: session, FileName: fileName, Document: doc, Err: err}
	}
}

// saveDocument fetches a stored PDF and writes it under the profile dir.
func (m Model) saveDocument(id, filename string) tea.Cmd {
	c := m.client
	dir := filepath.Join(m.profileDir, "downloads")
	return func() tea.Msg {
		data, err := c.ViewDocument(id)
		if err != nil {
			return msg.DocumentSaved{Filename: filename, Err: err}
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return msg.DocumentSaved{Filename: filename, Err: err}
		}
		path := filepath.Join(dir, filename)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return msg.DocumentSaved{Filename: filename, Err: err}
		}
		return msg.DocumentSaved{Filename: filename, Path: path}
	}
}

func (m Model) doLogin(email, password string) tea.Cmd {
	c := m.client
	tokenPath := m.tokenPath
	return func() tea.Msg {
		resp, err := c.Login(email, password)
		if err != nil {
			return msg.LoginResult{Err: err}
		}
		saveToken(tokenPath, resp.AccessToken)
		return msg.LoginResult{Token: resp.AccessToken}
	}
}

func (m Model) doRegister(name, email, password string) tea.Cmd {
	c := m.client
	tokenPath := m.tokenPath
	return func() tea.Msg {
		resp, err := c.Register(name, email, password)
		if err != nil {
			return msg.LoginResult{Register: true, Err: err}
		}
		saveToken(tokenPath, resp.AccessToken)
		return msg.LoginResult{Register: true, Token: resp.AccessToken}
	}
}

// saveToken persists the bearer token; a write failure only costs the user
// a re-login next start.
func saveToken(path, token string) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	os.WriteFile(path, []byte(token), 0o600)
}
