package app

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docfusion/docfusion-tui/client"
	"github.com/docfusion/docfusion-tui/model"
	"github.com/docfusion/docfusion-tui/msg"
	"github.com/docfusion/docfusion-tui/session"
)

func (m Model) handleMe(v msg.MeResult) (Model, tea.Cmd) {
	if v.Err != nil {
		if client.IsAuthError(v.Err) {
			m.state = StateReady
			m.chat.SetWelcome(m.header.Welcome())
			m.chat.AddSystemMessage("Not signed in. Use /login <email> <password> or /register <name> <email> <password>.")
			return m, m.input.Focus()
		}
		m.state = StateConnecting
		slog.Warn("backend unreachable", "error", v.Err)
		return m, tea.Tick(5*time.Second, func(time.Time) tea.Msg { return retryConnect{} })
	}
	m.state = StateReady
	m.status.SetUser(v.User.Email)
	m.chat.SetWelcome(m.header.Welcome())
	m.chat.AddSystemMessage(fmt.Sprintf("Signed in as %s.", v.User.Email))
	return m, tea.Batch(m.fetchSessions(), m.input.Focus())
}

func (m Model) handleSessionList(v msg.SessionListResult) (Model, tea.Cmd) {
	if v.Err != nil {
		slog.Warn("session list failed", "error", v.Err)
		m.chat.AddSystemError("Could not load sessions: " + client.Detail(v.Err, "request failed"))
		return m, nil
	}
	// A user with no sessions gets exactly one bootstrap session; a failed
	// bootstrap is not retried and leaves the list empty.
	if m.store.NeedsBootstrap(v.Sessions) {
		return m, m.createSession(session.BootstrapName, true)
	}
	m.store.Apply(v.Sessions)
	if m.store.Active() == "" && len(v.Sessions) > 0 {
		return m.activateSession(v.Sessions[0].Name)
	}
	m.status.SetSession(m.store.Active())
	return m, nil
}

func (m Model) handleSessionCreated(v msg.SessionCreatedResult) (Model, tea.Cmd) {
	if v.Err != nil {
		// Bootstrap failure is swallowed; the UI simply shows no sessions.
		slog.Warn("create session failed", "requested", v.Requested, "error", v.Err)
		if !v.Bootstrap {
			m.chat.AddSystemError("Could not create session: " + client.Detail(v.Err, "request failed"))
		}
		return m, nil
	}
	// The bootstrap path trusts the requested name; the follow-up list
	// refresh reconciles if the server ever decides differently.
	name := v.Name
	if name == "" {
		name = v.Requested
	}
	m.store.SetActive(name)
	m.resetConversation()
	m.status.SetSession(name)
	m.chat.AddSystemMessage("Now in " + name + ".")
	return m, m.fetchSessions()
}

// activateSession switches to a session and fires the parallel history and
// document fetches. Either can fail without blocking the other.
func (m Model) activateSession(name string) (Model, tea.Cmd) {
	m.store.SetActive(name)
	m.resetConversation()
	m.status.SetSession(name)
	return m, tea.Batch(m.fetchHistory(name), m.fetchDocuments(name))
}

// resetConversation clears message and document state in one local update.
func (m *Model) resetConversation() {
	m.conversation.Clear()
	m.documents.Clear()
	m.chat.SetMessages(nil)
	m.chat.SetTyping(false)
	m.docsPanel.Clear()
	m.status.SetDocCount(0)
	m.status.StopThinking()
}

func (m Model) handleHistory(v msg.HistoryResult) (Model, tea.Cmd) {
	if !m.store.IsActive(v.Session) {
		slog.Debug("discarding stale history", "session", v.Session, "active", m.store.Active())
		return m, nil
	}
	if v.Err != nil {
		// The document fetch for the same switch stays unaffected.
		slog.Warn("history fetch failed", "session", v.Session, "error", v.Err)
		return m, nil
	}
	m.conversation.Replace(v.Messages)
	m.chat.SetMessages(toChatMessages(v.Messages))
	return m, nil
}

func (m Model) handleDocuments(v msg.DocumentsResult) (Model, tea.Cmd) {
	if !m.store.IsActive(v.Session) {
		slog.Debug("discarding stale documents", "session", v.Session, "active", m.store.Active())
		return m, nil
	}
	if v.Err != nil {
		slog.Warn("document fetch failed", "session", v.Session, "error", v.Err)
		return m, nil
	}
	m.documents.Replace(v.Documents)
	m.docsPanel.SetDocs(toDocEntries(v.Documents))
	m.status.SetDocCount(len(v.Documents))
	return m, nil
}

func (m Model) handleAsk(v msg.AskResult) (Model, tea.Cmd) {
	// The thinking indicator is screen-global; clear it regardless of the
	// auto-naming workflow or any session switch since dispatch.
	m.status.StopThinking()
	m.chat.SetTyping(false)
	if !m.store.IsActive(v.Session) {
		slog.Debug("discarding stale answer", "session", v.Session, "active", m.store.Active())
		return m, nil
	}
	if v.Err != nil {
		// The optimistic user turn stays in history.
		m.conversation.Fail()
		m.errBar.Set(client.Detail(v.Err, "Chat failed"))
		return m, nil
	}
	m.conversation.ApplyAnswer(v.Answer, v.Sources)
	m.chat.AddAssistantMessage(v.Answer, toModelSources(v.Sources))
	m.errBar.Clear()
	if session.IsDefaultName(v.Session) {
		assistant := client.Message{Role: "assistant", Content: v.Answer}
		window := session.SuggestWindow(v.Prior, v.User, assistant)
		return m, m.autoName(v.Session, window)
	}
	return m, nil
}

func (m Model) handleAutoName(v msg.AutoNameResult) (Model, tea.Cmd) {
	// Best-effort: any failure here is logged and never shown.
	if v.Err != nil {
		slog.Debug("auto-naming incomplete", "session", v.OldName, "suggested", v.NewName, "error", v.Err)
	}
	if v.NewName == "" {
		return m, nil
	}
	// Switch the local pointer whether or not the server-side rename
	// landed; the list refresh below reconciles either way.
	m.store.RenameLocal(v.OldName, v.NewName)
	m.status.SetSession(m.store.Active())
	return m, m.fetchSessions()
}

func (m Model) handleRename(v msg.RenameResult) (Model, tea.Cmd) {
	if v.Err != nil {
		// The optimistic local rename is not rolled back; the next full
		// refresh corrects any drift.
		m.errBar.Set(client.Detail(v.Err, "Rename failed"))
		return m, m.fetchSessions()
	}
	m.errBar.Clear()
	m.chat.AddSystemMessage("Renamed to " + v.NewName + ".")
	return m, m.fetchSessions()
}

func (m Model) handleDelete(v msg.DeleteResult) (Model, tea.Cmd) {
	if v.Err != nil {
		m.errBar.Set(client.Detail(v.Err, "Delete failed"))
		return m, nil
	}
	m.errBar.Clear()
	if m.store.RemoveLocal(v.Name) {
		// Deleting the active session deactivates it and clears its
		// message and document state in the same update.
		m.resetConversation()
		m.status.SetSession("")
	}
	m.chat.AddSystemMessage("Deleted " + v.Name + ".")
	return m, m.fetchSessions()
}

func (m Model) handleUploadProgress(v msg.UploadProgress) (Model, tea.Cmd) {
	if !m.upload.Active() {
		return m, nil
	}
	m.upload.SetProgress(v.Loaded, v.Total)
	m.status.SetUpload(m.upload.FileName, float64(m.upload.Progress)/100)
	return m, nil
}

func (m Model) handleUploadResult(v msg.UploadResult) (Model, tea.Cmd) {
	m.status.ClearUpload()
	if v.Err != nil {
		m.upload.Fail()
		m.errBar.Set(client.Detail(v.Err, "Upload failed"))
		m.upload.Reset()
		return m, nil
	}
	m.upload.Done()
	m.upload.Reset()
	m.errBar.Clear()
	m.chat.AddSystemMessage("Uploaded " + v.FileName + ".")
	if m.store.IsActive(v.Session) {
		return m, m.fetchDocuments(v.Session)
	}
	return m, nil
}

func (m Model) handleLogin(v msg.LoginResult) (Model, tea.Cmd) {
	verb := "Login"
	if v.Register {
		verb = "Registration"
	}
	if v.Err != nil {
		m.chat.AddSystemError(verb + " failed: " + client.Detail(v.Err, "request failed"))
		return m, nil
	}
	m.chat.AddSystemMessage(verb + " successful.")
	// Re-probe /auth/me to pick up the account, then reload sessions.
	return m, m.checkAuth()
}

func (m Model) handleDocumentSaved(v msg.DocumentSaved) (Model, tea.Cmd) {
	if v.Err != nil {
		m.chat.AddSystemError("Could not save " + v.Filename + ": " + client.Detail(v.Err, "request failed"))
		return m, nil
	}
	m.chat.AddSystemMessage("Saved " + v.Filename + " → " + v.Path)
	return m, nil
}

// -- wire → display conversions --

func toChatMessages(messages []client.Message) []model.ChatMessage {
	out := make([]model.ChatMessage, 0, len(messages))
	for _, wire := range messages {
		switch wire.Role {
		case "assistant":
			out = append(out, model.AssistantMessage(wire.Content, toModelSources(wire.Sources)))
		default:
			out = append(out, model.UserMessage(wire.Content))
		}
	}
	return out
}

func toModelSources(sources []client.Source) []model.Source {
	if len(sources) == 0 {
		return nil
	}
	out := make([]model.Source, 0, len(sources))
	for _, s := range sources {
		out = append(out, model.Source{Filename: s.Filename, Page: s.Page, Snippet: s.Snippet})
	}
	return out
}

func toDocEntries(docs []client.Document) []model.DocEntry {
	if len(docs) == 0 {
		return nil
	}
	out := make([]model.DocEntry, 0, len(docs))
	for _, d := range docs {
		out = append(out, model.DocEntry{ID: d.ID, Filename: d.Filename, Size: d.Size})
	}
	return out
}
