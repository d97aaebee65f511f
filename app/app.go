package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docfusion/docfusion-tui/client"
	"github.com/docfusion/docfusion-tui/model"
	"github.com/docfusion/docfusion-tui/msg"
	"github.com/docfusion/docfusion-tui/session"
)

// ProgramReady carries the running tea.Program back into the model so
// background commands can push events onto the loop.
type ProgramReady struct {
	Program *tea.Program
}

// retryConnect fires after the backoff when the backend was unreachable.
type retryConnect struct{}

var slashCommands = []string{
	"/new", "/sessions", "/session", "/rename", "/delete",
	"/upload", "/docs", "/view",
	"/login", "/register", "/whoami", "/logout",
	"/help", "/exit", "/quit",
}

// Model is the root bubbletea model tying the widgets to the backend
// client and the per-session state.
type Model struct {
	header    model.HeaderModel
	chat      model.ChatModel
	input     model.InputModel
	docsPanel model.DocsModel
	status    model.StatusModel
	errBar    model.ErrorModel
	picker    model.PickerModel

	state   State
	client  *client.Client
	program *tea.Program

	profileDir string
	tokenPath  string

	store        *session.Store
	conversation *session.Conversation
	documents    *session.Documents
	upload       *session.UploadTask

	keys    KeyMap
	width   int
	height  int
	version string

	confirmQuit bool
}

// New constructs the root model. profileDir holds the token file, the
// log, and saved document downloads.
func New(c *client.Client, version, profileDir, tokenPath string) Model {
	input := model.NewInput()
	input.SetCommands(slashCommands)

	header := model.NewHeader(version)
	header.SetBackend(c.BaseURL)

	return Model{
		header:    header,
		chat:      model.NewChat(80, 20),
		input:     input,
		docsPanel: model.NewDocs(),
		status:    model.NewStatus(),
		errBar:    model.NewError(),
		picker:    model.NewPicker(),

		state:      StateConnecting,
		client:     c,
		profileDir: profileDir,
		tokenPath:  tokenPath,

		store:        session.NewStore(),
		conversation: session.NewConversation(),
		documents:    session.NewDocuments(),
		upload:       session.NewUploadTask(),

		keys:    DefaultKeyMap(),
		version: version,
	}
}

// Init starts the auth probe and the input cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.checkAuth(), m.input.Init())
}

// Update is the single mutation point for all application state.
func (m Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := teaMsg.(type) {
	case ProgramReady:
		m.program = v.Program
		return m, nil

	case retryConnect:
		return m, m.checkAuth()

	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.header.SetWidth(v.Width)
		m.input.SetWidth(v.Width)
		m.docsPanel.SetWidth(v.Width)
		m.picker.SetWidth(v.Width)
		m.chat.SetSize(v.Width, m.chatHeight())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(v)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.status, cmd = m.status.Update(v)
		return m, cmd

	case model.PickerChoice:
		if m.store.IsActive(v.Name) {
			return m, m.input.Focus()
		}
		var cmd tea.Cmd
		m, cmd = m.activateSession(v.Name)
		return m, tea.Batch(cmd, m.input.Focus())

	case model.PickerDelete:
		return m, tea.Batch(m.deleteSession(v.Name), m.input.Focus())

	case model.PickerCancel:
		return m, m.input.Focus()

	case msg.MeResult:
		return m.handleMe(v)
	case msg.SessionListResult:
		return m.handleSessionList(v)
	case msg.SessionCreatedResult:
		return m.handleSessionCreated(v)
	case msg.RenameResult:
		return m.handleRename(v)
	case msg.DeleteResult:
		return m.handleDelete(v)
	case msg.AutoNameResult:
		return m.handleAutoName(v)
	case msg.HistoryResult:
		return m.handleHistory(v)
	case msg.DocumentsResult:
		return m.handleDocuments(v)
	case msg.AskResult:
		return m.handleAsk(v)
	case msg.UploadProgress:
		return m.handleUploadProgress(v)
	case msg.UploadResult:
		return m.handleUploadResult(v)
	case msg.LoginResult:
		return m.handleLogin(v)
	case msg.DocumentSaved:
		return m.handleDocumentSaved(v)
	}

	var cmd tea.Cmd
	m.input, cmd = updateInput(m.input, teaMsg)
	return m, cmd
}

func (m Model) handleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys

	// The picker owns the keyboard while it is open.
	if m.picker.IsActive() {
		updated, cmd := m.picker.Update(k)
		m.picker = updated.(model.PickerModel)
		if !m.picker.IsActive() {
			m.chat.SetSize(m.width, m.chatHeight())
		}
		return m, cmd
	}

	switch {
	case key.Matches(k, keys.Cancel), key.Matches(k, keys.QuitEOF):
		if m.input.Value() != "" && key.Matches(k, keys.Cancel) {
			m.input.Reset()
			m.confirmQuit = false
			return m, nil
		}
		if m.confirmQuit || key.Matches(k, keys.QuitEOF) {
			return m, tea.Quit
		}
		m.confirmQuit = true
		m.chat.AddSystemMessage("Press Ctrl+C again to quit.")
		return m, nil

	case key.Matches(k, keys.Submit):
		m.confirmQuit = false
		return m.submitInput()

	case key.Matches(k, keys.NewSession):
		return m, m.createSession("", false)

	case key.Matches(k, keys.SessionPicker):
		m.openPicker()
		return m, nil

	case key.Matches(k, keys.ClearInput):
		m.input.Reset()
		return m, nil

	case key.Matches(k, keys.Help):
		m.chat.AddSystemMessage(helpText())
		return m, nil

	case key.Matches(k, keys.ScrollTop):
		m.chat.ScrollToTop()
		return m, nil

	case key.Matches(k, keys.ScrollBottom):
		m.chat.ScrollToBottom()
		return m, nil

	case key.Matches(k, keys.PageUp), key.Matches(k, keys.PageDown):
		updated, cmd := m.chat.Update(k)
		m.chat = updated.(model.ChatModel)
		return m, cmd

	case key.Matches(k, keys.Escape):
		m.errBar.Clear()
		return m, nil
	}

	m.confirmQuit = false
	var cmd tea.Cmd
	m.input, cmd = updateInput(m.input, k)
	return m, cmd
}

// submitInput routes the buffer either to the slash command dispatcher or
// to the chat send path.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	raw := m.input.Value()
	text, ok := m.conversation.Prepare(raw)
	if !ok {
		return m, nil
	}
	m.input.Submit(text)

	if strings.HasPrefix(text, "/") {
		return m.runCommand(text)
	}
	return m.sendChat(text)
}

// sendChat appends the user turn optimistically and dispatches the ask.
// The turn is never rolled back on failure.
func (m Model) sendChat(text string) (tea.Model, tea.Cmd) {
	if m.status.Thinking() {
		m.chat.AddSystemMessage("Still thinking — wait for the current answer.")
		return m, nil
	}
	active := m.store.Active()
	if active == "" {
		m.chat.AddSystemError("No active session. Create one with /new.")
		return m, nil
	}

	prior := m.conversation.AppendUser(text)
	m.chat.AddUserMessage(text)
	m.errBar.Clear()
	m.chat.SetTyping(true)
	return m, tea.Batch(m.ask(active, text, prior), m.status.StartThinking())
}

// runCommand dispatches one slash command.
func (m Model) runCommand(text string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(text)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "/help":
		m.chat.AddSystemMessage(helpText())
		return m, nil

	case "/exit", "/quit":
		return m, tea.Quit

	case "/new":
		// Optional explicit name: /new quarterly report
		name := strings.TrimSpace(strings.TrimPrefix(text, "/new"))
		return m, m.createSession(name, false)

	case "/sessions":
		m.openPicker()
		return m, nil

	case "/session":
		if len(args) == 0 {
			m.chat.AddSystemError("Usage: /session <name>")
			return m, nil
		}
		name := strings.TrimSpace(strings.TrimPrefix(text, "/session"))
		if _, ok := m.store.Find(name); !ok {
			m.chat.AddSystemError("No such session: " + name)
			return m, nil
		}
		if m.store.IsActive(name) {
			return m, nil
		}
		return m.activateSession(name)

	case "/rename":
		if len(args) == 0 {
			m.chat.AddSystemError("Usage: /rename <new name>")
			return m, nil
		}
		active := m.store.Active()
		if active == "" {
			m.chat.AddSystemError("No active session to rename.")
			return m, nil
		}
		newName := strings.TrimSpace(strings.TrimPrefix(text, "/rename"))
		m.store.RenameLocal(active, newName)
		m.status.SetSession(newName)
		return m, m.renameSession(active, newName)

	case "/delete":
		name := strings.TrimSpace(strings.TrimPrefix(text, "/delete"))
		if name == "" {
			name = m.store.Active()
		}
		if name == "" {
			m.chat.AddSystemError("No session to delete.")
			return m, nil
		}
		return m, m.deleteSession(name)

	case "/upload":
		if len(args) == 0 {
			m.chat.AddSystemError("Usage: /upload <path-to-pdf>")
			return m, nil
		}
		return m.startUpload(strings.TrimSpace(strings.TrimPrefix(text, "/upload")))

	case "/docs":
		m.showDocs()
		return m, nil

	case "/view":
		if len(args) != 1 {
			m.chat.AddSystemError("Usage: /view <number> (see /docs)")
			return m, nil
		}
		return m.viewDoc(args[0])

	case "/login":
		if len(args) != 2 {
			m.chat.AddSystemError("Usage: /login <email> <password>")
			return m, nil
		}
		return m, m.doLogin(args[0], args[1])

	case "/register":
		if len(args) != 3 {
			m.chat.AddSystemError("Usage: /register <name> <email> <password>")
			return m, nil
		}
		return m, m.doRegister(args[0], args[1], args[2])

	case "/whoami":
		return m, m.checkAuth()

	case "/logout":
		m.logout()
		return m, nil
	}

	m.chat.AddSystemError("Unknown command: " + cmd + " (try /help)")
	return m, nil
}

func (m *Model) openPicker() {
	sessions := m.store.Sessions()
	if len(sessions) == 0 {
		m.chat.AddSystemMessage("No sessions yet. Create one with /new.")
		return
	}
	items := make([]model.SessionItem, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, model.SessionItem{Name: s.Name, Active: m.store.IsActive(s.Name)})
	}
	m.picker.SetItems(items)
	m.chat.SetSize(m.width, m.chatHeight())
}

func (m Model) startUpload(path string) (tea.Model, tea.Cmd) {
	if m.store.Active() == "" {
		m.chat.AddSystemError("No active session. Create one with /new before uploading.")
		return m, nil
	}
	if m.upload.Active() {
		m.chat.AddSystemError("An upload is already running.")
		return m, nil
	}
	path = expandHome(path)
	m.upload.Start(baseName(path))
	m.status.SetUpload(m.upload.FileName, 0)
	m.chat.AddSystemMessage("Uploading " + m.upload.FileName + "…")
	return m, m.uploadDocument(path)
}

func (m *Model) showDocs() {
	docs := m.documents.List()
	if len(docs) == 0 {
		m.chat.AddSystemMessage("No documents in this session. Add one with /upload <path>.")
		return
	}
	var sb strings.Builder
	sb.WriteString("Documents:")
	for i, d := range docs {
		sb.WriteString(fmt.Sprintf("\n  %d. %s (%s)", i+1, d.Filename, model.FormatSize(d.Size)))
	}
	m.chat.AddSystemMessage(sb.String())
}

func (m Model) viewDoc(arg string) (tea.Model, tea.Cmd) {
	doc, ok := m.documents.Get(parseIndex(arg))
	if !ok {
		m.chat.AddSystemError("No document #" + arg + " (see /docs)")
		return m, nil
	}
	m.chat.AddSystemMessage("Fetching " + doc.Filename + "…")
	return m, m.saveDocument(doc.ID, doc.Filename)
}

func (m *Model) logout() {
	m.client.SetToken("")
	removeToken(m.tokenPath)
	m.store.Apply(nil)
	m.store.ClearActive()
	m.resetConversation()
	m.status.SetSession("")
	m.status.SetUser("")
	m.chat.SetMessages(nil)
	m.chat.AddSystemMessage("Signed out. Use /login to sign back in.")
}

// View lays the screen out top to bottom: header, chat viewport, optional
// document panel or picker, error slot, status line, input.
func (m Model) View() string {
	if m.state == StateConnecting {
		return m.connectingView()
	}

	var sb strings.Builder
	sb.WriteString(m.header.View())
	sb.WriteString("\n")
	sb.WriteString(m.chat.View())
	sb.WriteString("\n")

	if m.picker.IsActive() {
		sb.WriteString(m.picker.View())
		sb.WriteString("\n")
	} else if m.docsPanel.Lines() > 0 {
		sb.WriteString(m.docsPanel.View())
		sb.WriteString("\n")
	}

	if m.errBar.HasError() {
		sb.WriteString(m.errBar.View())
		sb.WriteString("\n")
	}

	sb.WriteString(m.status.View())
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	return sb.String()
}

func (m Model) connectingView() string {
	var sb strings.Builder
	sb.WriteString(m.header.View())
	sb.WriteString("\n\n")
	sb.WriteString("  Connecting to " + m.client.BaseURL + "…\n")
	sb.WriteString("\n  Retrying every few seconds. Ctrl+C to quit.\n")
	return sb.String()
}

// chatHeight is the terminal height minus every fixed section.
func (m Model) chatHeight() int {
	reserved := 2 // header + separator
	reserved += 2 // status + input
	if m.errBar.HasError() {
		reserved++
	}
	if m.picker.IsActive() {
		reserved += 15
	} else {
		reserved += m.docsPanel.Lines()
	}
	h := m.height - reserved
	if h < 5 {
		h = 5
	}
	return h
}

func helpText() string {
	return strings.Join([]string{
		"Commands:",
		"  /new [name]          create a session (server names it when omitted)",
		"  /sessions            open the session picker (also Ctrl+S)",
		"  /session <name>      switch to a session",
		"  /rename <new name>   rename the active session",
		"  /delete [name]       delete a session (active one when omitted)",
		"  /upload <path>       upload a PDF into the active session",
		"  /docs                list the session's documents",
		"  /view <number>       download a document to the profile dir",
		"  /login <email> <pw>  sign in",
		"  /register <n> <e> <pw>  create an account",
		"  /whoami              show the signed-in account",
		"  /logout              sign out and clear the saved token",
		"  /exit                quit (also Ctrl+D)",
		"",
		"Keys: Ctrl+N new session · Ctrl+S sessions · Ctrl+U clear input",
		"      Home/End scroll · PgUp/PgDn page · Esc dismiss error",
	}, "\n")
}
