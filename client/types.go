package client

// Session from GET /sessions. The human-readable name is the key used by
// every session-scoped endpoint; the server-side id is informational.
type Session struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// SessionCreateRequest for POST /sessions/new. Name is optional; when empty
// the server assigns the next sequential "Session N".
type SessionCreateRequest struct {
	Name string `json:"name,omitempty"`
}

// SessionCreateResponse from POST /sessions/new.
type SessionCreateResponse struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// RenameRequest for POST /sessions/rename_by_name.
type RenameRequest struct {
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}

// SuggestRequest for POST /sessions/suggest_from_chat.
type SuggestRequest struct {
	Messages []Message `json:"messages"`
}

// SuggestResponse from POST /sessions/suggest_from_chat.
type SuggestResponse struct {
	Name string `json:"name"`
}

// Source is one retrieved passage backing an assistant answer.
type Source struct {
	Filename string  `json:"filename"`
	Page     *int    `json:"page,omitempty"`
	Snippet  string  `json:"snippet,omitempty"`
	Score    float64 `json:"score,omitempty"`
}

// Message is one conversation turn. Sources are present on assistant
// messages only and may be empty.
type Message struct {
	Role    string   `json:"role"`
	Content string   `json:"content"`
	Sources []Source `json:"sources,omitempty"`
}

// AskRequest for POST /chat/ask.
type AskRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// AskResponse from POST /chat/ask.
type AskResponse struct {
	Answer  string   `json:"answer"`
	Sources []Source `json:"sources"`
}

// Document from GET /documents.
type Document struct {
	ID       string `json:"_id"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// LoginRequest for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse from POST /auth/login and /auth/register.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// User from GET /auth/me.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
