package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

// Client is the single authenticated gateway to the DocFusion backend.
// Every request carries the bearer credential when one is set; when absent
// the call goes out unauthenticated and the server rejects it.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 300 * time.Second,
		},
	}
}

func (c *Client) SetToken(token string) {
	c.Token = token
}

// Me probes GET /auth/me. Used as the startup connectivity/auth check.
func (c *Client) Me() (*User, error) {
	resp, err := c.get("/auth/me", nil)
	if err != nil {
		return nil, errors.Wrap(err, "me")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, errors.Wrap(err, "decode user")
	}
	return &user, nil
}

func (c *Client) Login(email, password string) (*TokenResponse, error) {
	resp, err := c.postJSON("/auth/login", LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, errors.Wrap(err, "login")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	var result TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "decode token")
	}
	c.Token = result.AccessToken
	return &result, nil
}

func (c *Client) Register(name, email, password string) (*TokenResponse, error) {
	resp, err := c.postJSON("/auth/register", RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return nil, errors.Wrap(err, "register")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	var result TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "decode token")
	}
	c.Token = result.AccessToken
	return &result, nil
}

// ListSessions returns the user's sessions, newest first (server order).
func (c *Client) ListSessions() ([]Session, error) {
	resp, err := c.get("/sessions", nil)
	if err != nil {
		return nil, errors.Wrap(err, "list sessions")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	var sessions []Session
	if err := json.NewDecoder(resp.Body).Decode(&sessions); err != nil {
		return nil, errors.Wrap(err, "decode sessions")
	}
	return sessions, nil
}

// CreateSession creates a session. With an empty name the server assigns
// the next sequential "Session N" and returns it.
func (c *Client) CreateSession(name string) (*SessionCreateResponse, error) {
	resp, err := c.postJSON("/sessions/new", SessionCreateRequest{Name: name})
	if err != nil {
		return nil, errors.Wrap(err, "create session")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, c.parseError(resp)
	}
	var result SessionCreateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "decode session")
	}
	return &result, nil
}

// RenameSession renames oldName to newName. The name is the scoping key for
// every session-scoped call, so the caller must switch its active pointer
// after a successful rename.
func (c *Client) RenameSession(oldName, newName string) error {
	resp, err := c.postJSON("/sessions/rename_by_name", RenameRequest{OldName: oldName, NewName: newName})
	if err != nil {
		return errors.Wrap(err, "rename session")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return c.parseError(resp)
	}
	return nil
}

// SuggestSessionName asks the backend to title a session from recent
// conversation turns.
func (c *Client) SuggestSessionName(messages []Message) (string, error) {
	resp, err := c.postJSON("/sessions/suggest_from_chat", SuggestRequest{Messages: messages})
	if err != nil {
		return "", errors.Wrap(err, "suggest name")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", c.parseError(resp)
	}
	var result SuggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Wrap(err, "decode suggestion")
	}
	return result.Name, nil
}

func (c *Client) DeleteSession(name string) error {
	req, err := http.NewRequest(http.MethodDelete, c.BaseURL+"/sessions/"+url.PathEscape(name), nil)
	if err != nil {
		return errors.Wrap(err, "delete session")
	}
	c.setHeaders(req)
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "delete session")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return c.parseError(resp)
	}
	return nil
}

// History returns the message history of a session in chronological order.
func (c *Client) History(session string) ([]Message, error) {
	resp, err := c.get("/chat/history", url.Values{"session_id": {session}})
	if err != nil {
		return nil, errors.Wrap(err, "history")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	var messages []Message
	if err := json.NewDecoder(resp.Body).Decode(&messages); err != nil {
		return nil, errors.Wrap(err, "decode history")
	}
	return messages, nil
}

// Ask sends one user turn and returns the assistant's answer with sources.
func (c *Client) Ask(session, message string) (*AskResponse, error) {
	resp, err := c.postJSON("/chat/ask", AskRequest{SessionID: session, Message: message})
	if err != nil {
		return nil, errors.Wrap(err, "ask")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	var result AskResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "decode answer")
	}
	return &result, nil
}

// ListDocuments returns the documents belonging to a session.
func (c *Client) ListDocuments(session string) ([]Document, error) {
	resp, err := c.get("/documents", url.Values{"session_id": {session}})
	if err != nil {
		return nil, errors.Wrap(err, "list documents")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	var docs []Document
	if err := json.NewDecoder(resp.Body).Decode(&docs); err != nil {
		return nil, errors.Wrap(err, "decode documents")
	}
	return docs, nil
}

// ViewDocument fetches the raw PDF payload of a stored document.
func (c *Client) ViewDocument(id string) ([]byte, error) {
	resp, err := c.get("/documents/"+url.PathEscape(id)+"/view", nil)
	if err != nil {
		return nil, errors.Wrap(err, "view document")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read document")
	}
	return data, nil
}

func (c *Client) get(path string, query url.Values) (*http.Response, error) {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)
	return c.HTTPClient.Do(req)
}

func (c *Client) postJSON(path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "marshal")
	}
	req, err := http.NewRequest(http.MethodPost, c.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)
	return c.HTTPClient.Do(req)
}

func (c *Client) setHeaders(req *http.Request) {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
}
