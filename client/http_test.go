package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerHeaderSetWhenTokenPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]Session{})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok123")
	_, err := c.ListSessions()
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestNoBearerHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]Session{})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListSessions()
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestParseErrorExtractsDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "session not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.History("gone")
	require.Error(t, err)
	assert.Equal(t, "session not found", Detail(err, "Chat failed"))
}

func TestDetailFallsBackForNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>Bad Gateway</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Ask("s1", "hello")
	require.Error(t, err)
	// Opaque bodies never leak into the user-facing message.
	assert.Equal(t, "Chat failed", Detail(err, "Chat failed"))
}

func TestDetailFallsBackForTransportError(t *testing.T) {
	c := New("http://127.0.0.1:1")
	_, err := c.ListSessions()
	require.Error(t, err)
	assert.Equal(t, "request failed", Detail(err, "request failed"))
}

func TestIsAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "not authenticated"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Me()
	require.Error(t, err)
	assert.True(t, IsAuthError(err))

	_, err = New("http://127.0.0.1:1").Me()
	assert.False(t, IsAuthError(err))
}

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.c", req.Email)
		json.NewEncoder(w).Encode(TokenResponse{AccessToken: "fresh"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Login("a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "fresh", resp.AccessToken)
	assert.Equal(t, "fresh", c.Token)
}

func TestHistoryPassesSessionQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/history", r.URL.Path)
		assert.Equal(t, "my session", r.URL.Query().Get("session_id"))
		json.NewEncoder(w).Encode([]Message{
			{Role: "user", Content: "hi"},
			{Role: "assistant", Content: "hello"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	messages, err := c.History("my session")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "assistant", messages[1].Role)
}

func TestAskRoundTrip(t *testing.T) {
	page := 3
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/ask", r.URL.Path)
		var req AskRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "s1", req.SessionID)
		assert.Equal(t, "what is this?", req.Message)
		json.NewEncoder(w).Encode(AskResponse{
			Answer:  "A dataset paper.",
			Sources: []Source{{Filename: "paper.pdf", Page: &page, Snippet: "we present"}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Ask("s1", "what is this?")
	require.NoError(t, err)
	assert.Equal(t, "A dataset paper.", resp.Answer)
	require.Len(t, resp.Sources, 1)
	require.NotNil(t, resp.Sources[0].Page)
	assert.Equal(t, 3, *resp.Sources[0].Page)
}

func TestDeleteSessionEscapesName(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.DeleteSession("notes/with slash"))
	assert.Equal(t, "/sessions/notes%2Fwith%20slash", gotPath)
}

func TestCreateSessionAccepts201(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SessionCreateResponse{ID: "abc", Name: "Session 2"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.CreateSession("")
	require.NoError(t, err)
	assert.Equal(t, "Session 2", resp.Name)
}

func TestSuggestSessionNamePostsWindow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req SuggestRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Messages, 2)
		json.NewEncoder(w).Encode(SuggestResponse{Name: "Dataset overview"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	name, err := c.SuggestSessionName([]Message{
		{Role: "user", Content: "q"},
		{Role: "assistant", Content: "a"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Dataset overview", name)
}
