package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempPDF(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paper.pdf")
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 251)
	}
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestUploadDocumentMultipartFields(t *testing.T) {
	path := writeTempPDF(t, 4096)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/documents/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "sess-a", r.FormValue("session_id"))

		file, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "paper.pdf", hdr.Filename)

		json.NewEncoder(w).Encode(Document{ID: "d1", Filename: "paper.pdf", Size: 4096})
	}))
	defer srv.Close()

	c := New(srv.URL)
	doc, err := c.UploadDocument("sess-a", path, nil)
	require.NoError(t, err)
	assert.Equal(t, "d1", doc.ID)
	assert.Equal(t, int64(4096), doc.Size)
}

func TestUploadDocumentReportsProgress(t *testing.T) {
	path := writeTempPDF(t, 64<<10)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		json.NewEncoder(w).Encode(Document{ID: "d1", Filename: "paper.pdf", Size: 64 << 10})
	}))
	defer srv.Close()

	var loadedSeen []int64
	var lastTotal int64
	c := New(srv.URL)
	_, err := c.UploadDocument("sess-a", path, func(loaded, total int64) {
		loadedSeen = append(loadedSeen, loaded)
		lastTotal = total
	})
	require.NoError(t, err)

	require.NotEmpty(t, loadedSeen)
	assert.Equal(t, int64(64<<10), lastTotal)
	assert.Equal(t, int64(64<<10), loadedSeen[len(loadedSeen)-1])
	for i := 1; i < len(loadedSeen); i++ {
		assert.GreaterOrEqual(t, loadedSeen[i], loadedSeen[i-1])
	}
}

func TestUploadDocumentMissingFile(t *testing.T) {
	c := New("http://127.0.0.1:1")
	_, err := c.UploadDocument("sess-a", "/nonexistent/paper.pdf", nil)
	require.Error(t, err)
}

func TestUploadDocumentServerError(t *testing.T) {
	path := writeTempPDF(t, 128)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "only PDF files are supported"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.UploadDocument("sess-a", path, nil)
	require.Error(t, err)
	assert.Equal(t, "only PDF files are supported", Detail(err, "Upload failed"))
}
