package client

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ProgressFunc receives transfer progress while an upload streams. total is
// the file size in bytes, or 0 when unknown; callers skip updates then.
type ProgressFunc func(loaded, total int64)

// progressReader counts bytes as they are consumed by the HTTP transport.
type progressReader struct {
	r      io.Reader
	loaded int64
	total  int64
	fn     ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.loaded += int64(n)
		if p.fn != nil {
			p.fn(p.loaded, p.total)
		}
	}
	return n, err
}

// UploadDocument streams a PDF into the given session as multipart form
// data (fields: file, session_id) and returns the created document record.
func (c *Client) UploadDocument(session, path string, onProgress ProgressFunc) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open file")
	}
	defer f.Close()

	var total int64
	if info, err := f.Stat(); err == nil {
		total = info.Size()
	}

	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)
	go func() {
		part, err := form.CreateFormFile("file", filepath.Base(path))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		src := &progressReader{r: f, total: total, fn: onProgress}
		if _, err := io.Copy(part, src); err != nil {
			pw.CloseWithError(err)
			return
		}
		if session != "" {
			if err := form.WriteField("session_id", session); err != nil {
				pw.CloseWithError(err)
				return
			}
		}
		pw.CloseWithError(form.Close())
	}()

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/documents/upload", pr)
	if err != nil {
		return nil, errors.Wrap(err, "upload")
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	c.setHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "upload")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, c.parseError(resp)
	}
	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode document")
	}
	return &doc, nil
}
