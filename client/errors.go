package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// APIError is a non-2xx response. Detail carries the server-supplied
// human-readable message when the body had one.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("API %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("API %d", e.StatusCode)
}

// IsAuthError reports whether err is a 401/403 response.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// Detail extracts the server detail message from err, falling back to the
// given generic message for transport errors and detail-less responses.
func Detail(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

// parseError converts a non-2xx response into an *APIError, decoding the
// FastAPI {"detail": "..."} error shape when present.
func (c *Client) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var wire struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &wire) == nil && wire.Detail != "" {
		return &APIError{StatusCode: resp.StatusCode, Detail: wire.Detail}
	}
	return &APIError{StatusCode: resp.StatusCode}
}
