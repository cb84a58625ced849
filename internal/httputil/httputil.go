// Package httputil carries the HTTP plumbing shared by the master and volume
// clients: request construction, body handling, and JSON decoding. It knows
// nothing about the wire protocol itself; status-code interpretation stays
// with the callers so each client can map statuses to its own error kinds.
package httputil

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DiscardLogger returns a logger that drops everything. Clients default to
// it so the library stays silent unless a caller injects a real logger.
func DiscardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Do issues a single request with the given client and returns the raw
// response. The context governs cancellation and timeout; no retries are
// performed. Transport failures come back wrapped with the request URL.
func Do(ctx context.Context, client *http.Client, method, url, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s %s", method, url)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, url)
	}
	return resp, nil
}

// ReadAll fully materializes and closes the response body.
func ReadAll(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}
	return data, nil
}

// BodyText drains and closes the response body, returning it as text for
// error diagnostics. A failed read yields an empty string; when the body is
// unreadable there is no better detail to carry.
func BodyText(resp *http.Response) string {
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}
	return string(data)
}

// DecodeJSON decodes the response body into out and closes it.
func DecodeJSON(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decoding response body")
	}
	return nil
}
