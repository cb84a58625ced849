package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDo verifies request construction: method, context wiring, content type
// and transport error wrapping.
func TestDo(t *testing.T) {
	var gotMethod, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)

	client := &http.Client{}

	resp, err := Do(context.Background(), client, http.MethodPut, srv.URL, "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "application/json", gotContentType)

	// A refused connection is a transport failure carrying the URL
	_, err = Do(context.Background(), client, http.MethodGet, "http://127.0.0.1:1/none", "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http://127.0.0.1:1/none")

	// A cancelled context propagates immediately
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Do(ctx, client, http.MethodGet, srv.URL, "", nil)
	require.Error(t, err)
}

// TestBodyHelpers verifies the body materialization helpers.
func TestBodyHelpers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/json":
			w.Write([]byte(`{"size":12}`))
		default:
			w.Write([]byte("plain text body"))
		}
	}))
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/text")
	require.NoError(t, err)
	data, err := ReadAll(resp)
	require.NoError(t, err)
	assert.Equal(t, "plain text body", string(data))

	resp, err = http.Get(srv.URL + "/text")
	require.NoError(t, err)
	assert.Equal(t, "plain text body", BodyText(resp))

	resp, err = http.Get(srv.URL + "/json")
	require.NoError(t, err)
	var out struct {
		Size int `json:"size"`
	}
	require.NoError(t, DecodeJSON(resp, &out))
	assert.Equal(t, 12, out.Size)

	// Malformed JSON must fail loudly, not silently
	resp, err = http.Get(srv.URL + "/text")
	require.NoError(t, err)
	require.Error(t, DecodeJSON(resp, &out))
}
