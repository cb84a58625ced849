package master

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamware/seaweed"
)

// newTestMaster points a Master at an httptest server.
func newTestMaster(t *testing.T, handler http.HandlerFunc) (*Master, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m, err := NewFromString(strings.TrimPrefix(srv.URL, "http://"))
	require.NoError(t, err)
	return m, srv
}

// TestAssignDefaults verifies a default assign request: no query parameters,
// and a response decoded into fid plus flat-embedded location.
func TestAssignDefaults(t *testing.T) {
	m, _ := newTestMaster(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/dir/assign", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery, "default options must not send any query parameters")

		w.Write([]byte(`{
			"count": 1,
			"fid": "3,01637037d6",
			"publicUrl": "1.1.1.1:9333",
			"url": "1.2.2.2:3233"
		}`))
	})

	res, err := m.Assign(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), res.Count)
	assert.Equal(t, "3,01637037d6", res.Fid.String())
	assert.Equal(t, "1.1.1.1:9333", res.PublicURL)
	assert.Equal(t, "1.2.2.2:3233", res.URL)
}

// TestAssignOptions verifies that every set option is encoded under its
// camelCase query key and that unset options stay absent.
func TestAssignOptions(t *testing.T) {
	var query url.Values
	m, _ := newTestMaster(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"count":2,"fid":"1,ab","publicUrl":"a:1","url":"b:2"}`))
	})

	opts := &AssignOptions{
		Count:               2,
		Collection:          "images",
		DataCenter:          "dc1",
		Rack:                "rack7",
		Replication:         &seaweed.Replication{SameRack: seaweed.ReplicaTwo},
		TTL:                 &seaweed.TTL{Value: 5, Unit: seaweed.TTLMonth},
		Preallocate:         1024,
		WritableVolumeCount: 4,
		Disk:                "ssd",
	}
	_, err := m.Assign(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "2", query.Get("count"))
	assert.Equal(t, "images", query.Get("collection"))
	assert.Equal(t, "dc1", query.Get("dataCenter"))
	assert.Equal(t, "rack7", query.Get("rack"))
	assert.Equal(t, "002", query.Get("replication"))
	assert.Equal(t, "5M", query.Get("ttl"))
	assert.Equal(t, "1024", query.Get("preallocate"))
	assert.Equal(t, "4", query.Get("writableVolumeCount"))
	assert.Equal(t, "ssd", query.Get("disk"))

	// DataNode was left unset and must not appear at all
	_, present := query["dataNode"]
	assert.False(t, present)
}

// TestAssignError verifies that a non-200 response surfaces as RequestError
// carrying the response body text.
func TestAssignError(t *testing.T) {
	m, _ := newTestMaster(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no writable volumes", http.StatusServiceUnavailable)
	})

	_, err := m.Assign(context.Background(), nil)
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusServiceUnavailable, reqErr.StatusCode)
	assert.Contains(t, reqErr.Body, "no writable volumes")
}

// TestLookup verifies the lookup query and the decoding of the ordered
// location list.
func TestLookup(t *testing.T) {
	var query url.Values
	m, _ := newTestMaster(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dir/lookup", r.URL.Path)
		query = r.URL.Query()
		w.Write([]byte(`{"locations":[
			{"publicUrl":"1.1.1.1:8080","url":"10.0.0.1:8080"},
			{"publicUrl":"1.1.1.2:8080","url":"10.0.0.2:8080"}
		]}`))
	})

	fid, err := seaweed.ParseFid("3,5442434343_2")
	require.NoError(t, err)

	res, err := m.Lookup(context.Background(), fid, &LookupOptions{
		Collection: "images",
		FileID:     &fid,
		Read:       true,
	})
	require.NoError(t, err)

	assert.Equal(t, "3", query.Get("volumeId"))
	assert.Equal(t, "images", query.Get("collection"))
	assert.Equal(t, "3,5442434343_2", query.Get("fileId"))
	assert.Equal(t, "true", query.Get("read"))

	// Server-reported order must be preserved
	require.Len(t, res.Locations, 2)
	assert.Equal(t, "10.0.0.1:8080", res.Locations[0].URL)
	assert.Equal(t, "10.0.0.2:8080", res.Locations[1].URL)
}

// TestLookupError verifies the error contract of lookup matches assign.
func TestLookupError(t *testing.T) {
	m, _ := newTestMaster(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "volume 9 not found", http.StatusNotFound)
	})

	_, err := m.Lookup(context.Background(), seaweed.Fid{VolumeID: 9, Key: "x"}, nil)
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
	assert.Contains(t, reqErr.Body, "volume 9 not found")
}

// TestNewFromStringMalformed verifies address validation at construction.
func TestNewFromStringMalformed(t *testing.T) {
	_, err := NewFromString(":9333")
	require.Error(t, err)
	assert.ErrorIs(t, err, seaweed.ErrMalformedAddr)
}
