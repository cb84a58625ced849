// Package weedtest provides in-process fake master and volume servers for
// testing the client packages without a running cluster. The fakes implement
// the wire protocol faithfully enough for end-to-end scenarios: assign and
// lookup on the master side; store (raw and multipart), fetch and delete on
// the volume side, with the real status codes (200, 201, 202, 404).
package weedtest

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
)

// volumeID is the single volume id the fake cluster serves.
const volumeID uint32 = 3

// Cluster is a fake master plus a single fake volume server.
type Cluster struct {
	Master *httptest.Server
	Volume *httptest.Server

	store *blobStore

	mu      sync.Mutex
	nextKey uint64
}

// NewCluster starts both servers. Callers must Close the cluster when done.
func NewCluster() *Cluster {
	c := &Cluster{store: newBlobStore()}
	c.Volume = httptest.NewServer(http.HandlerFunc(c.handleVolume))
	c.Master = httptest.NewServer(http.HandlerFunc(c.handleMaster))
	return c
}

// Close shuts both servers down.
func (c *Cluster) Close() {
	c.Master.Close()
	c.Volume.Close()
}

// MasterAddr returns the master endpoint as a "host:port" token.
func (c *Cluster) MasterAddr() string {
	return strings.TrimPrefix(c.Master.URL, "http://")
}

// VolumeAddr returns the volume endpoint as a "host:port" token, the form
// locations carry on the wire.
func (c *Cluster) VolumeAddr() string {
	return strings.TrimPrefix(c.Volume.URL, "http://")
}

func (c *Cluster) handleMaster(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/dir/assign":
		c.handleAssign(w, r)
	case "/dir/lookup":
		c.handleLookup(w, r)
	default:
		http.Error(w, "unknown endpoint "+r.URL.Path, http.StatusNotFound)
	}
}

func (c *Cluster) handleAssign(w http.ResponseWriter, r *http.Request) {
	count := uint64(1)
	if s := r.URL.Query().Get("count"); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			http.Error(w, "bad count "+s, http.StatusBadRequest)
			return
		}
		count = n
	}

	c.mu.Lock()
	c.nextKey++
	key := fmt.Sprintf("%08x", c.nextKey)
	c.mu.Unlock()

	resp := map[string]any{
		"count":     count,
		"fid":       fmt.Sprintf("%d,%s", volumeID, key),
		"publicUrl": c.VolumeAddr(),
		"url":       c.VolumeAddr(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (c *Cluster) handleLookup(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("volumeId")
	if id != strconv.FormatUint(uint64(volumeID), 10) {
		http.Error(w, "volume id "+id+" not found", http.StatusNotFound)
		return
	}
	resp := map[string]any{
		"locations": []map[string]string{
			{"publicUrl": c.VolumeAddr(), "url": c.VolumeAddr()},
		},
	}
	writeJSON(w, http.StatusOK, resp)
}

func (c *Cluster) handleVolume(w http.ResponseWriter, r *http.Request) {
	fid := strings.TrimPrefix(r.URL.Path, "/")
	if fid == "" {
		http.Error(w, "missing file id", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		data, err := c.store.Get(fid)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write(data)

	case http.MethodPut:
		data, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "read body", http.StatusInternalServerError)
			return
		}
		c.store.Put(fid, data)
		writeJSON(w, http.StatusCreated, map[string]any{
			"size": len(data),
			"eTag": fmt.Sprintf("%x", md5.Sum(data))[:8],
		})

	case http.MethodPost:
		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "missing file part", http.StatusBadRequest)
			return
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			http.Error(w, "read file part", http.StatusInternalServerError)
			return
		}
		c.store.Put(fid, data)
		writeJSON(w, http.StatusCreated, map[string]any{
			"size": len(data),
			"eTag": fmt.Sprintf("%x", md5.Sum(data))[:8],
		})

	case http.MethodDelete:
		n := c.store.Delete(fid)
		writeJSON(w, http.StatusAccepted, map[string]any{"size": n})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
