package master

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/dreamware/seaweed"
	"github.com/dreamware/seaweed/internal/httputil"
)

// Master is a client for the directory (master) server of the cluster.
// The zero http.Client is used unless one is injected; the default carries
// no timeout, so callers control cancellation entirely through the context.
type Master struct {
	addr seaweed.Addr
	http *http.Client
	log  logrus.FieldLogger
}

// Option configures a Master.
type Option func(*Master)

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(m *Master) { m.http = c }
}

// WithLogger attaches a logger; requests are logged at debug level.
// Without it the client is silent.
func WithLogger(l logrus.FieldLogger) Option {
	return func(m *Master) { m.log = l }
}

// New creates a client bound to the given master address.
func New(addr seaweed.Addr, opts ...Option) *Master {
	m := &Master{
		addr: addr,
		http: &http.Client{},
		log:  httputil.DiscardLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewFromString creates a client from a "host:port" token, defaulting the
// port to seaweed.DefaultPort when omitted.
func NewFromString(s string, opts ...Option) (*Master, error) {
	addr, err := seaweed.ParseAddr(s)
	if err != nil {
		return nil, err
	}
	return New(addr, opts...), nil
}

// Addr returns the address the client is bound to.
func (m *Master) Addr() seaweed.Addr { return m.addr }

// RequestError reports a master response with an unexpected status code.
// The response body is carried verbatim as diagnostic text.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("master: response status was %d, not OK, see body for error: %s", e.StatusCode, e.Body)
}

// AssignResult is the master's answer to an assign request: the newly
// allocated file id and the location of the volume server that will hold it.
// The location fields arrive flat alongside count and fid.
type AssignResult struct {
	Count uint64      `json:"count"`
	Fid   seaweed.Fid `json:"fid"`
	seaweed.Location
}

// Assign requests allocation of a new file id from the master.
// A nil opts requests the server defaults (a single file id, no collection,
// no placement constraints). A non-200 status yields *RequestError.
func (m *Master) Assign(ctx context.Context, opts *AssignOptions) (*AssignResult, error) {
	url := m.addr.BaseURL() + "/dir/assign"
	if q := opts.values().Encode(); q != "" {
		url += "?" + q
	}
	m.log.WithField("url", url).Debug("assigning file id")

	resp, err := httputil.Do(ctx, m.http, http.MethodGet, url, "", nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: httputil.BodyText(resp)}
	}

	var res AssignResult
	if err := httputil.DecodeJSON(resp, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// LookupResult is the master's answer to a lookup request: every volume
// server currently serving the requested volume, in server-reported order.
// Callers typically try the first location and fall back to the rest.
type LookupResult struct {
	Locations []seaweed.Location `json:"locations"`
}

// Lookup resolves the volume holding fid to its current locations.
// A non-200 status yields *RequestError.
func (m *Master) Lookup(ctx context.Context, fid seaweed.Fid, opts *LookupOptions) (*LookupResult, error) {
	q := opts.values()
	q.Set("volumeId", fmt.Sprintf("%d", fid.VolumeID))
	url := m.addr.BaseURL() + "/dir/lookup?" + q.Encode()
	m.log.WithField("url", url).Debug("looking up volume")

	resp, err := httputil.Do(ctx, m.http, http.MethodGet, url, "", nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: httputil.BodyText(resp)}
	}

	var res LookupResult
	if err := httputil.DecodeJSON(resp, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
