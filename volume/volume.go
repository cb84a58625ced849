package volume

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dreamware/seaweed"
	"github.com/dreamware/seaweed/internal/httputil"
)

// Volume is a client for one specific volume server, usually the one named
// by a Location from a master assign or lookup response.
type Volume struct {
	addr seaweed.Addr
	http *http.Client
	log  logrus.FieldLogger
}

// Option configures a Volume.
type Option func(*Volume)

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(v *Volume) { v.http = c }
}

// WithLogger attaches a logger; requests are logged at debug level.
// Without it the client is silent.
func WithLogger(l logrus.FieldLogger) Option {
	return func(v *Volume) { v.log = l }
}

// New creates a client bound to the given volume server address.
func New(addr seaweed.Addr, opts ...Option) *Volume {
	v := &Volume{
		addr: addr,
		http: &http.Client{},
		log:  httputil.DiscardLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewFromString creates a client from a "host:port" token, defaulting the
// port to seaweed.DefaultPort when omitted.
func NewFromString(s string, opts ...Option) (*Volume, error) {
	addr, err := seaweed.ParseAddr(s)
	if err != nil {
		return nil, err
	}
	return New(addr, opts...), nil
}

// FromLocation creates a client for the volume server named by a master
// response, using the location's internal URL.
func FromLocation(loc seaweed.Location, opts ...Option) (*Volume, error) {
	return NewFromString(loc.URL, opts...)
}

// Addr returns the address the client is bound to.
func (v *Volume) Addr() seaweed.Addr { return v.addr }

// fileURL builds "<base>/<fid>" plus the encoded query, when any.
func (v *Volume) fileURL(fid seaweed.Fid, q url.Values) string {
	u := v.addr.BaseURL() + "/" + fid.String()
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

// Fetch retrieves the object named by fid and returns the raw response,
// leaving the body unread so the caller can stream it. The caller owns
// closing the body on success. Any non-200 status drains the body and
// yields *RequestError.
func (v *Volume) Fetch(ctx context.Context, fid seaweed.Fid, opts *GetOptions) (*http.Response, error) {
	u := v.fileURL(fid, opts.values())
	v.log.WithField("url", u).Debug("fetching file")

	resp, err := httputil.Do(ctx, v.http, http.MethodGet, u, "", nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: httputil.BodyText(resp)}
	}
	return resp, nil
}

// FetchBytes retrieves the object named by fid fully materialized in memory.
// A 404 yields ErrNotFound so callers can branch on absence; any other
// non-200 status yields *RequestError.
func (v *Volume) FetchBytes(ctx context.Context, fid seaweed.Fid, opts *GetOptions) ([]byte, error) {
	u := v.fileURL(fid, opts.values())
	v.log.WithField("url", u).Debug("fetching file bytes")

	resp, err := httputil.Do(ctx, v.http, http.MethodGet, u, "", nil)
	if err != nil {
		return nil, err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		return httputil.ReadAll(resp)
	case http.StatusNotFound:
		resp.Body.Close()
		return nil, ErrNotFound
	default:
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: httputil.BodyText(resp)}
	}
}

// UploadResult is the volume server's answer to a successful store.
type UploadResult struct {
	Size int    `json:"size"`
	ETag string `json:"eTag"`
}

// Store uploads data as the content of fid via a raw PUT body.
// Success is 201 Created; anything else yields *UploadError.
func (v *Volume) Store(ctx context.Context, fid seaweed.Fid, data []byte, opts *UploadOptions) (*UploadResult, error) {
	u := v.fileURL(fid, opts.values())
	v.log.WithFields(logrus.Fields{"url": u, "bytes": len(data)}).Debug("storing file")

	resp, err := httputil.Do(ctx, v.http, http.MethodPut, u, "", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return decodeUpload(resp)
}

// FormFile is a named file to upload as a multipart form part. The part is
// sent under the form field "file".
type FormFile struct {
	Name        string // File name reported to the server
	ContentType string // MIME type of the content; empty leaves it unset
	Data        []byte
}

// StoreForm uploads a named file as the content of fid via a multipart POST,
// for servers or pipelines that expect form uploads rather than raw bodies.
// Same success and error contract as Store.
func (v *Volume) StoreForm(ctx context.Context, fid seaweed.Fid, file FormFile, opts *UploadOptions) (*UploadResult, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Name))
	if file.ContentType != "" {
		hdr.Set("Content-Type", file.ContentType)
	}
	part, err := w.CreatePart(hdr)
	if err != nil {
		return nil, errors.Wrap(err, "building multipart body")
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, errors.Wrap(err, "building multipart body")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "building multipart body")
	}

	u := v.fileURL(fid, opts.values())
	v.log.WithFields(logrus.Fields{"url": u, "file": file.Name}).Debug("storing multipart file")

	resp, err := httputil.Do(ctx, v.http, http.MethodPost, u, w.FormDataContentType(), &body)
	if err != nil {
		return nil, err
	}
	return decodeUpload(resp)
}

func decodeUpload(resp *http.Response) (*UploadResult, error) {
	if resp.StatusCode != http.StatusCreated {
		return nil, &UploadError{StatusCode: resp.StatusCode, Body: httputil.BodyText(resp)}
	}
	var res UploadResult
	if err := httputil.DecodeJSON(resp, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteResult is the volume server's answer to a successful delete.
type DeleteResult struct {
	Size int `json:"size"`
}

// Delete removes the object named by fid. Success is 202 Accepted; anything
// else yields *DeleteError.
func (v *Volume) Delete(ctx context.Context, fid seaweed.Fid) (*DeleteResult, error) {
	u := v.addr.BaseURL() + "/" + fid.String()
	v.log.WithField("url", u).Debug("deleting file")

	resp, err := httputil.Do(ctx, v.http, http.MethodDelete, u, "", nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusAccepted {
		return nil, &DeleteError{StatusCode: resp.StatusCode, Body: httputil.BodyText(resp)}
	}

	var res DeleteResult
	if err := httputil.DecodeJSON(resp, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
