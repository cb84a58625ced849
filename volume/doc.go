// Package volume implements the object store client of a SeaweedFS-style
// cluster: content transfer against one specific volume server, addressed by
// file ids previously allocated through package master.
//
// A Volume is an immutable value holding only the server address, usually
// built from a Location returned by the master:
//
//	v, err := volume.FromLocation(res.Location)
//	up, err := v.Store(ctx, res.Fid, data, nil)
//	body, err := v.FetchBytes(ctx, res.Fid, nil)
//	_, err = v.Delete(ctx, res.Fid)
//
// Operations are single stateless requests. Byte-oriented variants buffer
// the whole payload in memory; Fetch returns the raw *http.Response for
// callers that want to stream instead.
//
// Error kinds are closed and branchable: ErrNotFound (fetch saw 404),
// *UploadError (store status was not 201), *DeleteError (delete status was
// not 202) and *RequestError (fetch status was otherwise unexpected).
// Anything else is a propagated transport failure.
package volume
