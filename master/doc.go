// Package master implements the directory client of a SeaweedFS-style
// cluster: it asks the master server to allocate new file ids (Assign) and
// resolves existing file ids to the volume servers currently holding them
// (Lookup).
//
// A Master is an immutable value holding only the server address; it is safe
// for concurrent use. Every call is a single stateless request with no retry
// or timeout policy of its own — pass a context and, if needed, a custom
// http.Client to control both.
//
// Typical flow:
//
//	m := master.New(seaweed.Addr{Host: "localhost", Port: 9333})
//	res, err := m.Assign(ctx, nil)
//	// store bytes against res.Location using package volume, keyed by res.Fid
package master
