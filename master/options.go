package master

import (
	"net/url"
	"strconv"

	"github.com/dreamware/seaweed"
)

// AssignOptions are the optional parameters of an assign request. The zero
// value of each field (or a nil options pointer) leaves the corresponding
// query parameter out entirely, deferring to the server default.
type AssignOptions struct {
	// Count of file ids to allocate in one request.
	Count uint32
	// Collection to place the file id in.
	Collection string
	// DataCenter, Rack and DataNode pin the placement of the new volume.
	DataCenter string
	Rack       string
	DataNode   string
	// Replication is the replica placement to request.
	Replication *seaweed.Replication
	// TTL is the time-to-live to request.
	TTL *seaweed.TTL
	// Preallocate this number of bytes on disk when new volumes are grown.
	Preallocate uint64
	// WritableVolumeCount is the number of new volumes to grow when no
	// matching volume is writable.
	WritableVolumeCount uint64
	// Disk selects a labelled disk type to allocate on.
	Disk string
}

func (o *AssignOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Count > 0 {
		q.Set("count", strconv.FormatUint(uint64(o.Count), 10))
	}
	if o.Collection != "" {
		q.Set("collection", o.Collection)
	}
	if o.DataCenter != "" {
		q.Set("dataCenter", o.DataCenter)
	}
	if o.Rack != "" {
		q.Set("rack", o.Rack)
	}
	if o.DataNode != "" {
		q.Set("dataNode", o.DataNode)
	}
	if o.Replication != nil {
		q.Set("replication", o.Replication.String())
	}
	if o.TTL != nil {
		q.Set("ttl", o.TTL.String())
	}
	if o.Preallocate > 0 {
		q.Set("preallocate", strconv.FormatUint(o.Preallocate, 10))
	}
	if o.WritableVolumeCount > 0 {
		q.Set("writableVolumeCount", strconv.FormatUint(o.WritableVolumeCount, 10))
	}
	if o.Disk != "" {
		q.Set("disk", o.Disk)
	}
	return q
}

// LookupOptions are the optional parameters of a lookup request. Zero-valued
// fields are omitted from the query.
type LookupOptions struct {
	// Collection the volume belongs to.
	Collection string
	// FileID narrows the lookup to one specific file id.
	FileID *seaweed.Fid
	// Read asks the master for locations suitable for reading.
	Read bool
}

func (o *LookupOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Collection != "" {
		q.Set("collection", o.Collection)
	}
	if o.FileID != nil {
		q.Set("fileId", o.FileID.String())
	}
	if o.Read {
		q.Set("read", "true")
	}
	return q
}
