package volume

import (
	"net/url"
	"strconv"
)

// Mode selects how the server scales an image when width or height is given.
type Mode string

const (
	// ModeFit scales the image to fit inside the requested box.
	ModeFit Mode = "fit"
	// ModeFill scales the image to fill the requested box.
	ModeFill Mode = "fill"
)

// CropRect is the rectangle of an image crop, emitted as the crop_x1,
// crop_x2, crop_y1, crop_y2 query parameters. All four coordinates are sent
// whenever a rectangle is given, so a zero coordinate stays meaningful.
type CropRect struct {
	X1, X2 uint32
	Y1, Y2 uint32
}

// GetOptions are the optional parameters of a fetch. The zero value of each
// field (or a nil options pointer) leaves the corresponding query parameter
// out entirely.
type GetOptions struct {
	// ReadDeleted asks the server to serve the object even when it has been
	// deleted but not yet vacuumed.
	ReadDeleted bool
	// Width and Height request an image resize.
	Width  uint32
	Height uint32
	// Mode picks the resize strategy.
	Mode Mode
	// Crop requests an image crop.
	Crop *CropRect
}

func (o *GetOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.ReadDeleted {
		q.Set("readDeleted", "true")
	}
	if o.Width > 0 {
		q.Set("width", strconv.FormatUint(uint64(o.Width), 10))
	}
	if o.Height > 0 {
		q.Set("height", strconv.FormatUint(uint64(o.Height), 10))
	}
	if o.Mode != "" {
		q.Set("mode", string(o.Mode))
	}
	if o.Crop != nil {
		q.Set("crop_x1", strconv.FormatUint(uint64(o.Crop.X1), 10))
		q.Set("crop_x2", strconv.FormatUint(uint64(o.Crop.X2), 10))
		q.Set("crop_y1", strconv.FormatUint(uint64(o.Crop.Y1), 10))
		q.Set("crop_y2", strconv.FormatUint(uint64(o.Crop.Y2), 10))
	}
	return q
}

// UploadOptions are the optional parameters of a store. Zero-valued fields
// are omitted from the query.
type UploadOptions struct {
	// Replicated marks the upload as a replication write. True serializes as
	// the literal query value "type=replicate"; false omits the key entirely,
	// which is also how the wire treats an explicit "not replicated". This is
	// deliberately not a generic boolean encoding.
	Replicated bool
	// TS is the modification timestamp in epoch seconds.
	TS uint64
	// CM marks the content as a chunk manifest file.
	CM bool
}

func (o *UploadOptions) values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Replicated {
		q.Set("type", "replicate")
	}
	if o.TS > 0 {
		q.Set("ts", strconv.FormatUint(o.TS, 10))
	}
	if o.CM {
		q.Set("cm", "true")
	}
	return q
}
