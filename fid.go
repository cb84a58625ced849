package seaweed

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedFid is returned when a file id string does not match the
// canonical "<volumeId>,<key>[_<generation>]" form. Match with errors.Is.
var ErrMalformedFid = fmt.Errorf("seaweed: malformed file id")

// Fid is the globally unique handle of a stored object, as assigned by the
// master server. It is never mutated after creation; every volume server
// operation consumes it by value.
type Fid struct {
	VolumeID uint32 // Volume the object lives in
	Key      string // Opaque key token within the volume
	// Generation is the optional version counter suffixed to the handle.
	// Nil means the handle carries no generation segment.
	Generation *uint64
}

// String renders the canonical text form: "<volumeId>,<key>", with
// "_<generation>" appended when a generation is present.
func (f Fid) String() string {
	s := strconv.FormatUint(uint64(f.VolumeID), 10) + "," + f.Key
	if f.Generation != nil {
		s += "_" + strconv.FormatUint(*f.Generation, 10)
	}
	return s
}

// ParseFid parses the canonical text form of a file id.
//
// The volume id must parse as an unsigned 32-bit integer and the key must be
// non-empty. A generation segment, when present, must parse as an unsigned
// 64-bit integer. Any violation returns an error wrapping ErrMalformedFid.
func ParseFid(s string) (Fid, error) {
	volPart, rest, ok := strings.Cut(s, ",")
	if !ok {
		return Fid{}, fmt.Errorf("%w: missing key segment in %q", ErrMalformedFid, s)
	}

	vol, err := strconv.ParseUint(volPart, 10, 32)
	if err != nil {
		return Fid{}, fmt.Errorf("%w: volume id %q is not a 32-bit unsigned integer", ErrMalformedFid, volPart)
	}

	fid := Fid{VolumeID: uint32(vol)}

	key, genPart, hasGen := strings.Cut(rest, "_")
	if key == "" {
		return Fid{}, fmt.Errorf("%w: empty key in %q", ErrMalformedFid, s)
	}
	fid.Key = key

	if hasGen {
		gen, err := strconv.ParseUint(genPart, 10, 64)
		if err != nil {
			return Fid{}, fmt.Errorf("%w: generation %q is not a 64-bit unsigned integer", ErrMalformedFid, genPart)
		}
		fid.Generation = &gen
	}

	return fid, nil
}

// MarshalJSON encodes the file id as its canonical string form, matching the
// "fid" field of master server responses.
func (f Fid) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON decodes a file id from its canonical string form.
func (f *Fid) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseFid(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Location is a volume server's reachable address pair as reported by the
// master: PublicURL for clients outside the cluster network, URL for
// internal traffic. Produced by assign and lookup responses.
type Location struct {
	PublicURL string `json:"publicUrl"`
	URL       string `json:"url"`
}
