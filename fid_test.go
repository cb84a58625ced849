package seaweed

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFidRoundTrip verifies that parsing and formatting a file id is
// lossless, including the presence or absence of the generation segment.
func TestParseFidRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Fid
	}{
		{
			name:  "without generation",
			input: "3,01637037d6",
			want:  Fid{VolumeID: 3, Key: "01637037d6"},
		},
		{
			name:  "with generation",
			input: "3,5442434343_2",
			want:  Fid{VolumeID: 3, Key: "5442434343", Generation: uint64p(2)},
		},
		{
			name:  "generation zero is preserved",
			input: "7,abc_0",
			want:  Fid{VolumeID: 7, Key: "abc", Generation: uint64p(0)},
		},
		{
			name:  "max volume id",
			input: "4294967295,ff",
			want:  Fid{VolumeID: 4294967295, Key: "ff"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFid(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Formatting must reproduce the identical string
			assert.Equal(t, tt.input, got.String())
		})
	}
}

// TestParseFidMalformed verifies that invalid file id strings are rejected
// with ErrMalformedFid.
func TestParseFidMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "non-numeric volume id", input: "abc,x"},
		{name: "missing key segment", input: "3"},
		{name: "empty key", input: "3,"},
		{name: "empty key with generation", input: "3,_2"},
		{name: "non-numeric generation", input: "3,abc_x"},
		{name: "volume id overflows 32 bits", input: "4294967296,x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFid(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedFid)
		})
	}
}

// TestFidJSON verifies that a file id crosses JSON as its canonical string,
// the way master responses carry it.
func TestFidJSON(t *testing.T) {
	fid := Fid{VolumeID: 3, Key: "01637037d6"}

	data, err := json.Marshal(fid)
	require.NoError(t, err)
	assert.Equal(t, `"3,01637037d6"`, string(data))

	var decoded Fid
	require.NoError(t, json.Unmarshal([]byte(`"3,5442434343_2"`), &decoded))
	assert.Equal(t, Fid{VolumeID: 3, Key: "5442434343", Generation: uint64p(2)}, decoded)

	// A malformed fid string must fail to decode
	err = json.Unmarshal([]byte(`"nonsense"`), &decoded)
	require.Error(t, err)
}

// TestLocationJSON verifies the wire shape of a volume server location.
func TestLocationJSON(t *testing.T) {
	var loc Location
	payload := `{"publicUrl":"1.1.1.1:9333","url":"1.2.2.2:3233"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &loc))

	assert.Equal(t, "1.1.1.1:9333", loc.PublicURL)
	assert.Equal(t, "1.2.2.2:3233", loc.URL)
}

func uint64p(v uint64) *uint64 { return &v }
