package seaweed

import "fmt"

// ErrMalformedReplication is returned when a replication string is not
// exactly three digits in the 0..2 range. Match with errors.Is.
var ErrMalformedReplication = fmt.Errorf("seaweed: malformed replication, expected three digits 0-2")

// ReplicaCount is the number of extra replicas requested for one placement
// scope. SeaweedFS-style masters allow at most two extra replicas per scope.
type ReplicaCount uint8

const (
	// ReplicaNone requests no extra replica for the scope.
	ReplicaNone ReplicaCount = 0
	// ReplicaOne requests one extra replica for the scope.
	ReplicaOne ReplicaCount = 1
	// ReplicaTwo requests two extra replicas for the scope.
	ReplicaTwo ReplicaCount = 2
)

// Replication is the replica placement requested at assign time: one slot
// per scope, serialized as a fixed three-digit string in the order
// data center, other rack, same rack. "000" requests no replication,
// "002" requests two extra replicas on the same rack.
type Replication struct {
	DataCenter ReplicaCount // Replicas in another data center
	OtherRack  ReplicaCount // Replicas on another rack, same data center
	SameRack   ReplicaCount // Replicas on the same rack
}

// String serializes the placement to its wire form. The result is always
// exactly three characters; counts outside 0..2 render as '0'.
func (r Replication) String() string {
	return string([]byte{r.DataCenter.digit(), r.OtherRack.digit(), r.SameRack.digit()})
}

// ParseReplication parses the three-digit wire form, e.g. "002".
func ParseReplication(s string) (Replication, error) {
	if len(s) != 3 {
		return Replication{}, fmt.Errorf("%w: got %q", ErrMalformedReplication, s)
	}
	var counts [3]ReplicaCount
	for i := 0; i < 3; i++ {
		d := s[i]
		if d < '0' || d > '2' {
			return Replication{}, fmt.Errorf("%w: got %q", ErrMalformedReplication, s)
		}
		counts[i] = ReplicaCount(d - '0')
	}
	return Replication{DataCenter: counts[0], OtherRack: counts[1], SameRack: counts[2]}, nil
}

func (c ReplicaCount) digit() byte {
	switch c {
	case ReplicaOne:
		return '1'
	case ReplicaTwo:
		return '2'
	default:
		return '0'
	}
}
