package seaweed

import (
	"fmt"
	"strconv"
)

// ErrMalformedTTL is returned when a time-to-live string is not a positive
// integer followed by one of the unit letters m h d w M y. Match with
// errors.Is.
var ErrMalformedTTL = fmt.Errorf("seaweed: malformed ttl, expected e.g. 5m or 5M")

// TTLUnit is the unit of a time-to-live specification. The wire letters are
// case-sensitive: minute is "m", month is "M".
type TTLUnit int

const (
	TTLMinute TTLUnit = iota
	TTLHour
	TTLDay
	TTLWeek
	TTLMonth
	TTLYear
)

// String returns the single-letter wire form of the unit.
func (u TTLUnit) String() string {
	switch u {
	case TTLMinute:
		return "m"
	case TTLHour:
		return "h"
	case TTLDay:
		return "d"
	case TTLWeek:
		return "w"
	case TTLMonth:
		return "M"
	case TTLYear:
		return "y"
	}
	return ""
}

// TTL is the time-to-live requested for a file id at assign time.
// It serializes as "<value><unit-letter>", e.g. {5, TTLMonth} -> "5M".
type TTL struct {
	Value uint32
	Unit  TTLUnit
}

// String returns the wire form of the specification.
func (t TTL) String() string {
	return strconv.FormatUint(uint64(t.Value), 10) + t.Unit.String()
}

// ParseTTL parses the "<value><unit-letter>" wire form, e.g. "5M".
func ParseTTL(s string) (TTL, error) {
	if len(s) < 2 {
		return TTL{}, fmt.Errorf("%w: got %q", ErrMalformedTTL, s)
	}

	var unit TTLUnit
	switch s[len(s)-1] {
	case 'm':
		unit = TTLMinute
	case 'h':
		unit = TTLHour
	case 'd':
		unit = TTLDay
	case 'w':
		unit = TTLWeek
	case 'M':
		unit = TTLMonth
	case 'y':
		unit = TTLYear
	default:
		return TTL{}, fmt.Errorf("%w: unknown unit in %q", ErrMalformedTTL, s)
	}

	value, err := strconv.ParseUint(s[:len(s)-1], 10, 32)
	if err != nil {
		return TTL{}, fmt.Errorf("%w: bad value in %q", ErrMalformedTTL, s)
	}
	return TTL{Value: uint32(value), Unit: unit}, nil
}
