package seaweed

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPort is the port assumed when an endpoint address carries none.
const DefaultPort uint16 = 9333

// ErrMalformedAddr is returned when an endpoint string does not match the
// "host:port" form. Match with errors.Is.
var ErrMalformedAddr = fmt.Errorf("seaweed: malformed address, expected host:port")

// Addr is the endpoint address of a master or volume server. Port 0 means
// unspecified; BaseURL substitutes DefaultPort in that case.
type Addr struct {
	Host string
	Port uint16
}

// ParseAddr parses a "host:port" token. The port may be omitted entirely
// ("host" alone), in which case it is left unspecified; an empty host, an
// empty port after the colon, or a port outside 16 bits returns an error
// wrapping ErrMalformedAddr.
func ParseAddr(s string) (Addr, error) {
	host, portPart, hasPort := strings.Cut(s, ":")
	if host == "" {
		return Addr{}, fmt.Errorf("%w: empty host in %q", ErrMalformedAddr, s)
	}
	if !hasPort {
		return Addr{Host: host}, nil
	}

	port, err := strconv.ParseUint(portPart, 10, 16)
	if err != nil {
		return Addr{}, fmt.Errorf("%w: bad port %q", ErrMalformedAddr, portPart)
	}
	return Addr{Host: host, Port: uint16(port)}, nil
}

// BaseURL formats the address as the base URL all server requests are built
// on: "http://<host>:<port>", defaulting the port to DefaultPort.
func (a Addr) BaseURL() string {
	port := a.Port
	if port == 0 {
		port = DefaultPort
	}
	return "http://" + a.Host + ":" + strconv.FormatUint(uint64(port), 10)
}

// String returns the "host:port" form, defaulting the port like BaseURL.
func (a Addr) String() string {
	port := a.Port
	if port == 0 {
		port = DefaultPort
	}
	return a.Host + ":" + strconv.FormatUint(uint64(port), 10)
}
