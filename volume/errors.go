package volume

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the volume server answered 404 for a fetch:
// the object does not exist (any more). Match with errors.Is.
var ErrNotFound = errors.New("volume: file not found on volume server")

// RequestError reports a fetch response with an unexpected, non-404 status.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("volume: response status was %d, not OK, see body for error: %s", e.StatusCode, e.Body)
}

// UploadError reports a store response whose status was not 201 Created.
type UploadError struct {
	StatusCode int
	Body       string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("volume: response status was %d, not CREATED, see body for error: %s", e.StatusCode, e.Body)
}

// DeleteError reports a delete response whose status was not 202 Accepted.
type DeleteError struct {
	StatusCode int
	Body       string
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("volume: response status was %d, not ACCEPTED, see body for error: %s", e.StatusCode, e.Body)
}
