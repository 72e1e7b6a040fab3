package gateway

import "errors"

// ErrNotFound is returned when the upstream has no data for the request.
var ErrNotFound = errors.New("not found")
