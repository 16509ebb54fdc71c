package mlsolid

import "errors"

var (
	// ErrBadRequest is returned when the server rejects the request, e.g. a
	// run id that is already taken.
	ErrBadRequest = errors.New("mlsolid: bad request")
	// ErrNotFound is returned when the requested experiment, run, artifact,
	// registry or tag does not exist.
	ErrNotFound = errors.New("mlsolid: not found")
	// ErrInternal covers server failures and unreachable servers.
	ErrInternal = errors.New("mlsolid: internal error")

	// ErrRunClosed is returned by [Run] methods called after the run ended.
	ErrRunClosed = errors.New("mlsolid: run is closed")
	// ErrInvalidMetric is returned by [Run.Log] for an empty key or a nil
	// value.
	ErrInvalidMetric = errors.New("mlsolid: invalid metric")
)
