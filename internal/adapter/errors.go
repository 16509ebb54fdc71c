package adapter

import "errors"

// Sentinel transport errors. Every non-2xx response wraps exactly one of the
// first three together with the response body.
var (
	// ErrBadRequest covers requests the server refused: malformed input
	// (400), a name or run id already taken (409) and unprocessable
	// payloads (422).
	ErrBadRequest = errors.New("bad request")
	// ErrNotFound is returned for 404.
	ErrNotFound = errors.New("not found")
	// ErrInternalServerError covers every other status.
	ErrInternalServerError = errors.New("internal server error")

	// ErrEncodeRequest means the request body could not be built locally;
	// nothing was sent.
	ErrEncodeRequest = errors.New("encode request")
)
