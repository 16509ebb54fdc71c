package mlsolid

import (
	"time"

	"github.com/MKhiriev/mlsolid-go/internal/adapter"
	"github.com/MKhiriev/mlsolid-go/internal/logger"
	"github.com/rs/zerolog"
)

type options struct {
	logger  *logger.Logger
	timeout time.Duration
	hashKey string

	adapter adapter.ServerAdapter
	ids     idGenerator
}

// Option configures a [Client].
type Option func(*options)

// WithLogger replaces the default console logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger.FromZerolog(l)
	}
}

// WithTimeout bounds every request. Without it only the context passed to
// each call limits a request.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithHashKey signs every request body with HMAC-SHA256 using key.
func WithHashKey(key string) Option {
	return func(o *options) {
		o.hashKey = key
	}
}

func withAdapter(a adapter.ServerAdapter) Option {
	return func(o *options) {
		o.adapter = a
	}
}

func withIDGenerator(g idGenerator) Option {
	return func(o *options) {
		o.ids = g
	}
}

type runOptions struct {
	dry bool
}

// RunOption configures a single [Client.StartRun] call.
type RunOption func(*runOptions)

// DryRun makes the run local only: nothing is sent to the server and the run
// id is generated by the client.
func DryRun() RunOption {
	return func(o *runOptions) {
		o.dry = true
	}
}
