// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mlsolid

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/mlsolid-go/internal/adapter"
	"github.com/MKhiriev/mlsolid-go/internal/config"
	"github.com/MKhiriev/mlsolid-go/internal/logger"
	"github.com/MKhiriev/mlsolid-go/internal/utils"
	"github.com/MKhiriev/mlsolid-go/models"
)

type idGenerator interface {
	Generate() string
}

// Client talks to one mlsolid server. It holds no state besides the
// connection settings, so a single Client may be shared.
type Client struct {
	adapter adapter.ServerAdapter
	ids     idGenerator
	logger  *logger.Logger
}

// New returns a client for the server at address, given as host:port or as
// a full URL.
func New(address string, opts ...Option) (*Client, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = logger.NewConsoleLogger("mlsolid")
	}
	if o.ids == nil {
		o.ids = utils.NewRunIDGenerator()
	}

	if o.adapter == nil {
		a, err := adapter.NewHTTPServerAdapter(
			config.ClientAdapter{HTTPAddress: address, RequestTimeout: o.timeout},
			config.ClientApp{HashKey: o.hashKey},
			o.logger,
		)
		if err != nil {
			return nil, fmt.Errorf("create server adapter: %w", err)
		}
		o.adapter = a
	}

	return &Client{adapter: o.adapter, ids: o.ids, logger: o.logger}, nil
}

// Experiments returns the names of every experiment on the server.
func (c *Client) Experiments(ctx context.Context) ([]string, error) {
	ids, err := c.adapter.Experiments(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return ids, nil
}

// Experiment returns the ids of the runs recorded in expID.
func (c *Client) Experiment(ctx context.Context, expID string) ([]string, error) {
	ids, err := c.adapter.Experiment(ctx, expID)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return ids, nil
}

// Run fetches a run with its metrics. It returns nil and no error when the
// server does not know runID.
func (c *Client) Run(ctx context.Context, runID string) (*models.Run, error) {
	run, err := c.adapter.Run(ctx, runID)
	if errors.Is(err, adapter.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return &run, nil
}

// CreateRun creates a run with a fixed id. An id that is already taken
// yields [ErrBadRequest].
func (c *Client) CreateRun(ctx context.Context, runID, expID string) error {
	_, err := c.adapter.CreateRun(ctx, models.CreateRunRequest{RunID: runID, ExperimentID: expID})
	return mapAdapterError(err)
}

// NewRun creates a run with a generated id and returns the id the server
// stored it under.
func (c *Client) NewRun(ctx context.Context, expID string) (string, error) {
	resp, err := c.adapter.CreateRun(ctx, models.CreateRunRequest{
		RunID:        c.ids.Generate(),
		ExperimentID: expID,
	})
	if err != nil {
		return "", mapAdapterError(err)
	}
	return resp.RunID, nil
}

// StartRun creates a run in expID and passes it to fn. The run is ended on
// the server exactly once after fn finishes, whether it returns nil, returns
// an error or panics; a panic is re-raised after the run is ended. The
// returned error joins fn's error with the error of ending the run.
//
// The end request is sent even if ctx was cancelled inside fn. A zerolog
// logger attached to ctx replaces the client's logger for this run.
func (c *Client) StartRun(ctx context.Context, expID string, fn func(run *Run) error, opts ...RunOption) (err error) {
	ro := runOptions{}
	for _, opt := range opts {
		opt(&ro)
	}

	run, err := c.openRun(ctx, expID, ro, logger.FromContext(ctx, c.logger))
	if err != nil {
		return err
	}

	endCtx := context.WithoutCancel(ctx)
	defer func() {
		if p := recover(); p != nil {
			if endErr := run.end(endCtx); endErr != nil {
				run.logger.Error().Err(endErr).Msg("end run after panic")
			}
			panic(p)
		}
		err = errors.Join(err, run.end(endCtx))
	}()

	return fn(run)
}

func (c *Client) openRun(ctx context.Context, expID string, ro runOptions, log *logger.Logger) (*Run, error) {
	var runID string
	if ro.dry {
		runID = c.ids.Generate()
	} else {
		id, err := c.NewRun(ctx, expID)
		if err != nil {
			return nil, fmt.Errorf("start run in %q: %w", expID, err)
		}
		runID = id
	}

	run := newRun(runID, expID, ro.dry, c.adapter, log)
	run.logger.Info().Bool("dry", ro.dry).Msg("started run")

	return run, nil
}

// CreateModelRegistry creates an empty registry and reports whether it
// succeeded. The cause of a failure is logged.
func (c *Client) CreateModelRegistry(ctx context.Context, name string) bool {
	if err := c.adapter.CreateModelRegistry(ctx, name); err != nil {
		c.logger.Warn().Err(err).Str("registry", name).Msg("could not create model registry")
		return false
	}
	return true
}

// AddModel registers the model artifact filename of run runID in registry
// under tags, and reports whether it succeeded. The cause of a failure is
// logged.
func (c *Client) AddModel(ctx context.Context, registry, runID, filename string, tags []string) bool {
	err := c.adapter.AddModel(ctx, models.AddModelRequest{
		Registry:     registry,
		RunID:        runID,
		ArtifactName: filename,
		Tags:         tags,
	})
	if err != nil {
		c.logger.Warn().Err(err).
			Str("registry", registry).
			Str("run_id", runID).
			Str("artifact", filename).
			Strs("tags", tags).
			Msg("could not add model to registry")
		return false
	}
	return true
}

// ModelRegistry returns the entries and tags of a registry.
func (c *Client) ModelRegistry(ctx context.Context, name string) (models.ModelRegistry, error) {
	reg, err := c.adapter.ModelRegistry(ctx, name)
	if err != nil {
		return models.ModelRegistry{}, mapAdapterError(err)
	}
	return reg, nil
}

// Artifact downloads an artifact attached to a run.
func (c *Client) Artifact(ctx context.Context, runID, filename string) (models.Artifact, error) {
	a, err := c.adapter.Artifact(ctx, runID, filename)
	if err != nil {
		return models.Artifact{}, mapAdapterError(err)
	}
	return a, nil
}

// TaggedModel downloads the model tag points to in registry. An unknown
// registry or tag yields [ErrNotFound].
func (c *Client) TaggedModel(ctx context.Context, registry, tag string) (models.Artifact, error) {
	a, err := c.adapter.TaggedModel(ctx, registry, tag)
	if err != nil {
		return models.Artifact{}, mapAdapterError(err)
	}
	return a, nil
}
