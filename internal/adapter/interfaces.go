// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to the mlsolid
// server.
//
// The primary abstraction is [ServerAdapter], which decouples the SDK from
// the underlying protocol. The package ships a JSON-over-HTTP implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400 and 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/mlsolid-go/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the mlsolid
// server. Every method issues exactly one request.
type ServerAdapter interface {
	// Experiments returns the ids of every experiment known to the server.
	Experiments(ctx context.Context) ([]string, error)

	// Experiment returns the ids of the runs recorded in expID.
	Experiment(ctx context.Context, expID string) ([]string, error)

	// Run fetches a run with its metrics. Returns [ErrNotFound] (wrapped) if
	// the server does not know runID.
	Run(ctx context.Context, runID string) (models.Run, error)

	// CreateRun creates a run with the id proposed in req and returns the id
	// the server stored it under. Returns [ErrBadRequest] (wrapped) if the
	// id is already taken.
	CreateRun(ctx context.Context, req models.CreateRunRequest) (models.CreateRunResponse, error)

	// AddMetrics appends the metric values in req to the run.
	AddMetrics(ctx context.Context, req models.AddMetricsRequest) error

	// EndRun finalizes the run on the server.
	EndRun(ctx context.Context, runID string) error

	// UploadArtifact uploads artifact.Content as a multipart file attached
	// to artifact.RunID under artifact.Name.
	UploadArtifact(ctx context.Context, artifact models.Artifact) error

	// Artifact downloads the content of an artifact attached to a run.
	Artifact(ctx context.Context, runID, name string) (models.Artifact, error)

	// CreateModelRegistry creates an empty registry called name.
	CreateModelRegistry(ctx context.Context, name string) error

	// ModelRegistry fetches the entries and tags of a registry.
	ModelRegistry(ctx context.Context, name string) (models.ModelRegistry, error)

	// AddModel registers a model artifact of a run in req.Registry under
	// req.Tags.
	AddModel(ctx context.Context, req models.AddModelRequest) error

	// TaggedModel downloads the model artifact currently pointed to by tag.
	// Returns [ErrNotFound] (wrapped) for an unknown registry or tag.
	TaggedModel(ctx context.Context, registry, tag string) (models.Artifact, error)
}
