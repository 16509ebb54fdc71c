package client

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/mlsolid-go/internal/config"
	"github.com/MKhiriev/mlsolid-go/internal/logger"
	"github.com/MKhiriev/mlsolid-go/mlsolid"
)

var (
	ErrCreateRegistry = errors.New("model registry could not be created")
	ErrAddModel       = errors.New("model could not be added to registry")
)

var _ Client = (*App)(nil)

// App uploads one run as described by a [config.ClientJob].
type App struct {
	sdk    *mlsolid.Client
	job    config.ClientJob
	logger *logger.Logger
}

// NewApp returns an App that runs job against sdk.
func NewApp(sdk *mlsolid.Client, job config.ClientJob, log *logger.Logger) (*App, error) {
	if sdk == nil {
		return nil, errors.New("nil mlsolid client")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{sdk: sdk, job: job, logger: log}, nil
}

// Run creates the registry if one is configured, records a run with the
// configured files and registers the model under the configured tags. The
// uploaded files are then fetched back, the model by its first tag.
func (a *App) Run(ctx context.Context) error {
	publish := a.job.Registry != "" && !a.job.DryRun

	if publish {
		if !a.sdk.CreateModelRegistry(ctx, a.job.Registry) {
			// an existing registry is fine as long as it can be read
			if _, err := a.sdk.ModelRegistry(ctx, a.job.Registry); err != nil {
				return fmt.Errorf("%w: %q: %w", ErrCreateRegistry, a.job.Registry, err)
			}
		}
	}

	var opts []mlsolid.RunOption
	if a.job.DryRun {
		opts = append(opts, mlsolid.DryRun())
	}

	var runID string
	err := a.sdk.StartRun(ctx, a.job.Experiment, func(run *mlsolid.Run) error {
		runID = run.ID()
		if a.job.ArtifactPath != "" {
			if err := run.AddPlaintextArtifact(ctx, a.job.ArtifactPath); err != nil {
				return fmt.Errorf("upload artifact: %w", err)
			}
		}
		if a.job.ModelPath != "" {
			if err := run.AddModel(ctx, a.job.ModelPath); err != nil {
				return fmt.Errorf("upload model: %w", err)
			}
		}
		return nil
	}, opts...)
	if err != nil {
		return err
	}

	log := a.logger.WithRun(runID, a.job.Experiment)
	log.Info().Bool("dry_run", a.job.DryRun).Msg("run recorded")

	if a.job.ArtifactPath != "" && !a.job.DryRun {
		artifact, err := a.sdk.Artifact(ctx, runID, filepath.Base(a.job.ArtifactPath))
		if err != nil {
			return fmt.Errorf("fetch artifact: %w", err)
		}
		log.Info().Str("artifact", artifact.Name).Int("size", artifact.Size()).Msg("artifact stored")
	}

	if !publish {
		return nil
	}

	tags := a.job.Tags
	if len(tags) == 0 {
		tags = []string{config.DefaultTag}
	}

	modelName := filepath.Base(a.job.ModelPath)
	if !a.sdk.AddModel(ctx, a.job.Registry, runID, modelName, tags) {
		return fmt.Errorf("%w: %q", ErrAddModel, a.job.Registry)
	}

	tag := tags[0]
	model, err := a.sdk.TaggedModel(ctx, a.job.Registry, tag)
	if err != nil {
		return fmt.Errorf("fetch model tagged %q: %w", tag, err)
	}

	log.Info().
		Str("registry", a.job.Registry).
		Str("tag", tag).
		Str("model", model.Name).
		Int("size", model.Size()).
		Msg("model published")

	return nil
}
