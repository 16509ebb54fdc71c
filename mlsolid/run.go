package mlsolid

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/mlsolid-go/internal/adapter"
	"github.com/MKhiriev/mlsolid-go/internal/logger"
	"github.com/MKhiriev/mlsolid-go/models"
)

// Run is an open run handed to the callback of [Client.StartRun]. Every
// method issues its own request; nothing is buffered. A Run is not safe for
// concurrent use and must not be used after the callback returns.
type Run struct {
	id           string
	experimentID string
	dry          bool
	closed       bool

	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func newRun(id, experimentID string, dry bool, a adapter.ServerAdapter, log *logger.Logger) *Run {
	return &Run{
		id:           id,
		experimentID: experimentID,
		dry:          dry,
		adapter:      a,
		logger:       log.WithRun(id, experimentID),
	}
}

// ID returns the server-issued run id, usable with [Client.AddModel] after
// the run ended.
func (r *Run) ID() string {
	return r.id
}

// ExperimentID returns the experiment the run belongs to.
func (r *Run) ExperimentID() string {
	return r.experimentID
}

// Log records every entry of data against the run in a single request.
// Values may be numbers, strings or slices of them; see [ParseMetric] for
// how they are typed. An empty map sends nothing.
func (r *Run) Log(ctx context.Context, data map[string]any) error {
	if r.closed {
		return ErrRunClosed
	}
	if len(data) == 0 {
		return nil
	}

	metrics, err := ParseMetrics(data)
	if err != nil {
		return err
	}

	if r.dry {
		r.logger.Info().Interface("metrics", data).Msg("dry run: metrics not uploaded")
		return nil
	}

	err = r.adapter.AddMetrics(ctx, models.AddMetricsRequest{RunID: r.id, Metrics: metrics})
	if err != nil {
		return mapAdapterError(err)
	}

	r.logger.Debug().Int("count", len(metrics)).Msg("metrics uploaded")
	return nil
}

// AddPlaintextArtifact uploads the file at path as a text artifact named by
// its base name.
func (r *Run) AddPlaintextArtifact(ctx context.Context, path string) error {
	return r.upload(ctx, path, models.PlainTextArtifact)
}

// AddModel uploads the file at path as a model artifact named by its base
// name.
func (r *Run) AddModel(ctx context.Context, path string) error {
	return r.upload(ctx, path, models.ModelArtifact)
}

func (r *Run) upload(ctx context.Context, path string, artifactType models.ArtifactType) error {
	if r.closed {
		return ErrRunClosed
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read artifact: %w", err)
	}

	artifact := models.Artifact{
		Name:    filepath.Base(path),
		Type:    artifactType,
		RunID:   r.id,
		Content: content,
	}

	log := r.logger.With().
		Str("artifact", artifact.Name).
		Str("type", string(artifactType)).
		Int("size", artifact.Size()).
		Logger()

	if r.dry {
		log.Info().Msg("dry run: artifact not uploaded")
		return nil
	}

	if err = r.adapter.UploadArtifact(ctx, artifact); err != nil {
		return mapAdapterError(err)
	}

	log.Info().Msg("artifact uploaded")
	return nil
}

// end finalizes the run. Only the first call contacts the server.
func (r *Run) end(ctx context.Context) error {
	if r.closed {
		return ErrRunClosed
	}
	r.closed = true

	if r.dry {
		r.logger.Info().Msg("dry run ended")
		return nil
	}

	if err := r.adapter.EndRun(ctx, r.id); err != nil {
		return fmt.Errorf("end run %q: %w", r.id, mapAdapterError(err))
	}

	r.logger.Info().Msg("ended run")
	return nil
}
