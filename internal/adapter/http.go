package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/mlsolid-go/internal/config"
	"github.com/MKhiriev/mlsolid-go/internal/logger"
	"github.com/MKhiriev/mlsolid-go/internal/utils"
	"github.com/MKhiriev/mlsolid-go/models"
	"github.com/go-resty/resty/v2"
)

const (
	// HashHeader carries the hex HMAC-SHA256 of the request body when a hash
	// key is configured.
	HashHeader = "HashSHA256"
	// ArtifactTypeHeader carries the [models.ArtifactType] of downloaded
	// artifacts.
	ArtifactTypeHeader = "X-Artifact-Type"
	// ArtifactNameHeader and RunIDHeader identify the artifact returned by a
	// tag lookup.
	ArtifactNameHeader = "X-Artifact-Name"
	RunIDHeader        = "X-Run-Id"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. When appCfg.HashKey is set every request body is signed.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("took", resp.Time()).
			Msg("mlsolid response")
		return nil
	})

	a := &httpServerAdapter{client: client, logger: log}
	if appCfg.HashKey != "" {
		a.hasher = utils.NewHasher(appCfg.HashKey)
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Experiments implements [ServerAdapter]. GET /api/experiments.
func (h *httpServerAdapter) Experiments(ctx context.Context) ([]string, error) {
	resp, err := h.request(ctx).Get("/api/experiments")
	if err != nil {
		return nil, fmt.Errorf("experiments request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var er models.ExperimentsResponse
	if err = json.Unmarshal(resp.Body(), &er); err != nil {
		return nil, fmt.Errorf("decode experiments response: %w", err)
	}
	if er.ExpIDs == nil {
		return []string{}, nil
	}

	return er.ExpIDs, nil
}

// Experiment implements [ServerAdapter]. GET /api/experiments/{exp_id}.
func (h *httpServerAdapter) Experiment(ctx context.Context, expID string) ([]string, error) {
	resp, err := h.request(ctx).
		SetPathParam("exp_id", expID).
		Get("/api/experiments/{exp_id}")
	if err != nil {
		return nil, fmt.Errorf("experiment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var er models.ExperimentResponse
	if err = json.Unmarshal(resp.Body(), &er); err != nil {
		return nil, fmt.Errorf("decode experiment response: %w", err)
	}
	if er.RunIDs == nil {
		return []string{}, nil
	}

	return er.RunIDs, nil
}

// Run implements [ServerAdapter]. GET /api/runs/{run_id}.
func (h *httpServerAdapter) Run(ctx context.Context, runID string) (models.Run, error) {
	resp, err := h.request(ctx).
		SetPathParam("run_id", runID).
		Get("/api/runs/{run_id}")
	if err != nil {
		return models.Run{}, fmt.Errorf("run request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Run{}, err
	}

	var rr models.RunResponse
	if err = json.Unmarshal(resp.Body(), &rr); err != nil {
		return models.Run{}, fmt.Errorf("decode run response: %w", err)
	}

	return rr.ToRun(), nil
}

// CreateRun implements [ServerAdapter]. POST /api/runs. A response without
// run_id means the proposed id was accepted as is.
func (h *httpServerAdapter) CreateRun(ctx context.Context, req models.CreateRunRequest) (models.CreateRunResponse, error) {
	r, err := h.jsonRequest(ctx, req)
	if err != nil {
		return models.CreateRunResponse{}, err
	}

	resp, err := r.Post("/api/runs")
	if err != nil {
		return models.CreateRunResponse{}, fmt.Errorf("create run request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreateRunResponse{}, err
	}

	created := models.CreateRunResponse{RunID: req.RunID}
	if len(bytes.TrimSpace(resp.Body())) > 0 {
		var cr models.CreateRunResponse
		if err = json.Unmarshal(resp.Body(), &cr); err != nil {
			return models.CreateRunResponse{}, fmt.Errorf("decode create run response: %w", err)
		}
		if cr.RunID != "" {
			created.RunID = cr.RunID
		}
	}

	return created, nil
}

// AddMetrics implements [ServerAdapter]. POST /api/runs/{run_id}/metrics.
func (h *httpServerAdapter) AddMetrics(ctx context.Context, req models.AddMetricsRequest) error {
	r, err := h.jsonRequest(ctx, req)
	if err != nil {
		return err
	}

	resp, err := r.
		SetPathParam("run_id", req.RunID).
		Post("/api/runs/{run_id}/metrics")
	if err != nil {
		return fmt.Errorf("add metrics request: %w", err)
	}

	return mapHTTPError(resp)
}

// EndRun implements [ServerAdapter]. POST /api/runs/{run_id}/end.
func (h *httpServerAdapter) EndRun(ctx context.Context, runID string) error {
	resp, err := h.request(ctx).
		SetPathParam("run_id", runID).
		Post("/api/runs/{run_id}/end")
	if err != nil {
		return fmt.Errorf("end run request: %w", err)
	}

	return mapHTTPError(resp)
}

// UploadArtifact implements [ServerAdapter]. POST /api/runs/{run_id}/artifacts
// as multipart/form-data with a "file" part and "name"/"type" fields. The
// signature, if any, covers the file content.
func (h *httpServerAdapter) UploadArtifact(ctx context.Context, artifact models.Artifact) error {
	r := h.request(ctx).
		SetPathParam("run_id", artifact.RunID).
		SetMultipartFormData(map[string]string{
			"name": artifact.Name,
			"type": string(artifact.Type),
		}).
		SetMultipartField("file", artifact.Name, "application/octet-stream", bytes.NewReader(artifact.Content))
	h.sign(r, artifact.Content)

	resp, err := r.Post("/api/runs/{run_id}/artifacts")
	if err != nil {
		return fmt.Errorf("upload artifact request: %w", err)
	}

	return mapHTTPError(resp)
}

// Artifact implements [ServerAdapter]. GET /api/runs/{run_id}/artifacts/{name}.
func (h *httpServerAdapter) Artifact(ctx context.Context, runID, name string) (models.Artifact, error) {
	resp, err := h.request(ctx).
		SetPathParams(map[string]string{"run_id": runID, "name": name}).
		Get("/api/runs/{run_id}/artifacts/{name}")
	if err != nil {
		return models.Artifact{}, fmt.Errorf("artifact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Artifact{}, err
	}

	return models.Artifact{
		Name:    name,
		Type:    models.ArtifactType(resp.Header().Get(ArtifactTypeHeader)),
		RunID:   runID,
		Content: resp.Body(),
	}, nil
}

// CreateModelRegistry implements [ServerAdapter]. POST /api/registries.
func (h *httpServerAdapter) CreateModelRegistry(ctx context.Context, name string) error {
	r, err := h.jsonRequest(ctx, models.CreateRegistryRequest{Name: name})
	if err != nil {
		return err
	}

	resp, err := r.Post("/api/registries")
	if err != nil {
		return fmt.Errorf("create model registry request: %w", err)
	}

	return mapHTTPError(resp)
}

// ModelRegistry implements [ServerAdapter]. GET /api/registries/{name}.
func (h *httpServerAdapter) ModelRegistry(ctx context.Context, name string) (models.ModelRegistry, error) {
	resp, err := h.request(ctx).
		SetPathParam("name", name).
		Get("/api/registries/{name}")
	if err != nil {
		return models.ModelRegistry{}, fmt.Errorf("model registry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ModelRegistry{}, err
	}

	var reg models.ModelRegistry
	if err = json.Unmarshal(resp.Body(), &reg); err != nil {
		return models.ModelRegistry{}, fmt.Errorf("decode model registry response: %w", err)
	}
	if reg.Name == "" {
		reg.Name = name
	}

	return reg, nil
}

// AddModel implements [ServerAdapter]. POST /api/registries/{name}/models.
func (h *httpServerAdapter) AddModel(ctx context.Context, req models.AddModelRequest) error {
	r, err := h.jsonRequest(ctx, req)
	if err != nil {
		return err
	}

	resp, err := r.
		SetPathParam("name", req.Registry).
		Post("/api/registries/{name}/models")
	if err != nil {
		return fmt.Errorf("add model request: %w", err)
	}

	return mapHTTPError(resp)
}

// TaggedModel implements [ServerAdapter]. GET /api/registries/{name}/tags/{tag}.
// The artifact name and run id are taken from the response headers.
func (h *httpServerAdapter) TaggedModel(ctx context.Context, registry, tag string) (models.Artifact, error) {
	resp, err := h.request(ctx).
		SetPathParams(map[string]string{"name": registry, "tag": tag}).
		Get("/api/registries/{name}/tags/{tag}")
	if err != nil {
		return models.Artifact{}, fmt.Errorf("tagged model request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Artifact{}, err
	}

	artifactType := models.ArtifactType(resp.Header().Get(ArtifactTypeHeader))
	if artifactType == "" {
		artifactType = models.ModelArtifact
	}

	return models.Artifact{
		Name:    resp.Header().Get(ArtifactNameHeader),
		Type:    artifactType,
		RunID:   resp.Header().Get(RunIDHeader),
		Content: resp.Body(),
	}, nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

// jsonRequest marshals body up front so the signature covers the exact bytes
// that are sent.
func (h *httpServerAdapter) jsonRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeRequest, err)
	}

	r := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	h.sign(r, payload)

	return r, nil
}

func (h *httpServerAdapter) sign(r *resty.Request, payload []byte) {
	if h.hasher == nil {
		return
	}
	r.SetHeader(HashHeader, h.hasher.HashHex(payload))
}
