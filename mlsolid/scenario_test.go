package mlsolid

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MKhiriev/mlsolid-go/internal/adapter"
	"github.com/MKhiriev/mlsolid-go/internal/utils"
	"github.com/MKhiriev/mlsolid-go/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storedArtifact struct {
	kind    string
	content []byte
}

// fakeServer is an in-memory mlsolid server covering the endpoints the
// client uses.
type fakeServer struct {
	mu sync.Mutex

	hashKey string

	experiments map[string][]string
	runs        map[string]*models.RunResponse
	ended       map[string]int
	artifacts   map[string]map[string]storedArtifact
	registries  map[string]map[string][2]string // tag -> {run id, artifact}
}

func newFakeServer(t *testing.T, hashKey string) (*httptest.Server, *fakeServer) {
	t.Helper()
	f := &fakeServer{
		hashKey:     hashKey,
		experiments: map[string][]string{},
		runs:        map[string]*models.RunResponse{},
		ended:       map[string]int{},
		artifacts:   map[string]map[string]storedArtifact{},
		registries:  map[string]map[string][2]string{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/experiments", f.listExperiments)
	mux.HandleFunc("GET /api/experiments/{exp}", f.getExperiment)
	mux.HandleFunc("POST /api/runs", f.createRun)
	mux.HandleFunc("GET /api/runs/{run}", f.getRun)
	mux.HandleFunc("POST /api/runs/{run}/metrics", f.addMetrics)
	mux.HandleFunc("POST /api/runs/{run}/end", f.endRun)
	mux.HandleFunc("POST /api/runs/{run}/artifacts", f.uploadArtifact)
	mux.HandleFunc("GET /api/runs/{run}/artifacts/{name}", f.getArtifact)
	mux.HandleFunc("POST /api/registries", f.createRegistry)
	mux.HandleFunc("POST /api/registries/{name}/models", f.addModel)
	mux.HandleFunc("GET /api/registries/{name}/tags/{tag}", f.taggedModel)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	t.Cleanup(func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		for id, n := range f.ended {
			assert.Equal(t, 1, n, "run %s ended %d times", id, n)
		}
	})
	return srv, f
}

func (f *fakeServer) endCounts() map[string]int {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]int, len(f.ended))
	for id, n := range f.ended {
		out[id] = n
	}
	return out
}

func (f *fakeServer) checkSignature(w http.ResponseWriter, r *http.Request, payload []byte) bool {
	if f.hashKey == "" {
		return true
	}
	if r.Header.Get(adapter.HashHeader) != utils.NewHasher(f.hashKey).HashHex(payload) {
		http.Error(w, "bad signature", http.StatusBadRequest)
		return false
	}
	return true
}

func (f *fakeServer) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil || !f.checkSignature(w, r, body) {
		return false
	}
	if err = json.Unmarshal(body, v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeServer) listExperiments(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0, len(f.experiments))
	for id := range f.experiments {
		ids = append(ids, id)
	}
	writeJSON(w, models.ExperimentsResponse{ExpIDs: ids})
}

func (f *fakeServer) getExperiment(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	runs, ok := f.experiments[r.PathValue("exp")]
	if !ok {
		http.Error(w, "experiment not found", http.StatusNotFound)
		return
	}
	writeJSON(w, models.ExperimentResponse{ExpID: r.PathValue("exp"), RunIDs: runs})
}

func (f *fakeServer) createRun(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRunRequest
	if !f.decode(w, r, &req) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.runs[req.RunID]; ok {
		http.Error(w, "run exists", http.StatusConflict)
		return
	}
	f.runs[req.RunID] = &models.RunResponse{
		RunID:        req.RunID,
		ExperimentID: req.ExperimentID,
		Metrics:      map[string]models.Metric{},
	}
	f.experiments[req.ExperimentID] = append(f.experiments[req.ExperimentID], req.RunID)
	writeJSON(w, models.CreateRunResponse{RunID: req.RunID})
}

func (f *fakeServer) getRun(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	run, ok := f.runs[r.PathValue("run")]
	if !ok {
		http.Error(w, "run not found", http.StatusNotFound)
		return
	}
	writeJSON(w, run)
}

func (f *fakeServer) addMetrics(w http.ResponseWriter, r *http.Request) {
	var req models.AddMetricsRequest
	if !f.decode(w, r, &req) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	run, ok := f.runs[r.PathValue("run")]
	if !ok {
		http.Error(w, "run not found", http.StatusNotFound)
		return
	}
	for _, m := range req.Metrics {
		prev := run.Metrics[m.Name]
		prev.Name = m.Name
		prev.Vals = append(prev.Vals, m.Vals...)
		run.Metrics[m.Name] = prev
	}
}

func (f *fakeServer) endRun(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.runs[r.PathValue("run")]; !ok {
		http.Error(w, "run not found", http.StatusNotFound)
		return
	}
	f.ended[r.PathValue("run")]++
}

func (f *fakeServer) uploadArtifact(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil || !f.checkSignature(w, r, content) {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	runID := r.PathValue("run")
	if f.artifacts[runID] == nil {
		f.artifacts[runID] = map[string]storedArtifact{}
	}
	f.artifacts[runID][r.FormValue("name")] = storedArtifact{kind: r.FormValue("type"), content: content}
}

func (f *fakeServer) getArtifact(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.artifacts[r.PathValue("run")][r.PathValue("name")]
	if !ok {
		http.Error(w, "artifact not found", http.StatusNotFound)
		return
	}
	w.Header().Set(adapter.ArtifactTypeHeader, a.kind)
	_, _ = w.Write(a.content)
}

func (f *fakeServer) createRegistry(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRegistryRequest
	if !f.decode(w, r, &req) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.registries[req.Name]; ok {
		http.Error(w, "registry exists", http.StatusConflict)
		return
	}
	f.registries[req.Name] = map[string][2]string{}
}

func (f *fakeServer) addModel(w http.ResponseWriter, r *http.Request) {
	var req models.AddModelRequest
	if !f.decode(w, r, &req) {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	reg, ok := f.registries[r.PathValue("name")]
	if !ok {
		http.Error(w, "registry not found", http.StatusNotFound)
		return
	}
	if _, ok = f.artifacts[req.RunID][req.ArtifactName]; !ok {
		http.Error(w, "artifact not found", http.StatusBadRequest)
		return
	}
	for _, tag := range req.Tags {
		reg[tag] = [2]string{req.RunID, req.ArtifactName}
	}
}

func (f *fakeServer) taggedModel(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ref, ok := f.registries[r.PathValue("name")][r.PathValue("tag")]
	if !ok {
		http.Error(w, "tag not found", http.StatusNotFound)
		return
	}
	a := f.artifacts[ref[0]][ref[1]]
	w.Header().Set(adapter.ArtifactNameHeader, ref[1])
	w.Header().Set(adapter.RunIDHeader, ref[0])
	w.Header().Set(adapter.ArtifactTypeHeader, a.kind)
	_, _ = w.Write(a.content)
}

func TestScenario_TrainAndRegister(t *testing.T) {
	for _, hashKey := range []string{"", "secret"} {
		t.Run("hash key "+hashKey, func(t *testing.T) {
			srv, fake := newFakeServer(t, hashKey)
			ctx := context.Background()

			dir := t.TempDir()
			textPath := filepath.Join(dir, "plain_text_file.txt")
			modelPath := filepath.Join(dir, "mobile_sam.pt")
			require.NoError(t, os.WriteFile(textPath, []byte("notes"), 0o600))
			require.NoError(t, os.WriteFile(modelPath, []byte("weights"), 0o600))

			opts := []Option{WithLogger(zerolog.Nop())}
			if hashKey != "" {
				opts = append(opts, WithHashKey(hashKey))
			}
			c, err := New(srv.URL, opts...)
			require.NoError(t, err)

			require.True(t, c.CreateModelRegistry(ctx, "test_registry_1"))
			assert.False(t, c.CreateModelRegistry(ctx, "test_registry_1"), "duplicate registry")

			var runID string
			err = c.StartRun(ctx, "my_experiment", func(run *Run) error {
				runID = run.ID()
				if err := run.Log(ctx, map[string]any{"mae": 0.2333, "loss": 100.0}); err != nil {
					return err
				}
				if err := run.Log(ctx, map[string]any{"mae": 0.2}); err != nil {
					return err
				}
				if err := run.AddPlaintextArtifact(ctx, textPath); err != nil {
					return err
				}
				return run.AddModel(ctx, modelPath)
			})
			require.NoError(t, err)
			require.NotEmpty(t, runID)
			assert.Equal(t, map[string]int{runID: 1}, fake.endCounts())

			exps, err := c.Experiments(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"my_experiment"}, exps)

			runs, err := c.Experiment(ctx, "my_experiment")
			require.NoError(t, err)
			assert.Equal(t, []string{runID}, runs)

			run, err := c.Run(ctx, runID)
			require.NoError(t, err)
			require.NotNil(t, run)
			mae, ok := run.Metric("mae")
			require.True(t, ok)
			assert.Equal(t, []any{0.2333, 0.2}, mae.Values())
			loss, ok := run.Metric("loss")
			require.True(t, ok)
			assert.Equal(t, []any{100.0}, loss.Values())

			missing, err := c.Run(ctx, "no-such-run")
			require.NoError(t, err)
			assert.Nil(t, missing)

			text, err := c.Artifact(ctx, runID, "plain_text_file.txt")
			require.NoError(t, err)
			assert.Equal(t, models.PlainTextArtifact, text.Type)
			assert.Equal(t, []byte("notes"), text.Content)

			require.True(t, c.AddModel(ctx, "test_registry_1", runID, "mobile_sam.pt", []string{"latest"}))
			assert.False(t, c.AddModel(ctx, "no_registry", runID, "mobile_sam.pt", []string{"latest"}))

			model, err := c.TaggedModel(ctx, "test_registry_1", "latest")
			require.NoError(t, err)
			assert.Equal(t, "mobile_sam.pt", model.Name)
			assert.Equal(t, runID, model.RunID)
			assert.Equal(t, models.ModelArtifact, model.Type)
			assert.Equal(t, []byte("weights"), model.Content)

			_, err = c.TaggedModel(ctx, "test_registry_1", "stable")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestScenario_FailedScopeStillEndsRun(t *testing.T) {
	srv, fake := newFakeServer(t, "")
	ctx := context.Background()

	c, err := New(srv.URL, WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	var runID string
	err = c.StartRun(ctx, "my_experiment", func(run *Run) error {
		runID = run.ID()
		return run.AddModel(ctx, filepath.Join(t.TempDir(), "absent.pt"))
	})
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NotEmpty(t, runID)
	assert.Equal(t, map[string]int{runID: 1}, fake.endCounts())
}
