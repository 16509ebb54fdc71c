package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/mlsolid-go/internal/adapter"
	"github.com/MKhiriev/mlsolid-go/internal/config"
	"github.com/MKhiriev/mlsolid-go/internal/logger"
	"github.com/MKhiriev/mlsolid-go/mlsolid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingServer answers every mlsolid endpoint with success and records
// the requests it saw as "METHOD path".
type recordingServer struct {
	mu       sync.Mutex
	requests []string
	status   map[string]int
}

func (s *recordingServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path

	s.mu.Lock()
	s.requests = append(s.requests, key)
	status := s.status[key]
	s.mu.Unlock()

	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}

	switch {
	case key == "POST /api/runs":
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]string{"run_id": body["run_id"]})
	case key == "GET /api/registries/test_registry_1":
		_, _ = w.Write([]byte(`{"name":"test_registry_1"}`))
	case strings.HasPrefix(key, "GET /api/registries/test_registry_1/tags/"):
		w.Header().Set(adapter.ArtifactNameHeader, "mobile_sam.pt")
		w.Header().Set(adapter.RunIDHeader, "run")
		_, _ = w.Write([]byte("weights"))
	}
}

func (s *recordingServer) seen() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.requests))
	for _, r := range s.requests {
		// run ids are generated, keep only the route shape
		parts := strings.Split(r, "/")
		if len(parts) > 3 && parts[2] == "runs" {
			parts[3] = "{run}"
		}
		out = append(out, strings.Join(parts, "/"))
	}
	return out
}

func newJob(t *testing.T) config.ClientJob {
	t.Helper()
	dir := t.TempDir()
	artifact := filepath.Join(dir, "plain_text_file.txt")
	model := filepath.Join(dir, "mobile_sam.pt")
	require.NoError(t, os.WriteFile(artifact, []byte("notes"), 0o600))
	require.NoError(t, os.WriteFile(model, []byte("weights"), 0o600))

	return config.ClientJob{
		Experiment:   "my_experiment",
		Registry:     "test_registry_1",
		Tags:         []string{"latest"},
		ArtifactPath: artifact,
		ModelPath:    model,
	}
}

func newApp(t *testing.T, srv *recordingServer, job config.ClientJob) *App {
	t.Helper()
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	sdk, err := mlsolid.New(ts.URL, mlsolid.WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	app, err := NewApp(sdk, job, logger.Nop())
	require.NoError(t, err)
	return app
}

func TestApp_Run_Publishes(t *testing.T) {
	srv := &recordingServer{}
	app := newApp(t, srv, newJob(t))

	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, []string{
		"POST /api/registries",
		"POST /api/runs",
		"POST /api/runs/{run}/artifacts",
		"POST /api/runs/{run}/artifacts",
		"POST /api/runs/{run}/end",
		"GET /api/runs/{run}/artifacts/plain_text_file.txt",
		"POST /api/registries/test_registry_1/models",
		"GET /api/registries/test_registry_1/tags/latest",
	}, srv.seen())
}

func TestApp_Run_ExistingRegistry(t *testing.T) {
	srv := &recordingServer{status: map[string]int{"POST /api/registries": http.StatusConflict}}
	app := newApp(t, srv, newJob(t))

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, srv.seen(), "GET /api/registries/test_registry_1")
}

func TestApp_Run_RegistryUnavailable(t *testing.T) {
	srv := &recordingServer{status: map[string]int{
		"POST /api/registries":                http.StatusInternalServerError,
		"GET /api/registries/test_registry_1": http.StatusNotFound,
	}}
	app := newApp(t, srv, newJob(t))

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, ErrCreateRegistry)
	assert.ErrorIs(t, err, mlsolid.ErrNotFound)
	assert.NotContains(t, srv.seen(), "POST /api/runs")
}

func TestApp_Run_AddModelRejected(t *testing.T) {
	srv := &recordingServer{status: map[string]int{
		"POST /api/registries/test_registry_1/models": http.StatusBadRequest,
	}}
	app := newApp(t, srv, newJob(t))

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, ErrAddModel)
}

func TestApp_Run_UploadFailureStillEndsRun(t *testing.T) {
	job := newJob(t)
	job.ModelPath = filepath.Join(t.TempDir(), "absent.pt")
	srv := &recordingServer{}
	app := newApp(t, srv, job)

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, srv.seen(), "POST /api/runs/{run}/end")
	assert.NotContains(t, srv.seen(), "POST /api/registries/test_registry_1/models")
}

func TestApp_Run_DryRun(t *testing.T) {
	job := newJob(t)
	job.DryRun = true
	srv := &recordingServer{}
	app := newApp(t, srv, job)

	require.NoError(t, app.Run(context.Background()))
	assert.Empty(t, srv.seen())
}

func TestApp_Run_NoRegistry(t *testing.T) {
	job := newJob(t)
	job.Registry = ""
	srv := &recordingServer{}
	app := newApp(t, srv, job)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, []string{
		"POST /api/runs",
		"POST /api/runs/{run}/artifacts",
		"POST /api/runs/{run}/artifacts",
		"POST /api/runs/{run}/end",
		"GET /api/runs/{run}/artifacts/plain_text_file.txt",
	}, srv.seen())
}

func TestNewApp_NilClient(t *testing.T) {
	_, err := NewApp(nil, config.ClientJob{}, nil)
	assert.Error(t, err)
}
