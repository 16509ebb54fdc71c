package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey is the HMAC key used to sign request bodies. Empty disables
	// signing.
	HashKey string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientJob describes the upload performed by the CLI.
type ClientJob struct {
	Experiment   string
	Registry     string
	Tags         []string
	ArtifactPath string
	ModelPath    string
	DryRun       bool
}

// ClientConfig is the validated view of [StructuredConfig] used at runtime.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Job     ClientJob
}

// GetClientConfig builds and validates the client config from every source.
// args are the command-line arguments without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Job: ClientJob{
			Experiment:   cfg.Job.Experiment,
			Registry:     cfg.Job.Registry,
			Tags:         cfg.Job.Tags,
			ArtifactPath: cfg.Job.ArtifactPath,
			ModelPath:    cfg.Job.ModelPath,
			DryRun:       cfg.Job.DryRun,
		},
	}
}
