// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw configuration container populated by every
// source before merging.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the mlsolid server address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Job describes what the CLI uploads and registers.
	Job Job `envPrefix:"JOB_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// HashKey signs request bodies with HMAC-SHA256 when non-empty.
	HashKey string `env:"HASH_KEY"`
}

// Adapter holds the transport settings used to reach the server.
type Adapter struct {
	// HTTPAddress is the server address, host:port or a full URL.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Job holds the parameters of a single CLI invocation.
type Job struct {
	Experiment   string   `env:"EXPERIMENT"`
	Registry     string   `env:"REGISTRY"`
	Tags         []string `env:"TAGS" envSeparator:","`
	ArtifactPath string   `env:"ARTIFACT_PATH"`
	ModelPath    string   `env:"MODEL_PATH"`
	DryRun       bool     `env:"DRY_RUN"`
}

// GetStructuredConfig loads and merges every configuration source. args are
// the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
