package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-hash-key request signing key
//	-c/-config json file path with configs
//	-experiment experiment the run belongs to
//	-registry model registry to create and register the model in
//	-tags comma-separated tags for the registered model
//	-artifact plaintext artifact to upload
//	-model model file to upload
//	-dry-run do not contact the server while the run is open
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("mlsolid", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var requestTimeout time.Duration
	var hashKey string
	var jsonConfigPath string
	var experiment, registry, tags string
	var artifactPath, modelPath string
	var dryRun bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Request signing key")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&experiment, "experiment", "", "Experiment name")
	fs.StringVar(&registry, "registry", "", "Model registry name")
	fs.StringVar(&tags, "tags", "", "Comma-separated model tags")
	fs.StringVar(&artifactPath, "artifact", "", "Plaintext artifact path")
	fs.StringVar(&modelPath, "model", "", "Model file path")
	fs.BoolVar(&dryRun, "dry-run", false, "Do not send run data to the server")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			HashKey: hashKey,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Job: Job{
			Experiment:   experiment,
			Registry:     registry,
			Tags:         splitTags(tags),
			ArtifactPath: artifactPath,
			ModelPath:    modelPath,
			DryRun:       dryRun,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// String returns a canonical host:port string, or "" if unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}
	if host == "" {
		return errors.New("host is required")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	a.Host = host
	a.Port = port
	return nil
}
