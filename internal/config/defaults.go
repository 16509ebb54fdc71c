package config

import "time"

const (
	DefaultHTTPAddress    = "localhost:5000"
	DefaultRequestTimeout = 30 * time.Second
	DefaultTag            = "latest"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Job: Job{
			Tags: []string{DefaultTag},
		},
	}
}
