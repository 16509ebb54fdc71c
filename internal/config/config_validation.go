// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Job.Experiment) == "" {
		return fmt.Errorf("%w: experiment is required", ErrInvalidJobConfigs)
	}

	if cfg.Job.Registry != "" {
		if cfg.Job.ModelPath == "" {
			return fmt.Errorf("%w: registry %q given without a model", ErrInvalidJobConfigs, cfg.Job.Registry)
		}
		if len(cfg.Job.Tags) == 0 {
			return fmt.Errorf("%w: registry %q given without tags", ErrInvalidJobConfigs, cfg.Job.Registry)
		}
	}

	return nil
}
