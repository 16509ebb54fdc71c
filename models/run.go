// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"
	"time"
)

// Run is one tracked execution inside an experiment as reported by the
// server.
type Run struct {
	ID           string
	Timestamp    time.Time
	ExperimentID string
	Metrics      []Metric
}

// Metric returns the metric called name and whether it was recorded.
func (r Run) Metric(name string) (Metric, bool) {
	for _, m := range r.Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return Metric{}, false
}

// RunResponse is the server representation of a run. Metrics are keyed by
// their name.
type RunResponse struct {
	RunID        string            `json:"run_id"`
	Timestamp    time.Time         `json:"timestamp"`
	ExperimentID string            `json:"experiment_id"`
	Metrics      map[string]Metric `json:"metrics"`
}

// ToRun converts the wire representation into a [Run]. Metrics are sorted by
// name so that the result does not depend on map iteration order.
func (r RunResponse) ToRun() Run {
	run := Run{
		ID:           r.RunID,
		Timestamp:    r.Timestamp,
		ExperimentID: r.ExperimentID,
		Metrics:      make([]Metric, 0, len(r.Metrics)),
	}

	for name, m := range r.Metrics {
		if m.Name == "" {
			m.Name = name
		}
		run.Metrics = append(run.Metrics, m)
	}
	sort.Slice(run.Metrics, func(i, j int) bool {
		return run.Metrics[i].Name < run.Metrics[j].Name
	})

	return run
}

// CreateRunRequest asks the server to create a run with a client-chosen id.
type CreateRunRequest struct {
	RunID        string `json:"run_id"`
	ExperimentID string `json:"experiment_id"`
}

// CreateRunResponse carries the id under which the server stored the run.
type CreateRunResponse struct {
	RunID string `json:"run_id"`
}

// AddMetricsRequest appends metric values to a run.
type AddMetricsRequest struct {
	RunID   string   `json:"run_id"`
	Metrics []Metric `json:"metrics"`
}
