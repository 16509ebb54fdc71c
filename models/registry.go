// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ModelRegistry is a named collection of model artifacts addressable by
// tag.
type ModelRegistry struct {
	Name    string       `json:"name"`
	Entries []ModelEntry `json:"entries"`

	// Tags maps a tag to the artifact URLs it has pointed to, most recent
	// last.
	Tags map[string][]string `json:"tags"`
}

// Latest returns the URL currently pointed to by tag.
func (r ModelRegistry) Latest(tag string) (string, bool) {
	urls := r.Tags[tag]
	if len(urls) == 0 {
		return "", false
	}
	return urls[len(urls)-1], true
}

// ModelEntry is one model artifact registered in a [ModelRegistry].
type ModelEntry struct {
	URL  string   `json:"url"`
	Tags []string `json:"tags"`
}

// CreateRegistryRequest creates an empty registry.
type CreateRegistryRequest struct {
	Name string `json:"name"`
}

// AddModelRequest registers a model artifact uploaded to a run under the
// given tags.
type AddModelRequest struct {
	Registry     string   `json:"-"`
	RunID        string   `json:"run_id"`
	ArtifactName string   `json:"artifact_name"`
	Tags         []string `json:"tags"`
}
