// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ArtifactType tells the server how an uploaded file should be treated.
type ArtifactType string

const (
	ModelArtifact     ArtifactType = "content-type/model"
	PlainTextArtifact ArtifactType = "content-type/text"
)

// Artifact is a file attached to a run.
type Artifact struct {
	Name    string
	Type    ArtifactType
	RunID   string
	Content []byte
}

// Size returns the content length in bytes.
func (a Artifact) Size() int {
	return len(a.Content)
}
