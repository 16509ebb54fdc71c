// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the upload job run by the mlsolid CLI.
//
// It records a run in an experiment, attaches the configured files to it and
// optionally publishes the model into a registry under a set of tags.
package client
