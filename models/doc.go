// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the domain and wire types exchanged with the mlsolid
// server: experiments, runs and their metrics, artifacts and model
// registries. The types carry JSON tags matching the server's REST API and
// no behaviour beyond small constructors and accessors.
package models
