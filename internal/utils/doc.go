// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the transport and SDK
// layers: a preconfigured resty HTTP client, a run id generator and an
// HMAC-SHA256 body signer.
package utils
