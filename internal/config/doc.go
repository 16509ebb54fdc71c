// Package config provides configuration loading, merging, and validation
// for the mlsolid command-line client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry point is [GetClientConfig]. The SDK itself never reads
// configuration; it is configured through options by its caller.
package config
