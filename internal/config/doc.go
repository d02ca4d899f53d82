// Package config loads lambdastream configuration from YAML with
// environment variable overrides.
//
// Precedence, lowest first: DefaultConfig, the YAML file, LAMBDASTREAM_*
// environment variables, then command-line flags (applied by the caller).
package config
