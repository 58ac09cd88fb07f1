// Package config holds the validated settings of the REST API and the CLI:
// database, logger and key generation tuning. InitializeRestConfig loads them
// from YAML with RSA_ prefixed environment overrides.
package config
