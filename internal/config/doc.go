// Package config handles configuration loading and validation from the
// process environment. It provides type-safe access to the settings the
// pipeline components need, so that presence of per-step configuration is
// decided once at startup rather than per call.
package config
