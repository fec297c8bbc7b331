// Package store defines interfaces for data access operations.
// These interfaces abstract the underlying storage mechanism from the
// pipeline's core logic. Stores here are read-only by design: the
// pipeline's only writes go through the downstream microservices.
package store
