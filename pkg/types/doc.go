// Package types defines the entity types, partial-update payloads, the Store
// interface, and standard error types for the classmap modeling backend.
package types
