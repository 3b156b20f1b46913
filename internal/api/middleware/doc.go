// Package middleware holds the HTTP middleware specific to this service:
// request tracing with a context-scoped logger, and panic recovery that keeps
// the JSON error contract.
package middleware
