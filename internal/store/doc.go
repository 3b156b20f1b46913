// Package store defines interfaces for task storage. These interfaces keep
// the service and HTTP layers independent of how tasks are held, so an
// alternate backend can replace the in-memory one without touching callers.
package store
