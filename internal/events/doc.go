// Package events publishes task lifecycle events to in-process handlers.
//
// The task service emits an event after every successful mutation. Handlers
// are registered on an InMemoryEventEmitter at startup; the audit handler in
// this package writes each event to the log.
package events
