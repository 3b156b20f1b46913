// Package service sits between the HTTP handlers and the task store.
//
// TaskService forwards every call to the store unchanged and returns the store's
// errors as is, so callers can still match them with errors.Is. It exists as the
// seam for business rules or an alternate backend, and adds tracing spans and
// debug logging around each operation. Successful mutations are published as
// events when an emitter is configured.
package service
