// Package api handles incoming HTTP requests, request validation and response
// formatting. It adapts HTTP to the task service: bodies are decoded and
// validated into commands, dispatched, and results or errors are rendered as
// JSON envelopes.
package api
