// Package command turns untyped request bodies into validated, typed commands.
//
// Fields are checked in declaration order and the first failure is returned as a
// *domain.ValidationError. Nothing is aggregated and nothing is coerced: a status
// of 1 or "true" is rejected rather than read as a boolean.
package command
