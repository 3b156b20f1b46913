// Package domain contains the task entity and the errors shared by every layer
// of the service. It has no dependencies on transport or storage packages.
package domain
