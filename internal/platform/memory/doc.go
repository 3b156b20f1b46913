// Package memory provides in-process implementations of the store interfaces.
// Nothing is persisted: a TaskStore's contents live only as long as the value.
package memory
