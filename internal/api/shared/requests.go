package shared

import (
	"mime"
	"net/http"

	"github.com/phrazzld/tasks-api/internal/command"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// MaxBodyBytes bounds the size of a request body read by DecodeJSONObject.
const MaxBodyBytes = 1 << 20

// IsJSONRequest reports whether the request declares an application/json body.
// Media type parameters such as charset are allowed.
func IsJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// DecodeJSONObject reads the request body as a single JSON object.
// A missing or non-JSON Content-Type, an oversized body, or a body that is not
// a JSON object all yield an error wrapping domain.ErrInvalidJSON.
func DecodeJSONObject(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	if !IsJSONRequest(r) {
		return nil, domain.ErrInvalidJSON
	}
	return command.DecodeObject(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
}
