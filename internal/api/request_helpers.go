package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// taskIDParam is the chi URL parameter carrying a task id.
const taskIDParam = "id"

// getPathID extracts a task id from the URL path.
// The route pattern only admits digits, so a failure here means the value does
// not fit in an int; callers answer such requests like any other unknown route.
func getPathID(r *http.Request) (int, bool) {
	raw := chi.URLParam(r, taskIDParam)
	if raw == "" {
		return 0, false
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
