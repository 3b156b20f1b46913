package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/redact"
)

// ErrPanic wraps values recovered from a panicking handler.
var ErrPanic = errors.New("handler panicked")

// Recover turns a panic in a downstream handler into a JSON 500 response.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity, as net/http does
				panic(rec)
			}

			logger.FromContext(r.Context()).Error("panic recovered",
				"panic", redact.String(fmt.Sprint(rec)),
				"stack", redact.String(string(debug.Stack())))

			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				shared.MsgUnexpectedError, fmt.Errorf("%w: %v", ErrPanic, rec))
		}()

		next.ServeHTTP(w, r)
	})
}
