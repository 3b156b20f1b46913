package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/mocks"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/platform/memory"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter mounts the handler the way the server does, without middleware.
func newTestRouter(t *testing.T, svc service.TaskService) http.Handler {
	t.Helper()

	_, log := logger.NewTestLogger(t)
	h := NewTaskHandler(svc, log)

	r := chi.NewRouter()
	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)
	r.Get("/tasks", h.ListTasks)
	r.Post("/task", h.CreateTask)
	r.Put("/task/{id:[0-9]+}", h.UpdateTask)
	r.Delete("/task/{id:[0-9]+}", h.DeleteTask)
	return r
}

func newMemoryRouter(t *testing.T) http.Handler {
	t.Helper()

	_, log := logger.NewTestLogger(t)
	svc, err := service.NewTaskService(memory.NewTaskStore(log), log)
	require.NoError(t, err)
	return newTestRouter(t, svc)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), "body: %s", rr.Body.String())
	return body
}

func TestTaskHandler_CreateThenList(t *testing.T) {
	h := newMemoryRouter(t)

	rr := do(t, h, http.MethodPost, "/task", `{"name":"buy milk"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"result":{"id":1,"name":"buy milk","status":false}}`, rr.Body.String())

	rr = do(t, h, http.MethodPost, "/task", `{"name":"walk dog"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"result":{"id":2,"name":"walk dog","status":false}}`, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/tasks", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"result":[{"id":1,"name":"buy milk","status":false},{"id":2,"name":"walk dog","status":false}]}`,
		rr.Body.String())
}

func TestTaskHandler_ListEmpty(t *testing.T) {
	h := newMemoryRouter(t)

	rr := do(t, h, http.MethodGet, "/tasks", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"result":[]}`, rr.Body.String())
}

func TestTaskHandler_CreateValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing name", `{}`, "Field required"},
		{"empty name", `{"name":""}`, "Name must not be empty."},
		{"name too long", `{"name":"` + strings.Repeat("x", 51) + `"}`, "Name must not exceed 50 characters."},
		{"name not string", `{"name":5}`, "Input should be a valid string"},
		{"malformed json", `{"name":`, "Invalid or missing JSON"},
		{"array body", `["name"]`, "Invalid or missing JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newMemoryRouter(t)

			rr := do(t, h, http.MethodPost, "/task", tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.want, decodeBody(t, rr)["errors"])
		})
	}
}

func TestTaskHandler_CreateBoundaryName(t *testing.T) {
	h := newMemoryRouter(t)
	name := strings.Repeat("é", 50)

	rr := do(t, h, http.MethodPost, "/task", `{"name":"`+name+`"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	result := decodeBody(t, rr)["result"].(map[string]any)
	assert.Equal(t, name, result["name"])
}

func TestTaskHandler_CreateRequiresJSONContentType(t *testing.T) {
	h := newMemoryRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/task", strings.NewReader(`{"name":"a"}`))
	req.Header.Set("Content-Type", "text/plain")
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid or missing JSON", decodeBody(t, rr)["errors"])
}

func TestTaskHandler_Update(t *testing.T) {
	h := newMemoryRouter(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/task", `{"name":"a"}`).Code)

	rr := do(t, h, http.MethodPut, "/task/1", `{"id":1,"name":"b","status":true}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"result":{"id":1,"name":"b","status":true}}`, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/tasks", "")
	assert.JSONEq(t, `{"result":[{"id":1,"name":"b","status":true}]}`, rr.Body.String())
}

func TestTaskHandler_UpdateErrors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"id mismatch", "/task/1", `{"id":2,"name":"b","status":true}`, http.StatusBadRequest, "ID in URL does not match ID in request body."},
		{"missing task", "/task/9", `{"id":9,"name":"b","status":true}`, http.StatusBadRequest, "Task with ID 9 does not exist."},
		{"missing status", "/task/1", `{"id":1,"name":"b"}`, http.StatusBadRequest, "Field required"},
		{"status not bool", "/task/1", `{"id":1,"name":"b","status":"yes"}`, http.StatusBadRequest, "Input should be a valid boolean"},
		{"zero id", "/task/0", `{"id":0,"name":"b","status":true}`, http.StatusBadRequest, "ID must be a positive integer."},
		{"string id", "/task/1", `{"id":"1","name":"b","status":true}`, http.StatusBadRequest, "Input should be a valid integer"},
		{"validation before mismatch", "/task/1", `{"id":2,"name":"","status":true}`, http.StatusBadRequest, "Name must not be empty."},
		{"non integer path", "/task/abc", `{"id":1,"name":"b","status":true}`, http.StatusNotFound, "This page does not exist"},
		{"negative path", "/task/-1", `{"id":1,"name":"b","status":true}`, http.StatusNotFound, "This page does not exist"},
		{"overflowing path", "/task/99999999999999999999999", `{"id":1,"name":"b","status":true}`, http.StatusNotFound, "This page does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newMemoryRouter(t)
			require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/task", `{"name":"a"}`).Code)

			rr := do(t, h, http.MethodPut, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantError, decodeBody(t, rr)["errors"])

			// the stored task is untouched
			list := do(t, h, http.MethodGet, "/tasks", "")
			assert.JSONEq(t, `{"result":[{"id":1,"name":"a","status":false}]}`, list.Body.String())
		})
	}
}

func TestTaskHandler_Delete(t *testing.T) {
	h := newMemoryRouter(t)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/task", `{"name":"a"}`).Code)

	rr := do(t, h, http.MethodDelete, "/task/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Task #1 has been deleted"}`, rr.Body.String())

	// delete is terminal
	rr = do(t, h, http.MethodDelete, "/task/1", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Task with ID 1 does not exist.", decodeBody(t, rr)["errors"])

	rr = do(t, h, http.MethodPut, "/task/1", `{"id":1,"name":"b","status":false}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// ids are not reused
	rr = do(t, h, http.MethodPost, "/task", `{"name":"c"}`)
	assert.JSONEq(t, `{"result":{"id":2,"name":"c","status":false}}`, rr.Body.String())
}

func TestTaskHandler_DeleteNonIntegerPath(t *testing.T) {
	h := newMemoryRouter(t)

	rr := do(t, h, http.MethodDelete, "/task/1.5", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "This page does not exist", decodeBody(t, rr)["errors"])
}

func TestTaskHandler_MethodNotAllowed(t *testing.T) {
	h := newMemoryRouter(t)

	rr := do(t, h, http.MethodPost, "/tasks", `{"name":"a"}`)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "Method not allowed", decodeBody(t, rr)["errors"])
}

func TestTaskHandler_ServiceFailure(t *testing.T) {
	logBuf, _ := logger.SetupTestLogger(t)
	svc := &mocks.MockTaskService{Err: errors.New("backend unavailable at 10.1.2.3:5432")}
	h := newTestRouter(t, svc)

	for _, rr := range []*httptest.ResponseRecorder{
		do(t, h, http.MethodGet, "/tasks", ""),
		do(t, h, http.MethodPost, "/task", `{"name":"a"}`),
		do(t, h, http.MethodPut, "/task/3", `{"id":3,"name":"a","status":true}`),
		do(t, h, http.MethodDelete, "/task/3", ""),
	} {
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, shared.MsgUnexpectedError, decodeBody(t, rr)["errors"])
	}

	assert.Equal(t, 1, svc.Calls("ListTasks"))
	assert.Equal(t, 1, svc.Calls("CreateTask"))
	assert.Equal(t, 1, svc.Calls("UpdateTask"))
	assert.Equal(t, 1, svc.Calls("DeleteTask"))
	assert.NotContains(t, logBuf.String(), "10.1.2.3")
	logger.AssertLogContains(t, logBuf, "API error response")
}

func TestTaskHandler_ValidationSkipsService(t *testing.T) {
	svc := &mocks.MockTaskService{}
	h := newTestRouter(t, svc)

	do(t, h, http.MethodPost, "/task", `{"name":""}`)
	do(t, h, http.MethodPut, "/task/1", `{"id":2,"name":"b","status":true}`)

	assert.Zero(t, svc.Calls("CreateTask"))
	assert.Zero(t, svc.Calls("UpdateTask"))
}

func TestTaskHandler_NilListRendersEmptyArray(t *testing.T) {
	h := newTestRouter(t, &mocks.MockTaskService{})

	rr := do(t, h, http.MethodGet, "/tasks", "")

	assert.JSONEq(t, `{"result":[]}`, rr.Body.String())
}

func TestNewTaskHandlerPanicsWithoutService(t *testing.T) {
	assert.Panics(t, func() { NewTaskHandler(nil, nil) })
}
