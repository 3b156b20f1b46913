// Package testutils provides helpers for HTTP-level tests of the tasks API.
//
// Servers created with CreateTestServer are closed automatically via t.Cleanup,
// and DoJSONRequest returns responses with the body already read and closed:
//
//	server := testutils.CreateTestServer(t, router)
//	resp, body := testutils.DoJSONRequest(t, server, http.MethodPost, "/v1/task", `{"name":"a"}`)
//	testutils.AssertErrorResponse(t, resp, body, http.StatusBadRequest, "Field required")
package testutils
