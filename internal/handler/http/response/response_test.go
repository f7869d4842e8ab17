package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"id": "t1"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestValidationErrorCarriesFieldDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"email": "email is required"})

	assert.Equal(t, 422, rec.Code)

	resp := decode(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "email is required", resp.Error.Details["email"])
}

func TestErrorHelpersSetCodeAndStatus(t *testing.T) {
	cases := []struct {
		fn     func(w *httptest.ResponseRecorder)
		status int
		code   string
	}{
		{func(w *httptest.ResponseRecorder) { Unauthorized(w, "nope") }, 401, "UNAUTHORIZED"},
		{func(w *httptest.ResponseRecorder) { Forbidden(w, "nope") }, 403, "FORBIDDEN"},
		{func(w *httptest.ResponseRecorder) { NotFound(w, "gone") }, 404, "NOT_FOUND"},
		{func(w *httptest.ResponseRecorder) { Conflict(w, "dup") }, 409, "CONFLICT"},
		{func(w *httptest.ResponseRecorder) { InternalServerError(w, "boom") }, 500, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		tc.fn(rec)
		assert.Equal(t, tc.status, rec.Code)
		resp := decode(t, rec)
		require.NotNil(t, resp.Error, tc.code)
		assert.Equal(t, tc.code, resp.Error.Code)
	}
}

func TestNewMetaRoundsPagesUp(t *testing.T) {
	assert.Equal(t, 3, NewMeta(1, 20, 41).TotalPages)
	assert.Equal(t, 2, NewMeta(1, 20, 40).TotalPages)
	assert.Equal(t, 0, NewMeta(1, 20, 0).TotalPages)
	assert.Equal(t, 0, NewMeta(1, 0, 7).TotalPages, "a zero limit must not divide by zero")
}
