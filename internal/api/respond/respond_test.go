package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrorDetail(rec, http.StatusBadRequest, CodeLeagueFull, "League is full", "max_teams=4")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, CodeLeagueFull, body.Error.Code)
	assert.Equal(t, "League is full", body.Error.Message)
	assert.Equal(t, "max_teams=4", body.Error.Detail)
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "Team")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"Team not found"}}`, rec.Body.String())
}

func TestWriteJSON_CacheHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, []byte(`{}`), `W/"x"`, time.Minute, true)

	assert.Equal(t, `W/"x"`, rec.Header().Get("ETag"))
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.Equal(t, "public, max-age=60, stale-while-revalidate=30", rec.Header().Get("Cache-Control"))
}

func TestWriteDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteDetail(rec, http.StatusOK, "done")
	assert.JSONEq(t, `{"detail":"done"}`, rec.Body.String())
}
