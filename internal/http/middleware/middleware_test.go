package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDKeepsCallerValue(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDHeader)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestRequestIDGenerated(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestLoggerWritesRequestLine(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestID(), Logger(zerolog.New(&buf)))
	r.POST("/predict_churn", func(c *gin.Context) { c.Status(http.StatusUnprocessableEntity) })

	req := httptest.NewRequest(http.MethodPost, "/predict_churn", nil)
	req.Header.Set(RequestIDHeader, "rid-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "rid-1", line["request_id"])
	assert.Equal(t, "/predict_churn", line["path"])
	assert.Equal(t, float64(http.StatusUnprocessableEntity), line["status"])
}

func TestLoggerLevelFollowsStatus(t *testing.T) {
	cases := map[int]string{
		http.StatusOK:                  "info",
		http.StatusBadRequest:          "warn",
		http.StatusInternalServerError: "error",
	}
	for status, want := range cases {
		var buf bytes.Buffer
		r := gin.New()
		r.Use(Logger(zerolog.New(&buf).Level(zerolog.InfoLevel)))
		r.GET("/", func(c *gin.Context) { c.Status(status) })
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "status %d", status)
		assert.Equal(t, want, line["level"], "status %d", status)
	}
}

func TestLoggerSkipsBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(Logger(zerolog.New(&buf).Level(zerolog.WarnLevel)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Zero(t, buf.Len())
}
