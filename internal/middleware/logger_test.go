package middleware

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestErrorLogger_RecoversPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logs := captureLog(t)

	router := gin.New()
	router.Use(RequestID(), ErrorLogger())
	router.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": {"message": "Internal server error."}}`, w.Body.String())
	assert.Contains(t, logs.String(), "request_error type=panic")
	assert.Contains(t, logs.String(), "kaboom")
}

func TestErrorLogger_LogsErrorsWithMetaAndRedactsKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logs := captureLog(t)

	router := gin.New()
	router.Use(ErrorLogger())
	router.DELETE("/report-closed/:id", func(c *gin.Context) {
		_ = c.Error(errors.New("db down")).SetMeta(gin.H{"reason": "test"})
		c.JSON(http.StatusInternalServerError, gin.H{})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/report-closed/1?api-key=TopSecretAPIKey", nil))

	out := logs.String()
	assert.Contains(t, out, `error="db down"`)
	assert.Contains(t, out, "reason:test")
	assert.Contains(t, out, "api-key=REDACTED")
	assert.NotContains(t, out, "TopSecretAPIKey")
}
