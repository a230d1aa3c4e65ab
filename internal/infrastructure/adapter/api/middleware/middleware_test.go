package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/time"
)

func newTestRouter(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	zapCore, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewZapLoggerWithCore(zapCore, zap.NewAtomicLevelAt(zapcore.DebugLevel))

	router := gin.New()
	router.Use(RequestID())
	router.Use(ErrorHandler(log))
	router.Use(Logger(log, timeprovider.NewRealTimeProvider()))
	router.Use(CORS("https://app.example.com"))
	return router, logs
}

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	router, _ := newTestRouter(t)

	var fromContext string
	router.GET("/ping", func(c *gin.Context) {
		fromContext = coreport.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, fromContext)
}

func TestRequestID_KeepsCallerID(t *testing.T) {
	router, _ := newTestRouter(t)
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "caller-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "caller-42", w.Header().Get(RequestIDHeader))
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	router, logs := newTestRouter(t)
	router.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 5000, body.Code)
	assert.Equal(t, "Internal server error", body.Message)

	entries := logs.FilterMessage("Panic recovered in API request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "kaboom", entries[0].ContextMap()["error"])
}

func TestLogger_OmitsQueryString(t *testing.T) {
	router, logs := newTestRouter(t)
	router.GET("/users/current-balance", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/current-balance?email=a@x.com&pin=1234", nil))

	entries := logs.FilterMessage("Request processed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/users/current-balance", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestCORS(t *testing.T) {
	router, _ := newTestRouter(t)
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
