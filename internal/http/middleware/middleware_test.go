package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"futbol-dashboard-service/internal/logging"
	"futbol-dashboard-service/internal/metrics"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRequestLoggerGeneratesRequestID(t *testing.T) {
	r := newEngine(RequestLogger(logging.Nop(), metrics.NewRecorder()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}

func TestRequestLoggerEchoesSafeRequestID(t *testing.T) {
	r := newEngine(RequestLogger(logging.Nop(), metrics.NewRecorder()))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "abc-123_DEF")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123_DEF", w.Header().Get(HeaderRequestID))
}

func TestRequestLoggerReplacesUnsafeRequestID(t *testing.T) {
	r := newEngine(RequestLogger(logging.Nop(), metrics.NewRecorder()))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "bad id\nwith newline")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	got := w.Header().Get(HeaderRequestID)
	assert.NotEmpty(t, got)
	assert.NotEqual(t, "bad id\nwith newline", got)
}

func TestAdminAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin", AdminAuth("secret"), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set(HeaderAdminPassword, "wrong")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set(HeaderAdminPassword, "secret")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAdminAuthDisabledWhenNoPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin", AdminAuth(""), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set(HeaderAdminPassword, "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
