package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"levantamiento_service/internal/domain/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func principalRouter(fallback auth.Principal, got *auth.Principal) *gin.Engine {
	r := gin.New()
	r.Use(Principal(fallback))
	r.GET("/", func(c *gin.Context) {
		*got = PrincipalFrom(c)
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("headers", func(t *testing.T) {
		var got auth.Principal
		r := principalRouter(auth.Principal{}, &got)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderUserID, "u-1")
		req.Header.Set(HeaderUserRole, "Revisor")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, auth.Principal{UserID: "u-1", Role: auth.RoleReviewer}, got)
	})

	t.Run("fallback without headers", func(t *testing.T) {
		var got auth.Principal
		fallback := auth.Principal{UserID: "local", Role: auth.RoleAdmin}
		r := principalRouter(fallback, &got)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, fallback, got)
	})

	t.Run("unknown role", func(t *testing.T) {
		var got auth.Principal
		r := principalRouter(auth.Principal{}, &got)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderUserID, "u-1")
		req.Header.Set(HeaderUserRole, "superuser")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_ROLE")
	})
}

func TestPrincipalFrom_NotInContext(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, auth.Principal{}, PrincipalFrom(c))
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = RequestIDFrom(c)
		c.Status(http.StatusOK)
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc", seen)
		assert.Equal(t, "abc", w.Header().Get(HeaderRequestID))
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Len(t, seen, 36)
		assert.Equal(t, seen, w.Header().Get(HeaderRequestID))
	})
}

func TestAccessLogAndRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	r := gin.New()
	r.Use(RequestID(), AccessLog(logger), Recovery(logger))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")

	assert.Equal(t, 1, logs.FilterMessage("[http] recovered from panic").Len())
	requests := logs.FilterMessage("[http] request").All()
	if assert.Len(t, requests, 2) {
		assert.Equal(t, int64(http.StatusOK), requests[0].ContextMap()["status"])
		assert.Equal(t, int64(http.StatusInternalServerError), requests[1].ContextMap()["status"])
	}
}
