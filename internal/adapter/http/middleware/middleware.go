package middleware

import (
	"net/http"
	"strings"
	"time"

	"levantamiento_service/internal/domain/auth"
	"levantamiento_service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderUserID    = "X-User-ID"
	HeaderUserRole  = "X-User-Role"
	HeaderRequestID = "X-Request-ID"

	PrincipalKey = "principal"
	RequestIDKey = "request_id"
)

// PrincipalFrom returns the principal stored by Principal. A request that went
// through no principal middleware yields the zero principal, which is allowed
// nothing.
func PrincipalFrom(c *gin.Context) auth.Principal {
	if val, ok := c.Get(PrincipalKey); ok {
		if p, ok := val.(auth.Principal); ok {
			return p
		}
	}
	return auth.Principal{}
}

// RequestIDFrom returns the id stored by RequestID.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// Principal builds the caller's principal from the session headers set by the
// gateway. Without headers the fallback principal is used; it is the zero value
// unless the deployment configures a local operator.
func Principal(fallback auth.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		rawRole := c.GetHeader(HeaderUserRole)

		if userID == "" && strings.TrimSpace(rawRole) == "" {
			c.Set(PrincipalKey, fallback)
			c.Next()
			return
		}

		role, ok := auth.ParseRole(rawRole)
		if !ok {
			appErr := pkg.NewDomainErrorSimple("INVALID_ROLE", "Unknown user role", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(PrincipalKey, auth.Principal{UserID: userID, Role: role})
		c.Next()
	}
}

// RequestID propagates the caller's request id or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// AccessLog writes one structured line per request.
func AccessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", RequestIDFrom(c)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.Error("[http] request", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("[http] request", fields...)
		default:
			logger.Info("[http] request", fields...)
		}
	}
}

// Recovery turns panics into a 500 with the standard error body.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("[http] recovered from panic",
			zap.Any("panic", recovered), zap.String("request_id", RequestIDFrom(c)))
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}
