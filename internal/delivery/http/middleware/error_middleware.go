package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const internalMessage = "An unexpected error occurred. Please try again later."

// ErrorHandler is the single place where errors recorded with c.Error are
// turned into responses. It must run before every middleware that can fail.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		reqID := c.GetString(string(domain.KeyRequestID))

		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Kind != apperror.KindInternal {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed", "request_id", reqID, "kind", appErr.Kind, "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Kind, appErr.Message, appErr.Details)
			return
		}

		// Never expose internal error details to clients.
		logger.Log.Error("Internal Server Error",
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, apperror.KindInternal, internalMessage, nil)
	}
}

// Recovery turns a panic inside a handler into an internal error for
// ErrorHandler to report.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Log.Error("Recovered from panic",
					"request_id", c.GetString(string(domain.KeyRequestID)),
					"panic", fmt.Sprint(r),
					"stack", string(debug.Stack()),
				)
				_ = c.Error(apperror.Internal(fmt.Errorf("panic: %v", r)))
				c.Abort()
			}
		}()
		c.Next()
	}
}
