package response

import (
	"net/http"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// CollectionResponse wraps list results.
type CollectionResponse struct {
	Status      string         `json:"status"`
	RequestedAt string         `json:"requestedAt"`
	Results     int            `json:"results"`
	Data        map[string]any `json:"data"`
}

// EntityResponse wraps a single resource, with a message on mutations.
type EntityResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     apperror.Kind        `json:"error"`
	Message   string               `json:"message"`
	Errors    []apperror.Violation `json:"errors,omitempty"`
	RequestID string               `json:"requestId,omitempty"`
}

// Collection sends {status, requestedAt, results, data: {key: items}}.
func Collection[T any](c *gin.Context, key string, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, CollectionResponse{
		Status:      "success",
		RequestedAt: RequestedAt(c),
		Results:     len(items),
		Data:        map[string]any{key: items},
	})
}

// Entity sends {message, data}.
func Entity(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, EntityResponse{Message: message, Data: data})
}

// NoContent ends the request with 204 and an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response
func Error(c *gin.Context, code int, kind apperror.Kind, message string, details []apperror.Violation) {
	c.JSON(code, ErrorResponse{
		Error:     kind,
		Message:   message,
		Errors:    details,
		RequestID: c.GetString(string(domain.KeyRequestID)),
	})
}

// RequestedAt returns the arrival time recorded by the request-time
// middleware, or now when it did not run.
func RequestedAt(c *gin.Context) string {
	if v, ok := c.Get(string(domain.KeyRequestedAt)); ok {
		if t, ok := v.(time.Time); ok {
			return t.UTC().Format(time.RFC3339Nano)
		}
	}
	return time.Now().UTC().Format(time.RFC3339Nano)
}
