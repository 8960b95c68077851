package apperror

import (
	"errors"
	"net/http"
)

// Kind names the category of a failure. It is echoed to clients in the
// "error" field so that two failures sharing a status code (authentication
// and authorization are both 401) stay distinguishable.
type Kind string

const (
	KindValidation     Kind = "ValidationError"
	KindBadRequest     Kind = "BadRequestError"
	KindAuthentication Kind = "AuthenticationError"
	KindAuthorization  Kind = "AuthorizationError"
	KindOwnership      Kind = "OwnershipError"
	KindNotFound       Kind = "NotFoundError"
	KindConflict       Kind = "ConflictError"
	KindUnprocessable  Kind = "UnprocessableError"
	KindInternal       Kind = "InternalError"
)

// Violation is a single field-level validation failure.
type Violation struct {
	Facet   string `json:"facet"`
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type AppError struct {
	Code    int         `json:"code"`
	Kind    Kind        `json:"error"`
	Message string      `json:"message"`
	Details []Violation `json:"errors,omitempty"`
	Err     error       `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Validation carries every violation collected by the validation stage.
func Validation(details []Violation) *AppError {
	e := New(http.StatusBadRequest, KindValidation, "Validation Error", nil)
	e.Details = details
	return e
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, KindBadRequest, message, nil)
}

// Unauthenticated reports a missing, malformed, invalid or expired credential.
func Unauthenticated(message string) *AppError {
	return New(http.StatusUnauthorized, KindAuthentication, message, nil)
}

// Unauthorized reports a role that is not in the route's allow-list.
// It keeps the 401 status on purpose; ownership failures use Forbidden.
func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, KindAuthorization, message, nil)
}

// Forbidden reports an authenticated caller that does not own the resource.
func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, KindOwnership, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, KindConflict, message, nil)
}

func Unprocessable(message string, err error) *AppError {
	return New(http.StatusUnprocessableEntity, KindUnprocessable, message, err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, KindInternal, "Internal Server Error", err)
}

// Is reports whether err carries an AppError of the given kind.
func Is(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
