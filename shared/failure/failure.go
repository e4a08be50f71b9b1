package failure

import (
	"errors"
	"net/http"

	"hotel/shared/constant"
)

// Violation describes a single field that failed validation.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Details []Violation `json:"details,omitempty"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Validation returns a bad request Failure carrying every field violation.
// A nil or empty list yields nil.
func Validation(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}

	return &Failure{
		Code:    http.StatusBadRequest,
		Message: constant.ResponseErrorValidation,
		Details: violations,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
// The message reads "<Entity> not found".
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName + " not found",
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetMessage returns the client message of the Failure wrapped in err. Context
// added by callers with fmt.Errorf is dropped.
func GetMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return err.Error()
}

// GetViolations returns the field violations carried by a validation Failure.
func GetViolations(err error) []Violation {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Details
	}

	return nil
}

// IsNotFound reports whether err is a not-found Failure.
func IsNotFound(err error) bool {
	return GetCode(err) == http.StatusNotFound
}
