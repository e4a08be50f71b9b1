package response

import (
	"encoding/json"
	"net/http"

	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

// Envelope is the body of every response.
type Envelope struct {
	Success bool                `json:"success"`
	Data    any                 `json:"data,omitempty"`
	Error   string              `json:"error,omitempty"`
	Details []failure.Violation `json:"details,omitempty"`
	Message string              `json:"message,omitempty"`
	Count   *int                `json:"count,omitempty"`
}

// WithData sends a successful response carrying data.
func WithData(writer http.ResponseWriter, code int, data any) {
	response(writer, code, Envelope{Success: true, Data: data})
}

// WithDataMessage sends data together with a human readable status message.
func WithDataMessage(writer http.ResponseWriter, code int, data any, message string) {
	response(writer, code, Envelope{Success: true, Data: data, Message: message})
}

// WithList sends a list. count always equals the number of items and a nil
// list is sent as an empty array.
func WithList[T any](writer http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}

	count := len(items)

	response(writer, http.StatusOK, Envelope{Success: true, Data: items, Count: &count})
}

// WithMessage sends a successful response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Envelope{Success: true, Message: message})
}

// WithError maps err to its status code. Client failures keep their message and
// violations, anything else becomes a generic 500 and the cause is only logged.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Int("code", code).Msg("request failed")

		response(writer, http.StatusInternalServerError, Envelope{Error: constant.ResponseErrorInternal})

		return
	}

	response(writer, code, Envelope{
		Error:   failure.GetMessage(err),
		Details: failure.GetViolations(err),
	})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	response(writer, http.StatusTooManyRequests, Envelope{Error: constant.ResponseErrorRequestLimitExceeded})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Envelope{Error: constant.ResponseErrorPrepareShutdown})
}

func response(writer http.ResponseWriter, code int, payload Envelope) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
