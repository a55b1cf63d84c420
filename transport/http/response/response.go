package response

import (
	"encoding/json"
	"net/http"

	"garage/shared/constant"
	"garage/shared/failure"
	"garage/shared/logger"
)

// Envelope is the body shape shared by every endpoint.
type Envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// WithMessage sends a success response with a simple text message.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Envelope{Success: true, Message: message})
}

// WithJSON sends a success response containing a JSON payload.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Envelope{Success: true, Data: jsonPayload})
}

// WithMessageAndJSON sends a success response with both a message and a payload.
func WithMessageAndJSON(writer http.ResponseWriter, code int, message string, jsonPayload any) {
	response(writer, code, Envelope{Success: true, Message: message, Data: jsonPayload})
}

// WithError sends a failure response, mapping the error to its HTTP status code.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	response(writer, code, Envelope{Success: false, Message: errMsg, Errors: []string{errMsg}})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded.
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	response(writer, http.StatusTooManyRequests, Envelope{Success: false, Message: constant.ResponseErrorRequestLimitExceeded})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down.
func WithPreparingShutdown(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Envelope{Success: false, Message: constant.ResponseErrorPrepareShutdown})
}

func response(writer http.ResponseWriter, code int, payload Envelope) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
