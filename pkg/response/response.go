package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the wire shape for every failure: {"error": "..."}.
type ErrorBody struct {
	Error interface{} `json:"error"`
}

// MessageBody is the wire shape for confirmations: {"message": "..."}.
type MessageBody struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, MessageBody{Message: message})
}

func Error(w http.ResponseWriter, statusCode int, err interface{}) {
	JSON(w, statusCode, ErrorBody{Error: err})
}

func BadRequest(w http.ResponseWriter, err interface{}) {
	Error(w, http.StatusBadRequest, err)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "access denied"
	}
	Error(w, http.StatusUnauthorized, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "access denied"
	}
	Error(w, http.StatusForbidden, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "internal server error"
	}
	Error(w, http.StatusInternalServerError, message)
}
