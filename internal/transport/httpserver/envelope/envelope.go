// Package envelope writes the uniform {status, message, data} response body
// shared by every endpoint.
package envelope

import (
	"encoding/json"
	"net/http"
)

type Status string

const (
	StatusOK       Status = "OK"
	StatusError    Status = "ERROR"
	StatusNotFound Status = "NOT_FOUND"
)

type Envelope struct {
	Status  Status      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Write(w http.ResponseWriter, code int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func OK(w http.ResponseWriter, message string, data interface{}) {
	Write(w, http.StatusOK, Envelope{Status: StatusOK, Message: message, Data: data})
}

func Created(w http.ResponseWriter, message string, data interface{}) {
	Write(w, http.StatusCreated, Envelope{Status: StatusOK, Message: message, Data: data})
}

func Error(w http.ResponseWriter, code int, message string) {
	Write(w, code, Envelope{Status: StatusError, Message: message})
}

func NotFound(w http.ResponseWriter, message string) {
	Write(w, http.StatusNotFound, Envelope{Status: StatusNotFound, Message: message})
}
