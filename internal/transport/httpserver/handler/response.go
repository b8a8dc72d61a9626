package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"wedding-rsvp-go/internal/transport/httpserver/envelope"
)

const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		envelope.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	envelope.Error(w, http.StatusBadRequest, "invalid json body")
}
