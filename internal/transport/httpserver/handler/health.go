package handler

import (
	"net/http"

	"wedding-rsvp-go/internal/transport/httpserver/envelope"
)

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	envelope.OK(w, "success", healthResponse{Status: "UP"})
}
