package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	guestdomain "wedding-rsvp-go/internal/domain/guest"
	"wedding-rsvp-go/internal/transport/httpserver/envelope"
	"wedding-rsvp-go/internal/transport/httpserver/middleware"
)

type createGuestRequest struct {
	FullName string `json:"fullName"`
	Gender   string `json:"gender"`
}

type updateGuestRequest struct {
	FullName   string         `json:"fullName"`
	Gender     string         `json:"gender"`
	RespStatus optionalStatus `json:"respStatus"`
}

func (h *Handlers) ListGuests(w http.ResponseWriter, r *http.Request) {
	var ownerID *int64
	if acc, ok := middleware.AccountFromContext(r.Context()); ok {
		ownerID = &acc.ID
	}
	h.listGuests(w, r, ownerID)
}

func (h *Handlers) ListPublicGuests(w http.ResponseWriter, r *http.Request) {
	h.listGuests(w, r, nil)
}

func (h *Handlers) listGuests(w http.ResponseWriter, r *http.Request, ownerID *int64) {
	guests, err := h.Guests.List(r.Context(), ownerID)
	if err != nil {
		h.log.InternalError("guests.list: list guests failed", err, "scoped", ownerID != nil)
		envelope.Error(w, http.StatusInternalServerError, "Failed to fetch guests")
		return
	}

	result := make([]guestResponse, 0, len(guests))
	for i := range guests {
		result = append(result, toGuestResponse(&guests[i]))
	}
	envelope.OK(w, "success", result)
}

func (h *Handlers) GetGuest(w http.ResponseWriter, r *http.Request) {
	publicID := chi.URLParam(r, middleware.PublicIDParam)

	view, err := h.Guests.GetPublic(r.Context(), publicID)
	if err != nil {
		h.writeGuestError(w, "guests.get", err, publicID)
		return
	}

	envelope.OK(w, "success", toPublicGuestResponse(view))
}

func (h *Handlers) CreateGuest(w http.ResponseWriter, r *http.Request) {
	acc, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		envelope.Error(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req createGuestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	created, err := h.Guests.Create(r.Context(), acc.ID, guestdomain.CreateInput{
		FullName: req.FullName,
		Gender:   req.Gender,
	})
	if err != nil {
		h.writeGuestError(w, "guests.create", err, "")
		return
	}

	envelope.Created(w, "Guest created successfully", toGuestResponse(created))
}

func (h *Handlers) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	publicID := chi.URLParam(r, middleware.PublicIDParam)

	var req updateGuestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		if errors.Is(err, errInvalidStatus) {
			envelope.Error(w, http.StatusBadRequest, guestdomain.ErrInvalidResponseStatus.Error())
			return
		}
		writeDecodeError(w, err)
		return
	}

	updated, err := h.Guests.Update(r.Context(), publicID, guestdomain.UpdateInput{
		FullName: req.FullName,
		Gender:   req.Gender,
		Status:   guestdomain.StatusUpdate(req.RespStatus),
	})
	if err != nil {
		h.writeGuestError(w, "guests.update", err, publicID)
		return
	}

	envelope.OK(w, "Guest updated successfully", toGuestResponse(updated))
}

func (h *Handlers) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	publicID := chi.URLParam(r, middleware.PublicIDParam)

	if err := h.Guests.Delete(r.Context(), publicID); err != nil {
		h.writeGuestError(w, "guests.delete", err, publicID)
		return
	}

	envelope.OK(w, "Guest deleted successfully", nil)
}

func (h *Handlers) AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	publicID := chi.URLParam(r, middleware.PublicIDParam)

	updated, err := h.Guests.Accept(r.Context(), publicID)
	if err != nil {
		h.writeGuestError(w, "guests.accept", err, publicID)
		return
	}

	envelope.OK(w, "success", toGuestResponse(updated))
}

func (h *Handlers) RejectInvitation(w http.ResponseWriter, r *http.Request) {
	publicID := chi.URLParam(r, middleware.PublicIDParam)

	updated, err := h.Guests.Decline(r.Context(), publicID)
	if err != nil {
		h.writeGuestError(w, "guests.reject", err, publicID)
		return
	}

	envelope.OK(w, "success", toGuestResponse(updated))
}

func (h *Handlers) writeGuestError(w http.ResponseWriter, op string, err error, publicID string) {
	switch {
	case guestdomain.IsValidation(err):
		h.log.BusinessError(op+": invalid request", err, "public_id", publicID)
		envelope.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, guestdomain.ErrGuestNotFound):
		h.log.BusinessError(op+": guest not found", err, "public_id", publicID)
		envelope.NotFound(w, "Guest not found")
	case errors.Is(err, guestdomain.ErrDuplicateGuest):
		h.log.BusinessError(op+": duplicate guest", err, "public_id", publicID)
		envelope.Error(w, http.StatusConflict, "Guest with this full name already exists")
	default:
		h.log.InternalError(op+": storage failure", err, "public_id", publicID)
		envelope.Error(w, http.StatusInternalServerError, "Failed to process guest request")
	}
}
