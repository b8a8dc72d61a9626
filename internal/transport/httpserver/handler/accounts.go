package handler

import (
	"errors"
	"net/http"

	accountdomain "wedding-rsvp-go/internal/domain/account"
	"wedding-rsvp-go/internal/transport/httpserver/envelope"
	"wedding-rsvp-go/internal/transport/httpserver/middleware"
)

type accountResponse struct {
	ID           int64  `json:"id"`
	Phone        string `json:"phone"`
	Username     string `json:"username"`
	HusbandsName string `json:"husbands_name"`
	WifesName    string `json:"wifes_name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Address      string `json:"address"`
}

type updateCoupleRequest struct {
	HusbandsName string `json:"husbands_name"`
	WifesName    string `json:"wifes_name"`
}

type updateEventRequest struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Address string `json:"address"`
}

func (h *Handlers) GetAccount(w http.ResponseWriter, r *http.Request) {
	acc, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		envelope.Error(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	result, err := h.Accounts.Get(r.Context(), acc.ID)
	if err != nil {
		if errors.Is(err, accountdomain.ErrAccountNotFound) {
			h.log.BusinessError("accounts.get: account not found", err, "account_id", acc.ID)
			envelope.NotFound(w, "User information not found")
			return
		}
		h.log.InternalError("accounts.get: get account failed", err, "account_id", acc.ID)
		envelope.Error(w, http.StatusInternalServerError, "Failed to fetch couple information")
		return
	}

	envelope.OK(w, "Couple information retrieved successfully", toAccountResponse(result))
}

func (h *Handlers) UpdateCouple(w http.ResponseWriter, r *http.Request) {
	acc, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		envelope.Error(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req updateCoupleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	result, err := h.Accounts.UpdateCouple(r.Context(), acc.ID, accountdomain.CoupleInfo{
		HusbandsName: req.HusbandsName,
		WifesName:    req.WifesName,
	})
	if err != nil {
		switch {
		case errors.Is(err, accountdomain.ErrCoupleNamesRequired):
			envelope.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, accountdomain.ErrAccountNotFound):
			h.log.BusinessError("accounts.update_couple: account not found", err, "account_id", acc.ID)
			envelope.NotFound(w, "User not found")
		default:
			h.log.InternalError("accounts.update_couple: update failed", err, "account_id", acc.ID)
			envelope.Error(w, http.StatusInternalServerError, "Failed to update couple information")
		}
		return
	}

	envelope.OK(w, "Couple information updated successfully", toAccountResponse(result))
}

func (h *Handlers) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	acc, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		envelope.Error(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req updateEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	result, err := h.Accounts.UpdateEvent(r.Context(), acc.ID, accountdomain.EventInfo{
		Date:    req.Date,
		Time:    req.Time,
		Address: req.Address,
	})
	if err != nil {
		if errors.Is(err, accountdomain.ErrAccountNotFound) {
			h.log.BusinessError("accounts.update_event: account not found", err, "account_id", acc.ID)
			envelope.NotFound(w, "User not found")
			return
		}
		h.log.InternalError("accounts.update_event: update failed", err, "account_id", acc.ID)
		envelope.Error(w, http.StatusInternalServerError, "Failed to update wedding information")
		return
	}

	envelope.OK(w, "Wedding information updated successfully", toAccountResponse(result))
}

func toAccountResponse(acc *accountdomain.Account) accountResponse {
	return accountResponse{
		ID:           acc.ID,
		Phone:        acc.Phone,
		Username:     acc.Username,
		HusbandsName: acc.HusbandsName,
		WifesName:    acc.WifesName,
		Date:         acc.Date,
		Time:         acc.Time,
		Address:      acc.Address,
	}
}
