package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	guestdomain "wedding-rsvp-go/internal/domain/guest"
)

const respDateLayout = "2006-01-02 15:04:05"

var errInvalidStatus = errors.New("invalid respStatus")

type guestResponse struct {
	ID         int64   `json:"id"`
	UUID       string  `json:"uuid"`
	FullName   string  `json:"fullName"`
	Gender     string  `json:"gender"`
	RespStatus *int    `json:"respStatus"`
	RespDate   *string `json:"respDate"`
	UserID     *int64  `json:"user_id"`
}

type publicGuestResponse struct {
	guestResponse
	HusbandsName *string `json:"husbands_name,omitempty"`
	WifesName    *string `json:"wifes_name,omitempty"`
	Date         *string `json:"date,omitempty"`
	Time         *string `json:"time,omitempty"`
	Address      *string `json:"address,omitempty"`
}

// optionalStatus tells an absent respStatus apart from an explicit null.
type optionalStatus struct {
	Set   bool
	Value *guestdomain.ResponseStatus
}

func (o *optionalStatus) UnmarshalJSON(data []byte) error {
	o.Set = true
	o.Value = nil
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errInvalidStatus
	}

	var value int
	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return errInvalidStatus
		}
		value = int(v)
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return errInvalidStatus
		}
		value = parsed
	default:
		return errInvalidStatus
	}

	status := guestdomain.ResponseStatus(value)
	o.Value = &status
	return nil
}

func toGuestResponse(g *guestdomain.Guest) guestResponse {
	resp := guestResponse{
		ID:       g.ID,
		UUID:     g.PublicID,
		FullName: g.FullName,
		Gender:   string(g.Gender),
		UserID:   g.OwnerID,
	}
	if g.RespStatus != nil {
		status := int(*g.RespStatus)
		resp.RespStatus = &status
	}
	if g.RespDate != nil {
		formatted := g.RespDate.UTC().Format(respDateLayout)
		resp.RespDate = &formatted
	}
	return resp
}

func toPublicGuestResponse(view *guestdomain.PublicView) publicGuestResponse {
	resp := publicGuestResponse{guestResponse: toGuestResponse(&view.Guest)}
	if owner := view.Owner; owner != nil {
		resp.HusbandsName = &owner.HusbandsName
		resp.WifesName = &owner.WifesName
		resp.Date = &owner.Date
		resp.Time = &owner.Time
		resp.Address = &owner.Address
	}
	return resp
}
