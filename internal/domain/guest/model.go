package guest

import (
	"strings"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func ParseGender(value string) (Gender, error) {
	switch Gender(strings.ToLower(strings.TrimSpace(value))) {
	case "":
		return "", ErrGenderRequired
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	default:
		return "", ErrInvalidGender
	}
}

// ResponseStatus is the stored RSVP answer. A nil *ResponseStatus means the
// guest has not answered yet.
type ResponseStatus int

const (
	ResponseDeclined ResponseStatus = 0
	ResponseAccepted ResponseStatus = 1
)

func (s ResponseStatus) Valid() bool {
	return s == ResponseDeclined || s == ResponseAccepted
}

type State string

const (
	StatePending  State = "pending"
	StateAccepted State = "accepted"
	StateDeclined State = "declined"
)

type Guest struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	PublicID   string          `gorm:"column:uuid;not null;uniqueIndex"`
	FullName   string          `gorm:"column:full_name;not null"`
	Gender     Gender          `gorm:"column:gender;not null"`
	RespStatus *ResponseStatus `gorm:"column:resp_status"`
	RespDate   *time.Time      `gorm:"column:resp_date"`
	OwnerID    *int64          `gorm:"column:user_id;index"`
}

func (g Guest) State() State {
	if g.RespStatus == nil {
		return StatePending
	}
	if *g.RespStatus == ResponseAccepted {
		return StateAccepted
	}
	return StateDeclined
}

// OwnedBy reports whether accountID owns the guest. Unowned legacy guests are
// owned by nobody.
func (g Guest) OwnedBy(accountID int64) bool {
	return g.OwnerID != nil && *g.OwnerID == accountID
}

// Response is the pair of columns that always changes together: both set
// after an answer, both nil while pending.
type Response struct {
	Status *ResponseStatus
	At     *time.Time
}

func Answer(status ResponseStatus, at time.Time) Response {
	at = at.UTC().Truncate(time.Second)
	return Response{Status: &status, At: &at}
}

func Pending() Response {
	return Response{}
}

type Owner struct {
	HusbandsName string
	WifesName    string
	Date         string
	Time         string
	Address      string
}

// PublicView is a guest as shown on the invitation page, with the couple and
// event details of the owning account when there is one.
type PublicView struct {
	Guest Guest
	Owner *Owner
}

type ListFilter struct {
	OwnerID *int64
}

type CreateInput struct {
	FullName string
	Gender   string
}

// StatusUpdate distinguishes "field absent" from "explicitly pending".
type StatusUpdate struct {
	Set   bool
	Value *ResponseStatus
}

type UpdateInput struct {
	FullName string
	Gender   string
	Status   StatusUpdate
}

type Changes struct {
	FullName string
	Gender   Gender
	Response *Response
}
