package guest

import "errors"

var (
	ErrGuestNotFound            = errors.New("guest not found")
	ErrNotOwner                 = errors.New("guest belongs to another account")
	ErrDuplicateGuest           = errors.New("guest with this full name already exists")
	ErrOwnerRequired            = errors.New("owner account is required")
	ErrFullNameRequired         = errors.New("fullName is required")
	ErrGenderRequired           = errors.New("gender is required")
	ErrInvalidGender            = errors.New("gender must be male or female")
	ErrInvalidResponseStatus    = errors.New("respStatus must be 0, 1 or null")
	ErrPublicIDGenerationFailed = errors.New("public id generation failed")
)

func IsValidation(err error) bool {
	return errors.Is(err, ErrFullNameRequired) ||
		errors.Is(err, ErrGenderRequired) ||
		errors.Is(err, ErrInvalidGender) ||
		errors.Is(err, ErrInvalidResponseStatus)
}
