package account

import "errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrMissingCredentials  = errors.New("authentication required")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrCoupleNamesRequired = errors.New("husbands_name and wifes_name are required")
	ErrDuplicateAccount    = errors.New("account already exists")
	ErrProvisionInvalid    = errors.New("phone, username and password are required")
)
