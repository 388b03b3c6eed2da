package domain

import "errors"

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrTicketNotFound = errors.New("ticket not found")
)

var (
	ErrTicketUsed    = errors.New("ticket already used")
	ErrTicketBlocked = errors.New("ticket is blocked")
	ErrCodeTaken     = errors.New("ticket code is already taken")
	ErrScanInFlight  = errors.New("a validation is already in flight for this device")
)

var (
	ErrEmailTaken = errors.New("email is already taken")
	ErrPINTaken   = errors.New("pin is already taken")
	ErrBadPIN     = errors.New("incorrect pin")
)

var (
	ErrValidation = errors.New("validation error")
)
