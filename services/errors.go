package services

import "errors"

// Sentinel errors returned by the service layer. Handlers translate these to
// HTTP statuses; anything not matching one of them is treated as a 500.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("access denied")
	ErrInsufficientBalance = errors.New("not enough points to redeem")
)
