package services

import "errors"

// Failures inside the order+ticket transaction abort order creation.
// Printing failures never do; they surface as warnings on the result.
var (
	ErrValidation           = errors.New("validation failed")
	ErrItemUnavailable      = errors.New("menu item unavailable")
	ErrInvalidStatusValue   = errors.New("invalid status value")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrOrderHasActiveTicket = errors.New("order has an active kitchen ticket")
	ErrNoPrinterAvailable   = errors.New("no printer available")
)
