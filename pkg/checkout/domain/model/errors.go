package model

import "errors"

var (
	ErrCartEmpty         = errors.New("cannot start checkout with an empty cart")
	ErrValidationFailed  = errors.New("checkout step has invalid fields")
	ErrInvalidTransition = errors.New("transition is not allowed from the current step")
	ErrAlreadyProcessing = errors.New("order is already being processed")
	ErrCheckoutClosed    = errors.New("checkout is closed, the order was placed")
	ErrUnknownField      = errors.New("unknown checkout field")
)
